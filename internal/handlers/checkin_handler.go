package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

type CheckInHandler struct {
	db *gorm.DB
}

func NewCheckInHandler(db *gorm.DB) *CheckInHandler {
	return &CheckInHandler{db: db}
}

func (h *CheckInHandler) CheckIn(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	var open models.CheckIn
	err := h.db.
		Where("user_id = ? AND checked_out_at IS NULL", userID).
		First(&open).Error
	if err == nil {
		httperr.Conflict(c, "already_checked_in", "There is an open visit already.")
		return
	}

	var total int64
	h.db.Model(&models.CheckIn{}).Where("user_id = ?", userID).Count(&total)

	checkIn := models.CheckIn{
		GymID:       gymID,
		UserID:      userID,
		CheckedInAt: time.Now(),
	}

	if err := h.db.Create(&checkIn).Error; err != nil {
		httperr.Internal(c, "failed_to_check_in", "Check-in was not recorded.")
		return
	}

	if total == 0 {
		h.db.Create(&models.Achievement{
			UserID:   userID,
			Code:     "first_visit",
			Title:    "First visit",
			Points:   10,
			EarnedAt: time.Now(),
		})
	}

	writeAudit(h.db, gymID, &userID, "member_checked_in", "check_in", &checkIn.ID, nil)

	c.JSON(http.StatusCreated, checkIn)
}

// CheckOut runs under its own deadline so a hung write cannot wedge the
// door flow; the member's visit is closed or the request fails fast.
func (h *CheckInHandler) CheckOut(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var open models.CheckIn
	if err := h.db.WithContext(ctx).
		Where("user_id = ? AND checked_out_at IS NULL", userID).
		First(&open).Error; err != nil {

		httperr.NotFound(c, "no_open_check_in", "No open visit to close.")
		return
	}

	now := time.Now()
	open.CheckedOutAt = &now

	if err := h.db.WithContext(ctx).Save(&open).Error; err != nil {
		httperr.Internal(c, "failed_to_check_out", "Check-out was not recorded.")
		return
	}

	writeAudit(h.db, gymID, &userID, "member_checked_out", "check_in", &open.ID, nil)

	c.JSON(http.StatusOK, open)
}

func (h *CheckInHandler) History(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var visits []models.CheckIn
	if err := h.db.
		Where("user_id = ?", userID).
		Order("checked_in_at DESC").
		Limit(100).
		Find(&visits).Error; err != nil {

		httperr.Internal(c, "failed_to_list_check_ins", "Unexpected error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"check_ins": visits})
}
