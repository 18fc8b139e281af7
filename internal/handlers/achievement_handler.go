package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

type AchievementHandler struct {
	db *gorm.DB
}

func NewAchievementHandler(db *gorm.DB) *AchievementHandler {
	return &AchievementHandler{db: db}
}

func (h *AchievementHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var achievements []models.Achievement
	if err := h.db.
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&achievements).Error; err != nil {

		httperr.Internal(c, "failed_to_list_achievements", "Unexpected error.")
		return
	}

	var points int64
	h.db.Model(&models.Achievement{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&points)

	c.JSON(http.StatusOK, gin.H{
		"achievements": achievements,
		"total_points": points,
	})
}
