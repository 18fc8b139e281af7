package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
	"github.com/CoreFitApps/gym-scheduler/internal/timezone"
)

type GymHandler struct {
	db *gorm.DB
}

func NewGymHandler(db *gorm.DB) *GymHandler {
	return &GymHandler{db: db}
}

type UpdateGymConfigRequest struct {
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
	Timezone          *string `json:"timezone"`
}

func (h *GymHandler) GetMeGym(c *gin.Context) {
	gymIDVal, _ := c.Get(middleware.ContextGymID)
	gymID := gymIDVal.(uint)

	var gym models.Gym
	if err := h.db.First(&gym, gymID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "gym_not_found", "Gym not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_gym", "Unexpected error.")
		return
	}

	c.JSON(http.StatusOK, gym)
}

func (h *GymHandler) UpdateMeGym(c *gin.Context) {
	gymIDVal, _ := c.Get(middleware.ContextGymID)
	gymID := gymIDVal.(uint)

	var gym models.Gym
	if err := h.db.First(&gym, gymID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "gym_not_found", "Gym not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_gym", "Unexpected error.")
		return
	}

	var req UpdateGymConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Minimum advance must be zero or positive (minutes).")
			return
		}
		gym.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		gym.Timezone = *req.Timezone
	}

	if err := h.db.Save(&gym).Error; err != nil {
		httperr.Internal(c, "failed_to_update_gym", "Gym settings were not saved.")
		return
	}

	c.JSON(http.StatusOK, gym)
}
