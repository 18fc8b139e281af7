package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.Preload("Gym").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":     user.ID,
			"name":   user.Name,
			"email":  user.Email,
			"phone":  user.Phone,
			"role":   user.Role,
			"gym_id": user.GymID,
		},
		"gym": gin.H{
			"id":      user.Gym.ID,
			"name":    user.Gym.Name,
			"slug":    user.Gym.Slug,
			"phone":   user.Gym.Phone,
			"address": user.Gym.Address,
		},
	}

	if user.Role == "trainer" {
		var profile models.TrainerProfile
		if err := h.db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
			resp["trainer_profile"] = gin.H{
				"bio":              profile.Bio,
				"specializations":  profile.Specializations,
				"experience_years": profile.ExperienceYears,
				"hourly_rate":      profile.HourlyRate,
				"is_available":     profile.IsAvailable,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
