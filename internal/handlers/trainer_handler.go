package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

type TrainerHandler struct {
	db *gorm.DB
}

func NewTrainerHandler(db *gorm.DB) *TrainerHandler {
	return &TrainerHandler{db: db}
}

// ======================================================
// LIST TRAINERS (MEMBER)
// ======================================================
func (h *TrainerHandler) List(c *gin.Context) {
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("gym_id = ? AND role = ?", gymID, "trainer")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ?", like)
	}

	var trainers []models.User
	if err := q.
		Order("name ASC").
		Find(&trainers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_trainers",
		})
		return
	}

	out := make([]gin.H, 0, len(trainers))
	for _, t := range trainers {
		entry := gin.H{
			"id":    t.ID,
			"name":  t.Name,
			"phone": t.Phone,
		}

		var profile models.TrainerProfile
		if err := h.db.Where("user_id = ?", t.ID).First(&profile).Error; err == nil {
			entry["bio"] = profile.Bio
			entry["specializations"] = profile.Specializations
			entry["experience_years"] = profile.ExperienceYears
			entry["hourly_rate"] = profile.HourlyRate
			entry["is_available"] = profile.IsAvailable
		}

		out = append(out, entry)
	}

	c.JSON(http.StatusOK, gin.H{"trainers": out})
}
