package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

type WorkoutHandler struct {
	db *gorm.DB
}

func NewWorkoutHandler(db *gorm.DB) *WorkoutHandler {
	return &WorkoutHandler{db: db}
}

// --------- Requests ---------

type CreateWorkoutProgramRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Level       string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Weeks       int    `json:"weeks" binding:"required,min=1"`
	Exercises   string `json:"exercises"`
}

type UpdateWorkoutProgramRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Level       *string `json:"level,omitempty"`
	Weeks       *int    `json:"weeks,omitempty"`
	Exercises   *string `json:"exercises,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *WorkoutHandler) List(c *gin.Context) {
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	level := strings.ToLower(strings.TrimSpace(c.Query("level")))
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("gym_id = ?", gymID)

	if level != "" {
		q = q.Where("LOWER(level) = ?", level)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var programs []models.WorkoutProgram
	if err := q.
		Order("id ASC").
		Find(&programs).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_programs"})
		return
	}

	c.JSON(http.StatusOK, programs)
}

func (h *WorkoutHandler) Create(c *gin.Context) {
	gymID := c.MustGet(middleware.ContextGymID).(uint)
	trainerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateWorkoutProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	program := models.WorkoutProgram{
		GymID:       gymID,
		TrainerID:   trainerID,
		Name:        req.Name,
		Description: req.Description,
		Level:       req.Level,
		Weeks:       req.Weeks,
		Exercises:   req.Exercises,
		Active:      true,
	}

	if err := h.db.Create(&program).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_program"})
		return
	}

	c.JSON(http.StatusCreated, program)
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	gymID := c.MustGet(middleware.ContextGymID).(uint)
	trainerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_program_id"})
		return
	}

	var program models.WorkoutProgram
	if err := h.db.
		Where("id = ? AND gym_id = ? AND trainer_id = ?", id, gymID, trainerID).
		First(&program).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "program_not_found"})
		return
	}

	var req UpdateWorkoutProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		program.Name = *req.Name
	}
	if req.Description != nil {
		program.Description = *req.Description
	}
	if req.Level != nil {
		program.Level = *req.Level
	}
	if req.Weeks != nil && *req.Weeks > 0 {
		program.Weeks = *req.Weeks
	}
	if req.Exercises != nil {
		program.Exercises = *req.Exercises
	}
	if req.Active != nil {
		program.Active = *req.Active
	}

	if err := h.db.Save(&program).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_program"})
		return
	}

	c.JSON(http.StatusOK, program)
}
