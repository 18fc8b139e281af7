package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"
	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	ucSchedule "github.com/CoreFitApps/gym-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	load     *ucSchedule.LoadAvailability
	save     *ucSchedule.SaveAvailability
	schedule domain.Repository
}

func NewAvailabilityHandler(
	load *ucSchedule.LoadAvailability,
	save *ucSchedule.SaveAvailability,
	schedule domain.Repository,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		load:     load,
		save:     save,
		schedule: schedule,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SaveAvailabilityRequest struct {
	Days        [][]domain.TimeSlot `json:"days" binding:"required,len=7"`
	IsAvailable bool                `json:"is_available"`
}

type SaveBuilderRequest struct {
	Days domain.BuilderWeek `json:"days" binding:"required"`
}

// ======================================================
// EDITOR (TRAINER)
// ======================================================

func (h *AvailabilityHandler) Get(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)

	res := h.load.Execute(c.Request.Context(), trainerID)

	c.JSON(http.StatusOK, gin.H{
		"days":         res.Week,
		"is_available": res.IsAvailable,
		"dirty":        res.Dirty,
		"from_backup":  res.FromBackup,
	})
}

func (h *AvailabilityHandler) Put(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	var req SaveAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability payload.")
		return
	}

	var week domain.Week
	for d := range week {
		week[d] = req.Days[d]
		if week[d] == nil {
			week[d] = []domain.TimeSlot{}
		}
	}

	err := h.save.Execute(c.Request.Context(), trainerID, gymID, week, req.IsAvailable)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Availability was not saved.")
			return
		}
		httperr.Internal(c, "failed_to_save_availability", "Availability was not saved.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// SCHEDULE BUILDER (TRAINER)
// ======================================================

func (h *AvailabilityHandler) GetBuilder(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)

	profile, err := h.schedule.GetProfile(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"days": domain.BuilderWeek{}})
		return
	}

	week, err := domain.DecodeBuilder(profile.Builder)
	if err != nil {
		httperr.Internal(c, "builder_unreadable", "Stored builder schedule is unreadable.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": week})
}

func (h *AvailabilityHandler) PutBuilder(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)

	var req SaveBuilderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid builder payload.")
		return
	}

	for day, slots := range req.Days {
		if day < 0 || day >= domain.DaysPerWeek {
			httperr.BadRequest(c, "invalid_day", "Day index out of range.")
			return
		}
		for _, s := range slots {
			if !s.Type.Valid() {
				httperr.BadRequest(c, "invalid_slot_type", "Unknown slot type.")
				return
			}
			if err := (domain.TimeSlot{StartTime: s.Start, EndTime: s.End}).Validate(); err != nil {
				code, _ := httperr.BusinessCode(err)
				httperr.BadRequest(c, code, "Invalid builder slot times.")
				return
			}
		}
	}

	raw, err := domain.EncodeBuilder(req.Days)
	if err != nil {
		httperr.Internal(c, "failed_to_save_builder", "Builder schedule was not saved.")
		return
	}

	if err := h.schedule.SaveBuilder(c.Request.Context(), trainerID, raw); err != nil {
		httperr.Internal(c, "failed_to_save_builder", "Builder schedule was not saved.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// MEMBER VIEW
// ======================================================

// GetForTrainer shows a trainer's week to members browsing for a slot.
func (h *AvailabilityHandler) GetForTrainer(c *gin.Context) {
	trainerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_trainer_id", "Invalid trainer id.")
		return
	}

	res := h.load.Execute(c.Request.Context(), uint(trainerID))

	c.JSON(http.StatusOK, gin.H{
		"days":         res.Week,
		"is_available": res.IsAvailable,
	})
}
