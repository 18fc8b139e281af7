package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/httpresp"
	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	ucBooking "github.com/CoreFitApps/gym-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create         *ucBooking.CreateBooking
	accept         *ucBooking.AcceptBooking
	decline        *ucBooking.DeclineBooking
	cancel         *ucBooking.CancelBooking
	reschedule     *ucBooking.RescheduleBooking
	listForTrainer *ucBooking.ListBookingsForTrainer
	listForMember  *ucBooking.ListBookingsForMember
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	accept *ucBooking.AcceptBooking,
	decline *ucBooking.DeclineBooking,
	cancel *ucBooking.CancelBooking,
	reschedule *ucBooking.RescheduleBooking,
	listForTrainer *ucBooking.ListBookingsForTrainer,
	listForMember *ucBooking.ListBookingsForMember,
) *BookingHandler {
	return &BookingHandler{
		create:         create,
		accept:         accept,
		decline:        decline,
		cancel:         cancel,
		reschedule:     reschedule,
		listForTrainer: listForTrainer,
		listForMember:  listForMember,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	TrainerID       uint   `json:"trainer_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type RescheduleBookingRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return 0, false
	}
	return uint(id), true
}

func writeBusinessOrInternal(c *gin.Context, err error, fallback string) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.BadRequest(c, code, "Request was not applied.")
		return
	}
	httperr.Internal(c, fallback, "Unexpected error.")
}

// ======================================================
// MEMBER
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		GymID:           gymID,
		UserID:          userID,
		TrainerID:       req.TrainerID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_create_booking")
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listForMember.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Unexpected error.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.cancel.Execute(c.Request.Context(), gymID, userID, id, req.Reason)
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_cancel_booking")
		return
	}

	c.JSON(200, b)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reschedule payload.")
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), ucBooking.RescheduleBookingInput{
		GymID:     gymID,
		UserID:    userID,
		BookingID: id,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_reschedule_booking")
		return
	}

	c.JSON(200, b)
}

// ======================================================
// TRAINER
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	dateStr := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	bookings, err := h.listForTrainer.Execute(c.Request.Context(), trainerID, gymID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Unexpected error.")
		return
	}

	c.JSON(200, gin.H{
		"date":     dateStr,
		"bookings": bookings,
	})
}

func (h *BookingHandler) Accept(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	b, err := h.accept.Execute(c.Request.Context(), gymID, trainerID, id)
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_accept_booking")
		return
	}

	c.JSON(200, b)
}

func (h *BookingHandler) Decline(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	b, err := h.decline.Execute(c.Request.Context(), gymID, trainerID, id)
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_decline_booking")
		return
	}

	c.JSON(200, b)
}
