package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/CoreFitApps/gym-scheduler/internal/audit"
	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/booking"
	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
	"github.com/CoreFitApps/gym-scheduler/internal/notify"
	"github.com/CoreFitApps/gym-scheduler/internal/realtime"
	"github.com/CoreFitApps/gym-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	GymID     uint
	UserID    uint
	TrainerID uint

	Date            string // "2006-01-02"
	Time            string // "15:04"
	DurationMinutes int
	Notes           string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Notifier
	events   *realtime.Hub
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Notifier,
	events *realtime.Hub,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		events:   events,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	gym, err := uc.repo.GetGymByID(ctx, in.GymID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(gym.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := gym.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(gym.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	duration := in.DurationMinutes
	if duration <= 0 {
		duration = 60
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	ok, err := uc.repo.IsWithinAvailability(ctx, in.TrainerID, start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("outside_availability")
	}

	if err := uc.repo.AssertNoTimeConflict(ctx, in.TrainerID, start, end, 0); err != nil {
		return nil, err
	}

	b := &models.Booking{
		GymID:           in.GymID,
		UserID:          in.UserID,
		TrainerID:       in.TrainerID,
		SessionDate:     in.Date,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GymID:    in.GymID,
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.notifier.PushData(
		in.TrainerID,
		"booking_requested",
		"New session request",
		fmt.Sprintf("A member requested a session on %s at %s.", in.Date, in.Time),
		map[string]uint{"booking_id": b.ID},
	)

	uc.events.Publish(realtime.Event{
		Table:  realtime.TableBookings,
		Kind:   realtime.KindInsert,
		RowID:  b.ID,
		GymID:  in.GymID,
		UserID: in.TrainerID,
	})

	return b, nil
}
