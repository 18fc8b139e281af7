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

type RescheduleBookingInput struct {
	GymID     uint
	UserID    uint
	BookingID uint

	Date string // "2006-01-02"
	Time string // "15:04"
}

type RescheduleBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Notifier
	events   *realtime.Hub
}

func NewRescheduleBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Notifier,
	events *realtime.Hub,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		events:   events,
	}
}

// Execute moves the session, sends the booking back to pending for
// trainer approval, and notifies the trainer of the requested change.
func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleBookingInput,
) (*models.Booking, error) {

	gym, err := uc.repo.GetGymByID(ctx, in.GymID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForMember(ctx, in.BookingID, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(gym.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(gym.Timezone)
	if !start.After(now) {
		return nil, httperr.ErrBusiness("time_in_past")
	}

	duration := b.DurationMinutes
	if duration <= 0 {
		duration = int(b.EndTime.Sub(b.StartTime) / time.Minute)
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	if err := uc.repo.AssertNoTimeConflict(ctx, b.TrainerID, start, end, b.ID); err != nil {
		return nil, err
	}

	oldDate, oldTime := b.SessionDate, timezone.Clock(b.StartTime, gym.Timezone)

	if err := domain.Reschedule(b, in.Date, start, end); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GymID:    in.GymID,
		UserID:   &in.UserID,
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{
			"from": oldDate + " " + oldTime,
			"to":   in.Date + " " + in.Time,
		},
	})

	uc.notifier.PushData(
		b.TrainerID,
		"booking_rescheduled",
		"Session reschedule requested",
		fmt.Sprintf("%s moved the session from %s %s to %s %s. Please confirm.",
			b.User.Name, oldDate, oldTime, in.Date, in.Time),
		map[string]uint{"booking_id": b.ID},
	)

	uc.events.Publish(realtime.Event{
		Table:  realtime.TableBookings,
		Kind:   realtime.KindUpdate,
		RowID:  b.ID,
		GymID:  in.GymID,
		UserID: b.TrainerID,
	})

	return b, nil
}
