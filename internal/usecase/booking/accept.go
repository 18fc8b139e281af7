package booking

import (
	"context"
	"fmt"

	"github.com/CoreFitApps/gym-scheduler/internal/audit"
	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/booking"
	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
	"github.com/CoreFitApps/gym-scheduler/internal/notify"
	"github.com/CoreFitApps/gym-scheduler/internal/realtime"
	"github.com/CoreFitApps/gym-scheduler/internal/timezone"
)

type AcceptBooking struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	notifier  *notify.Notifier
	reminders *notify.ReminderScheduler
	events    *realtime.Hub
}

func NewAcceptBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Notifier,
	reminders *notify.ReminderScheduler,
	events *realtime.Hub,
) *AcceptBooking {
	return &AcceptBooking{
		repo:      repo,
		audit:     audit,
		notifier:  notifier,
		reminders: reminders,
		events:    events,
	}
}

func (uc *AcceptBooking) Execute(
	ctx context.Context,
	gymID uint,
	trainerID uint,
	bookingID uint,
) (*models.Booking, error) {

	gym, err := uc.repo.GetGymByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForTrainer(ctx, bookingID, trainerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(gym.Timezone)
	if err := domain.Accept(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GymID:    gymID,
		UserID:   &trainerID,
		Action:   "booking_accepted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.notifier.PushData(
		b.UserID,
		"booking_accepted",
		"Session confirmed",
		fmt.Sprintf("%s accepted your session on %s at %s.",
			b.Trainer.Name, b.SessionDate, timezone.Clock(b.StartTime, gym.Timezone)),
		map[string]uint{"booking_id": b.ID},
	)

	uc.reminders.ScheduleSessionReminder(b, b.Trainer.Name)

	uc.events.Publish(realtime.Event{
		Table:  realtime.TableBookings,
		Kind:   realtime.KindUpdate,
		RowID:  b.ID,
		GymID:  gymID,
		UserID: b.UserID,
	})

	return b, nil
}
