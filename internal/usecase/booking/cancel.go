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

type CancelBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Notifier
	events   *realtime.Hub
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Notifier,
	events *realtime.Hub,
) *CancelBooking {
	return &CancelBooking{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		events:   events,
	}
}

// Execute cancels a member's booking and tells the trainer why. The
// cancellation mutates the booking itself, not just the notification
// side channel.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	gymID uint,
	userID uint,
	bookingID uint,
	reason string,
) (*models.Booking, error) {

	gym, err := uc.repo.GetGymByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForMember(ctx, bookingID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(gym.Timezone)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GymID:    gymID,
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	msg := fmt.Sprintf("%s cancelled the session on %s at %s.",
		b.User.Name, b.SessionDate, timezone.Clock(b.StartTime, gym.Timezone))
	if reason != "" {
		msg = fmt.Sprintf("%s Reason: %s", msg, reason)
	}

	uc.notifier.PushData(
		b.TrainerID,
		"booking_cancelled",
		"Session cancelled",
		msg,
		map[string]any{"booking_id": b.ID, "reason": reason},
	)

	uc.events.Publish(realtime.Event{
		Table:  realtime.TableBookings,
		Kind:   realtime.KindUpdate,
		RowID:  b.ID,
		GymID:  gymID,
		UserID: b.TrainerID,
	})

	return b, nil
}
