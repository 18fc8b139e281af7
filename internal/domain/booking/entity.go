package booking

import (
	"time"

	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Accept(b *models.Booking, now time.Time) error {
	if err := CanAccept(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusAccepted)
	b.AcceptedAt = &now
	return nil
}

func Decline(b *models.Booking, now time.Time) error {
	if err := CanDecline(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusDeclined)
	b.DeclinedAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// Reschedule moves the session and returns the booking to pending so the
// trainer approves the new time. The prior decision timestamps are
// cleared with the decision they recorded.
func Reschedule(
	b *models.Booking,
	sessionDate string,
	start time.Time,
	end time.Time,
) error {
	if err := CanReschedule(Status(b.Status)); err != nil {
		return err
	}
	if !end.After(start) {
		return httperr.ErrBusiness("invalid_time_range")
	}

	b.SessionDate = sessionDate
	b.StartTime = start
	b.EndTime = end
	b.DurationMinutes = int(end.Sub(start) / time.Minute)
	b.Status = string(StatusPending)
	b.AcceptedAt = nil
	b.DeclinedAt = nil
	return nil
}
