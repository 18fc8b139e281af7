package booking

import "github.com/CoreFitApps/gym-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// Accept and decline are trainer decisions on a pending request.
func CanAccept(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanDecline(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// A member may cancel a request that has not been declined or already
// cancelled.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusAccepted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// Rescheduling sends the booking back through trainer approval, so it is
// allowed from the same states as cancel.
func CanReschedule(current Status) error {
	if current != StatusPending && current != StatusAccepted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
