package booking

import (
	"context"
	"time"

	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

type Repository interface {
	// -------- Gym --------
	GetGymByID(
		ctx context.Context,
		id uint,
	) (*models.Gym, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// excludeID skips one booking in the overlap scan, so a reschedule
	// does not collide with the window it is vacating. Zero skips none.
	AssertNoTimeConflict(
		ctx context.Context,
		trainerID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) error

	// -------- Booking (state change) --------
	GetBookingForTrainer(
		ctx context.Context,
		bookingID uint,
		trainerID uint,
	) (*models.Booking, error)

	GetBookingForMember(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------
	IsWithinAvailability(
		ctx context.Context,
		trainerID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Listings --------
	ListBookingsForTrainer(
		ctx context.Context,
		trainerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForMember(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)
}
