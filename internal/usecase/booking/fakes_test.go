package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/booking"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

// unimplementedRepo satisfies domain.Repository so test fakes only
// override the methods their usecase touches.
type unimplementedRepo struct{}

var errNotImplemented = errors.New("not implemented in this fake")

func (unimplementedRepo) GetGymByID(ctx context.Context, id uint) (*models.Gym, error) {
	return nil, errNotImplemented
}

func (unimplementedRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	return errNotImplemented
}

func (unimplementedRepo) AssertNoTimeConflict(ctx context.Context, trainerID uint, start, end time.Time, excludeID uint) error {
	return errNotImplemented
}

func (unimplementedRepo) GetBookingForTrainer(ctx context.Context, bookingID, trainerID uint) (*models.Booking, error) {
	return nil, errNotImplemented
}

func (unimplementedRepo) GetBookingForMember(ctx context.Context, bookingID, userID uint) (*models.Booking, error) {
	return nil, errNotImplemented
}

func (unimplementedRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return errNotImplemented
}

func (unimplementedRepo) IsWithinAvailability(ctx context.Context, trainerID uint, start, end time.Time) (bool, error) {
	return false, errNotImplemented
}

func (unimplementedRepo) ListBookingsForTrainer(ctx context.Context, trainerID uint, start, end time.Time) ([]models.Booking, error) {
	return nil, errNotImplemented
}

func (unimplementedRepo) ListBookingsForMember(ctx context.Context, userID uint) ([]models.Booking, error) {
	return nil, errNotImplemented
}

var _ domain.Repository = unimplementedRepo{}
