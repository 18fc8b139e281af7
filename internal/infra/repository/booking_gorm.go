package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/booking"
	"github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"
	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Gym
// --------------------------------------------------

func (r *BookingGormRepository) GetGymByID(
	ctx context.Context,
	id uint,
) (*models.Gym, error) {

	var gym models.Gym
	if err := r.db.WithContext(ctx).First(&gym, id).Error; err != nil {
		return nil, err
	}
	return &gym, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Pending requests hold the slot too: two members racing for the same
// window should not both reach the trainer.
func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	trainerID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	var ids []uint
	if err := conflictScan(r.db.WithContext(ctx), trainerID, start, end, excludeID).
		Pluck("id", &ids).Error; err != nil {
		return err
	}

	if len(ids) > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

// conflictScan selects the overlapping booking ids under FOR UPDATE.
// Postgres does not allow a locking clause on an aggregate query, so the
// scan locks the candidate rows themselves and the caller counts them.
func conflictScan(
	db *gorm.DB,
	trainerID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) *gorm.DB {

	q := db.
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"trainer_id = ? AND status IN ('pending', 'accepted') AND start_time < ? AND end_time > ?",
			trainerID,
			end,
			start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	return q
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForTrainer(
	ctx context.Context,
	bookingID uint,
	trainerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Trainer").
		Where("id = ? AND trainer_id = ?", bookingID, trainerID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetBookingForMember(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Trainer").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

// IsWithinAvailability checks the requested window against the trainer's
// stored slots. The flat storage keeps no day tag, so the check is
// wall-clock only: the window must fit inside some declared slot.
func (r *BookingGormRepository) IsWithinAvailability(
	ctx context.Context,
	trainerID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	var profile models.TrainerProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", trainerID).
		First(&profile).Error; err != nil {
		return false, nil
	}

	if !profile.IsAvailable {
		return false, nil
	}

	slots, err := schedule.DecodeFlat(profile.Availability)
	if err != nil {
		return false, nil
	}

	return windowWithinSlots(slots, start, end), nil
}

// windowWithinSlots reports whether [start, end) fits inside one of the
// declared wall-clock slots, projected onto start's day. Malformed slots
// are skipped rather than failing the whole check.
func windowWithinSlots(slots []schedule.TimeSlot, start, end time.Time) bool {
	loc := start.Location()

	parseHM := func(hm string) time.Time {
		t, _ := schedule.ParseClock(hm)
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	for _, s := range slots {
		if s.Validate() != nil {
			continue
		}
		slotStart := parseHM(s.StartTime)
		slotEnd := parseHM(s.EndTime)

		if !start.Before(slotStart) && !end.After(slotEnd) {
			return true
		}
	}

	return false
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForTrainer(
	ctx context.Context,
	trainerID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Trainer").
		Where(
			"trainer_id = ? AND start_time >= ? AND start_time < ?",
			trainerID, start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForMember(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Trainer").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
