package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) GetProfile(
	ctx context.Context,
	trainerID uint,
) (*models.TrainerProfile, error) {

	var profile models.TrainerProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", trainerID).
		First(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *ScheduleGormRepository) ensureProfile(
	ctx context.Context,
	trainerID uint,
) (*models.TrainerProfile, error) {

	var profile models.TrainerProfile
	err := r.db.WithContext(ctx).
		Where(models.TrainerProfile{UserID: trainerID}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ScheduleGormRepository) SaveAvailability(
	ctx context.Context,
	trainerID uint,
	availability string,
	isAvailable bool,
) error {

	profile, err := r.ensureProfile(ctx, trainerID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(profile).
		Updates(map[string]any{
			"availability": availability,
			"is_available": isAvailable,
		}).Error
}

func (r *ScheduleGormRepository) SaveBuilder(
	ctx context.Context,
	trainerID uint,
	builder string,
) error {

	profile, err := r.ensureProfile(ctx, trainerID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(profile).
		Update("builder", builder).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
