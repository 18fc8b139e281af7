package schedule

import (
	"context"

	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

type Repository interface {
	GetProfile(
		ctx context.Context,
		trainerID uint,
	) (*models.TrainerProfile, error)

	SaveAvailability(
		ctx context.Context,
		trainerID uint,
		availability string,
		isAvailable bool,
	) error

	SaveBuilder(
		ctx context.Context,
		trainerID uint,
		builder string,
	) error
}
