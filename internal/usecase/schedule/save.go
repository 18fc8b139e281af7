package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/CoreFitApps/gym-scheduler/internal/backup"
	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"
	"github.com/CoreFitApps/gym-scheduler/internal/realtime"
)

type SaveAvailability struct {
	repo   domain.Repository
	backup backup.Store
	events *realtime.Hub
	log    *zap.Logger
}

func NewSaveAvailability(
	repo domain.Repository,
	backup backup.Store,
	events *realtime.Hub,
	log *zap.Logger,
) *SaveAvailability {
	return &SaveAvailability{
		repo:   repo,
		backup: backup,
		events: events,
		log:    log,
	}
}

// Execute flattens the week into the stored array form and persists it.
// There is no re-fetch afterward; the caller's state is what was saved.
func (uc *SaveAvailability) Execute(
	ctx context.Context,
	trainerID uint,
	gymID uint,
	week domain.Week,
	isAvailable bool,
) error {

	if err := week.Validate(); err != nil {
		return err
	}

	raw, err := domain.EncodeFlat(week.Flatten())
	if err != nil {
		return err
	}

	if err := uc.repo.SaveAvailability(ctx, trainerID, raw, isAvailable); err != nil {
		return err
	}

	snap := backup.Snapshot{Week: week, IsAvailable: isAvailable}
	if err := uc.backup.Save(ctx, trainerID, snap); err != nil {
		uc.log.Debug("schedule backup refresh failed", zap.Error(err))
	}

	uc.events.Publish(realtime.Event{
		Table:  realtime.TableTrainerProfiles,
		Kind:   realtime.KindUpdate,
		RowID:  trainerID,
		GymID:  gymID,
		UserID: trainerID,
		Payload: realtime.ProfileChange{
			TrainerID:    trainerID,
			Availability: raw,
			IsAvailable:  isAvailable,
		},
	})

	return nil
}
