package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/CoreFitApps/gym-scheduler/internal/backup"
	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"
)

type LoadAvailability struct {
	repo   domain.Repository
	backup backup.Store
	log    *zap.Logger
}

func NewLoadAvailability(
	repo domain.Repository,
	backup backup.Store,
	log *zap.Logger,
) *LoadAvailability {
	return &LoadAvailability{
		repo:   repo,
		backup: backup,
		log:    log,
	}
}

type LoadResult struct {
	Week        domain.Week
	IsAvailable bool

	// Dirty marks state that does not match the remote store and should
	// be re-saved (backup restores).
	Dirty      bool
	FromBackup bool
}

// Execute never fails for display purposes: a broken fetch falls back to
// the device-style backup, and a missing backup falls back to an empty
// week.
func (uc *LoadAvailability) Execute(
	ctx context.Context,
	trainerID uint,
) LoadResult {

	profile, err := uc.repo.GetProfile(ctx, trainerID)
	if err != nil {
		uc.log.Warn("availability fetch failed, trying backup",
			zap.Uint("trainer_id", trainerID),
			zap.Error(err),
		)

		snap, berr := uc.backup.Load(ctx, trainerID)
		if berr == nil {
			return LoadResult{
				Week:        snap.Week,
				IsAvailable: snap.IsAvailable,
				Dirty:       true,
				FromBackup:  true,
			}
		}

		return LoadResult{Week: domain.NewWeek(), IsAvailable: true}
	}

	flat, err := domain.DecodeFlat(profile.Availability)
	if err != nil {
		uc.log.Error("stored availability is unreadable",
			zap.Uint("trainer_id", trainerID),
			zap.Error(err),
		)
		return LoadResult{Week: domain.NewWeek(), IsAvailable: profile.IsAvailable}
	}

	week := domain.SplitAcrossWeek(flat)

	// Refresh the fallback copy; best-effort only.
	snap := backup.Snapshot{Week: week, IsAvailable: profile.IsAvailable}
	if err := uc.backup.Save(ctx, trainerID, snap); err != nil {
		uc.log.Debug("schedule backup refresh failed", zap.Error(err))
	}

	return LoadResult{
		Week:        week,
		IsAvailable: profile.IsAvailable,
	}
}
