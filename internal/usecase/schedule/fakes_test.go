package schedule

import (
	"context"
	"errors"

	"github.com/CoreFitApps/gym-scheduler/internal/backup"
	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

// ===============================
// Fakes
// ===============================

type fakeRepo struct {
	profiles map[uint]*models.TrainerProfile
	fetchErr error
	saveErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: make(map[uint]*models.TrainerProfile)}
}

func (r *fakeRepo) GetProfile(ctx context.Context, trainerID uint) (*models.TrainerProfile, error) {
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	p, ok := r.profiles[trainerID]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return p, nil
}

func (r *fakeRepo) SaveAvailability(ctx context.Context, trainerID uint, availability string, isAvailable bool) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	p, ok := r.profiles[trainerID]
	if !ok {
		p = &models.TrainerProfile{UserID: trainerID}
		r.profiles[trainerID] = p
	}
	p.Availability = availability
	p.IsAvailable = isAvailable
	return nil
}

func (r *fakeRepo) SaveBuilder(ctx context.Context, trainerID uint, builder string) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	p, ok := r.profiles[trainerID]
	if !ok {
		p = &models.TrainerProfile{UserID: trainerID}
		r.profiles[trainerID] = p
	}
	p.Builder = builder
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeBackup struct {
	snaps   map[uint]backup.Snapshot
	saveErr error
}

func newFakeBackup() *fakeBackup {
	return &fakeBackup{snaps: make(map[uint]backup.Snapshot)}
}

func (b *fakeBackup) Save(ctx context.Context, userID uint, snap backup.Snapshot) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	b.snaps[userID] = snap
	return nil
}

func (b *fakeBackup) Load(ctx context.Context, userID uint) (backup.Snapshot, error) {
	snap, ok := b.snaps[userID]
	if !ok {
		return backup.Snapshot{Week: domain.NewWeek()}, backup.ErrNotFound
	}
	return snap, nil
}

func (b *fakeBackup) Delete(ctx context.Context, userID uint) error {
	delete(b.snaps, userID)
	return nil
}

var _ backup.Store = (*fakeBackup)(nil)
