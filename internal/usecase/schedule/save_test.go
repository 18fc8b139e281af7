package schedule

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"
	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/realtime"
)

func TestSavePersistsFlattenedWeek(t *testing.T) {
	repo := newFakeRepo()
	bak := newFakeBackup()
	hub := realtime.NewHub(zap.NewNop())

	sub := hub.Subscribe(realtime.TableTrainerProfiles, 0)
	defer hub.Unsubscribe(sub)

	week := domain.NewWeek()
	week[0] = []domain.TimeSlot{{StartTime: "08:00", EndTime: "09:00"}}
	week[4] = []domain.TimeSlot{{StartTime: "17:00", EndTime: "18:00"}}

	uc := NewSaveAvailability(repo, bak, hub, zap.NewNop())
	if err := uc.Execute(context.Background(), 7, 1, week, true); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	flat, err := domain.DecodeFlat(repo.profiles[7].Availability)
	if err != nil {
		t.Fatalf("stored column unreadable: %v", err)
	}
	if len(flat) != 2 {
		t.Fatalf("expected 2 stored slots, got %d", len(flat))
	}
	if flat[0].StartTime != "08:00" || flat[1].StartTime != "17:00" {
		t.Fatalf("storage order not Monday-first: %+v", flat)
	}
	if !repo.profiles[7].IsAvailable {
		t.Fatalf("availability flag not saved")
	}

	// backup refreshed with the day-bucketed form and the flag
	got, err := bak.Load(context.Background(), 7)
	if err != nil || len(got.Week[4]) != 1 {
		t.Fatalf("backup not refreshed with week form: %v", err)
	}
	if !got.IsAvailable {
		t.Fatalf("backup lost the availability flag")
	}

	// change event published for the editor's subscribers
	select {
	case ev := <-sub.C:
		change, ok := ev.Payload.(realtime.ProfileChange)
		if !ok || change.TrainerID != 7 {
			t.Fatalf("unexpected event payload: %+v", ev)
		}
	default:
		t.Fatalf("no change event published")
	}
}

func TestSaveRejectsInvalidSlot(t *testing.T) {
	repo := newFakeRepo()

	week := domain.NewWeek()
	week[2] = []domain.TimeSlot{{StartTime: "10:00", EndTime: "09:00"}}

	uc := NewSaveAvailability(repo, newFakeBackup(), realtime.NewHub(zap.NewNop()), zap.NewNop())
	err := uc.Execute(context.Background(), 7, 1, week, true)

	if !httperr.IsBusiness(err, "invalid_time_range") {
		t.Fatalf("expected invalid_time_range, got %v", err)
	}
	if _, ok := repo.profiles[7]; ok {
		t.Fatalf("invalid week must not be persisted")
	}
}

func TestSaveSurfacesRepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("write failed")
	bak := newFakeBackup()

	week := domain.NewWeek()
	_ = week.AddSlot(0)

	uc := NewSaveAvailability(repo, bak, realtime.NewHub(zap.NewNop()), zap.NewNop())
	if err := uc.Execute(context.Background(), 7, 1, week, true); err == nil {
		t.Fatalf("expected repo error to surface")
	}
	if len(bak.snaps) != 0 {
		t.Fatalf("failed save must not refresh the backup")
	}
}

// End-to-end through the fakes: what a trainer saves is what the editor
// loads back, modulo the flat form's day redistribution.
func TestSaveThenLoadRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	bak := newFakeBackup()
	hub := realtime.NewHub(zap.NewNop())
	log := zap.NewNop()

	week := domain.NewWeek()
	week[3] = []domain.TimeSlot{{StartTime: "07:30", EndTime: "08:30"}}

	if err := NewSaveAvailability(repo, bak, hub, log).Execute(context.Background(), 7, 1, week, true); err != nil {
		t.Fatalf("save: %v", err)
	}

	res := NewLoadAvailability(repo, bak, log).Execute(context.Background(), 7)

	if res.Week.SlotCount() != 1 {
		t.Fatalf("saved slot lost: count %d", res.Week.SlotCount())
	}

	found := false
	for d := 0; d < domain.DaysPerWeek; d++ {
		for _, s := range res.Week[d] {
			if s.StartTime == "07:30" && s.EndTime == "08:30" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("saved slot not present anywhere in the loaded week")
	}
}
