package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

// fakeListRepo records the window the usecase asked for and returns a
// canned result set.
type fakeListRepo struct {
	unimplementedRepo

	gym *models.Gym

	bookings  []models.Booking
	listErr   error
	gotStart  time.Time
	gotEnd    time.Time
	gotUserID uint
}

func (r *fakeListRepo) GetGymByID(ctx context.Context, id uint) (*models.Gym, error) {
	if r.gym == nil {
		return nil, errors.New("gym not found")
	}
	return r.gym, nil
}

func (r *fakeListRepo) ListBookingsForTrainer(ctx context.Context, trainerID uint, start, end time.Time) ([]models.Booking, error) {
	r.gotStart = start
	r.gotEnd = end
	return r.bookings, r.listErr
}

func (r *fakeListRepo) ListBookingsForMember(ctx context.Context, userID uint) ([]models.Booking, error) {
	r.gotUserID = userID
	return r.bookings, r.listErr
}

func TestListForTrainerUsesGymLocalDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	repo := &fakeListRepo{
		gym: &models.Gym{Timezone: "America/Sao_Paulo"},
	}

	date := time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC)
	uc := NewListBookingsForTrainer(repo)

	if _, err := uc.Execute(context.Background(), 7, 1, date); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	wantStart := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	if !repo.gotStart.Equal(wantStart) {
		t.Fatalf("window start = %v, want %v", repo.gotStart, wantStart)
	}
	if !repo.gotEnd.Equal(wantStart.Add(24 * time.Hour)) {
		t.Fatalf("window end = %v", repo.gotEnd)
	}
}

func TestListForTrainerMapsBookings(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	repo := &fakeListRepo{
		gym: &models.Gym{Timezone: "UTC"},
		bookings: []models.Booking{
			{
				SessionDate:     "2026-03-10",
				StartTime:       start,
				EndTime:         start.Add(time.Hour),
				DurationMinutes: 60,
				Status:          "pending",
				User:            models.User{Name: "Ana"},
				Trainer:         models.User{Name: "Marco"},
				Notes:           "lower body",
			},
		},
	}

	out, err := NewListBookingsForTrainer(repo).Execute(context.Background(), 7, 1, start)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	row := out[0]
	if row.MemberName != "Ana" || row.TrainerName != "Marco" {
		t.Fatalf("names not mapped: %+v", row)
	}
	if row.Status != "pending" || row.DurationMinutes != 60 || row.Notes != "lower body" {
		t.Fatalf("fields not mapped: %+v", row)
	}
}

func TestListForMemberReturnsEmptySliceNotNil(t *testing.T) {
	repo := &fakeListRepo{gym: &models.Gym{Timezone: "UTC"}}

	out, err := NewListBookingsForMember(repo).Execute(context.Background(), 3)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out == nil {
		t.Fatalf("empty listing must be a non-nil slice")
	}
	if repo.gotUserID != 3 {
		t.Fatalf("queried user %d", repo.gotUserID)
	}
}

func TestListSurfacesRepoError(t *testing.T) {
	repo := &fakeListRepo{
		gym:     &models.Gym{Timezone: "UTC"},
		listErr: errors.New("query failed"),
	}

	if _, err := NewListBookingsForMember(repo).Execute(context.Background(), 3); err == nil {
		t.Fatalf("expected repo error to surface")
	}
}
