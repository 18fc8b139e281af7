package booking

import (
	"context"
	"time"

	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/booking"
	"github.com/CoreFitApps/gym-scheduler/internal/dto"
	"github.com/CoreFitApps/gym-scheduler/internal/timezone"
)

type ListBookingsForTrainer struct {
	repo domain.Repository
}

func NewListBookingsForTrainer(
	repo domain.Repository,
) *ListBookingsForTrainer {
	return &ListBookingsForTrainer{
		repo: repo,
	}
}

func (uc *ListBookingsForTrainer) Execute(
	ctx context.Context,
	trainerID uint,
	gymID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	gym, err := uc.repo.GetGymByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(gym.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForTrainer(
		ctx,
		trainerID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:              b.ID,
			SessionDate:     b.SessionDate,
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			DurationMinutes: b.DurationMinutes,
			Status:          b.Status,
			MemberName:      b.User.Name,
			TrainerName:     b.Trainer.Name,
			Notes:           b.Notes,
		})
	}

	return out, nil
}
