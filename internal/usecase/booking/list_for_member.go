package booking

import (
	"context"

	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/booking"
	"github.com/CoreFitApps/gym-scheduler/internal/dto"
)

type ListBookingsForMember struct {
	repo domain.Repository
}

func NewListBookingsForMember(
	repo domain.Repository,
) *ListBookingsForMember {
	return &ListBookingsForMember{
		repo: repo,
	}
}

func (uc *ListBookingsForMember) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForMember(ctx, userID)
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
