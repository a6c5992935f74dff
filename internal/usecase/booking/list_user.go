package booking

import (
	"context"

	domain "github.com/trimhub/booking-api/internal/domain/booking"
	"github.com/trimhub/booking-api/internal/dto"
	"github.com/trimhub/booking-api/internal/timezone"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

// Execute lista os agendamentos do próprio cliente: futuros em ordem
// crescente ou passados em ordem decrescente.
func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
	upcoming bool,
) ([]dto.UserBookingDTO, error) {

	now := timezone.Now()

	bookings, err := uc.repo.ListUserBookings(ctx, userID, now, upcoming)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserBookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.UserBookingDTO{
			ID:     b.ID,
			Date:   b.Date,
			Status: b.Status,
			Service: dto.BookingServiceDTO{
				Name:           b.Service.Name,
				Price:          b.Service.Price,
				BarbershopName: b.Service.Barbershop.Name,
				BarbershopImg:  b.Service.Barbershop.ImageURL,
			},
			Address: b.Service.Barbershop.Address,
		})
	}

	return out, nil
}
