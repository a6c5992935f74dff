package booking

import (
	"context"
	"time"

	domain "github.com/trimhub/booking-api/internal/domain/booking"
	"github.com/trimhub/booking-api/internal/dto"
	"github.com/trimhub/booking-api/internal/models"
	"github.com/trimhub/booking-api/internal/timezone"
)

// agendamentos COMPLETED somem da lista ativa depois de uma semana
const completedRetention = 7 * 24 * time.Hour

type ListAdminBookings struct {
	repo domain.Repository
}

func NewListAdminBookings(repo domain.Repository) *ListAdminBookings {
	return &ListAdminBookings{repo: repo}
}

// Execute lista o que o back-office modera: tudo que não foi cancelado,
// menos os concluídos antigos.
func (uc *ListAdminBookings) Execute(
	ctx context.Context,
) ([]dto.AdminBookingDTO, error) {

	since := timezone.Now().Add(-completedRetention)

	bookings, err := uc.repo.ListActiveBookings(ctx, since)
	if err != nil {
		return nil, err
	}

	return toAdminDTOs(bookings), nil
}

type ListBookingHistory struct {
	repo domain.Repository
}

func NewListBookingHistory(repo domain.Repository) *ListBookingHistory {
	return &ListBookingHistory{repo: repo}
}

func (uc *ListBookingHistory) Execute(
	ctx context.Context,
) ([]dto.AdminBookingDTO, error) {

	bookings, err := uc.repo.ListAllBookings(ctx)
	if err != nil {
		return nil, err
	}

	return toAdminDTOs(bookings), nil
}

func toAdminDTOs(bookings []models.Booking) []dto.AdminBookingDTO {
	out := make([]dto.AdminBookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.AdminBookingDTO{
			ID:     b.ID,
			Date:   b.Date,
			Status: b.Status,
			User: dto.BookingUserDTO{
				Name:     b.User.Name,
				Email:    b.User.Email,
				Phone:    b.User.Phone,
				ImageURL: b.User.ImageURL,
			},
			Service: dto.BookingServiceDTO{
				Name:           b.Service.Name,
				Price:          b.Service.Price,
				BarbershopName: b.Service.Barbershop.Name,
				BarbershopImg:  b.Service.Barbershop.ImageURL,
			},
		})
	}
	return out
}
