package booking

import (
	"context"
	"time"

	domain "github.com/trimhub/booking-api/internal/domain/booking"
	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve os horários livres de um serviço em um dia.
// A busca dos agendamentos existentes é storage; o filtro em si é puro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	serviceID uint,
	dateStr string,
) ([]string, error) {

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	loc := timezone.Location(svc.Barbershop.Timezone)

	day, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := uc.repo.ListBookedTimes(ctx, svc.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(svc.Barbershop.Timezone)

	return domain.AvailableTimes(now, day, booked), nil
}
