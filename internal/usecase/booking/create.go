package booking

import (
	"context"
	"strings"
	"time"

	"github.com/trimhub/booking-api/internal/audit"
	domain "github.com/trimhub/booking-api/internal/domain/booking"
	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/models"
	"github.com/trimhub/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	initial domain.Status
}

// NewCreateBooking recebe o status inicial como decisão explícita de
// configuração (pending ou confirmed), nunca implícita no código.
func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	initial domain.Status,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		audit:   audit,
		initial: initial,
	}
}

// InitialStatusFromConfig interpreta o valor do knob de configuração.
// Valores desconhecidos caem no default PENDING.
func InitialStatusFromConfig(raw string) domain.Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "confirmed":
		return domain.StatusConfirmed
	default:
		return domain.StatusPending
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// horário precisa pertencer à grade fixa
	if !domain.OnGrid(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	loc := timezone.Location(svc.Barbershop.Timezone)

	start, err := time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(svc.Barbershop.Timezone)
	if !start.After(now) {
		return nil, httperr.ErrBusiness("time_in_past")
	}

	b := &models.Booking{
		UserID:    in.UserID,
		ServiceID: svc.ID,
		Date:      start,
		Status:    string(uc.initial),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.UserID,
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"service_id": svc.ID,
					"date":       start,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
