package booking

import (
	"context"

	"github.com/trimhub/booking-api/internal/audit"
	domain "github.com/trimhub/booking-api/internal/domain/booking"
	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/models"
	"github.com/trimhub/booking-api/internal/timezone"
)

// ======================================================
// MODERATE (ADMIN)
// ======================================================

// ModerateBooking aplica transições de status iniciadas pelo
// back-office. Checagem de papel é do middleware; posse não é checada
// de propósito: admin modera agendamento de qualquer cliente.
type ModerateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewModerateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ModerateBooking {
	return &ModerateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ModerateBooking) Execute(
	ctx context.Context,
	adminID uint,
	bookingID uint,
	rawStatus string,
) (*models.Booking, error) {

	target, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(b.Service.Barbershop.Timezone)

	// transição é validada contra o status atual; PATCH com alvo
	// ilegal é rejeitado em vez de gravado às cegas
	if err := domain.Transition(b, target, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_" + string(target),
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// Cancel é o DELETE do back-office: marca CANCELED, nunca apaga a linha
// (a variante de hard delete foi descontinuada por destruir histórico).
func (uc *ModerateBooking) Cancel(
	ctx context.Context,
	adminID uint,
	bookingID uint,
) (*models.Booking, error) {
	return uc.Execute(ctx, adminID, bookingID, string(domain.StatusCanceled))
}
