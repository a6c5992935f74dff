package booking

import (
	"context"

	"github.com/trimhub/booking-api/internal/audit"
	domain "github.com/trimhub/booking-api/internal/domain/booking"
	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/models"
	"github.com/trimhub/booking-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancela um agendamento do próprio cliente. A busca por
// (id, userID) faz o papel de verificação de posse: agendamento de outro
// usuário é indistinguível de inexistente.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(b.Service.Barbershop.Timezone)

	if err := domain.CanSelfCancel(b, now); err != nil {
		return nil, err
	}

	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
