package booking

import (
	"time"

	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking, now time.Time) error {
	if err := CanTransition(Status(b.Status), StatusConfirmed); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanTransition(Status(b.Status), StatusCompleted); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanTransition(Status(b.Status), StatusCanceled); err != nil {
		return err
	}

	b.Status = string(StatusCanceled)
	b.CanceledAt = &now
	return nil
}

// Transition aplica a mudança para o status alvo, validando legalidade.
func Transition(b *models.Booking, target Status, now time.Time) error {
	switch target {
	case StatusConfirmed:
		return Confirm(b, now)
	case StatusCompleted:
		return Complete(b, now)
	case StatusCanceled:
		return Cancel(b, now)
	default:
		return httperr.ErrBusiness("invalid_transition")
	}
}

// CanSelfCancel valida o cancelamento feito pelo próprio cliente:
// permitido apenas antes do horário marcado e fora de estado terminal.
func CanSelfCancel(b *models.Booking, now time.Time) error {
	if err := CanTransition(Status(b.Status), StatusCanceled); err != nil {
		return err
	}

	if !b.Date.After(now) {
		return httperr.ErrBusiness("booking_elapsed")
	}

	return nil
}
