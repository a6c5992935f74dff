package booking

import (
	"context"
	"time"

	"github.com/trimhub/booking-api/internal/models"
)

type Repository interface {
	// -------- Service / Barbershop --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking insere o agendamento garantindo que o slot
	// (service, date) ainda está livre. Retorna erro de negócio
	// "slot_taken" quando outro agendamento não cancelado já ocupa
	// o mesmo instante.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------

	// ListBookedTimes retorna os instantes ocupados (status não
	// cancelado/concluído) de um serviço dentro do intervalo.
	ListBookedTimes(
		ctx context.Context,
		serviceID uint,
		start time.Time,
		end time.Time,
	) ([]time.Time, error)

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	GetBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listings --------
	ListActiveBookings(
		ctx context.Context,
		completedSince time.Time,
	) ([]models.Booking, error)

	ListAllBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListUserBookings(
		ctx context.Context,
		userID uint,
		from time.Time,
		upcoming bool,
	) ([]models.Booking, error)
}
