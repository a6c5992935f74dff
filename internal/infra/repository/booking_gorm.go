package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trimhub/booking-api/internal/db"
	domain "github.com/trimhub/booking-api/internal/domain/booking"
	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// status que ocupam um slot
var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Preload("Barbershop").
		First(&svc, serviceID).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// lockSlot seleciona as linhas ativas do slot com FOR UPDATE. O lock
// precisa ser de linha: Postgres recusa FOR UPDATE combinado com
// agregação (0A000), então nada de Count aqui.
func lockSlot(tx *gorm.DB, serviceID uint, date time.Time) *gorm.DB {
	return tx.
		Model(&models.Booking{}).
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"service_id = ? AND date = ? AND status IN ?",
			serviceID, date, activeStatuses,
		)
}

// CreateBooking fecha a janela de corrida do "verifica e insere" duas vezes:
// SELECT ... FOR UPDATE dentro da transação, e o índice único parcial de
// slot (service_id, date) como última linha de defesa. Violação do índice
// vira o mesmo erro de negócio do caminho normal.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var taken []models.Booking
		if err := lockSlot(tx, b.ServiceID, b.Date).Find(&taken).Error; err != nil {
			return err
		}

		if len(taken) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(b).Error
	})

	if err != nil && db.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	serviceID uint,
	start time.Time,
	end time.Time,
) ([]time.Time, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("date").
		Where(
			"service_id = ? AND status IN ? AND date >= ? AND date < ?",
			serviceID, activeStatuses, start, end,
		).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, len(bookings))
	for _, b := range bookings {
		times = append(times, b.Date)
	}
	return times, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service.Barbershop").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service.Barbershop").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookings(
	ctx context.Context,
	completedSince time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service.Barbershop").
		Where("status <> ?", string(domain.StatusCanceled)).
		Where(
			"NOT (status = ? AND date < ?)",
			string(domain.StatusCompleted), completedSince,
		).
		Order("date DESC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListAllBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service.Barbershop").
		Order("date DESC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListUserBookings(
	ctx context.Context,
	userID uint,
	from time.Time,
	upcoming bool,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Service.Barbershop").
		Where("user_id = ?", userID)

	if upcoming {
		q = q.Where("date >= ?", from).Order("date ASC")
	} else {
		q = q.Where("date < ?", from).Order("date DESC")
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
