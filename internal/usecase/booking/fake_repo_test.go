package booking

import (
	"context"
	"time"

	domain "github.com/trimhub/booking-api/internal/domain/booking"
	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/models"
)

// repositório em memória com a mesma regra de slot do repositório real
type fakeRepo struct {
	services map[uint]*models.Service
	bookings map[uint]*models.Booking
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: make(map[uint]*models.Service),
		bookings: make(map[uint]*models.Booking),
	}
}

func (f *fakeRepo) addService(id uint, tz string) *models.Service {
	svc := &models.Service{
		ID:         id,
		Name:       "Corte",
		Price:      45,
		Barbershop: models.Barbershop{ID: 1, Name: "Barbearia Teste", Timezone: tz},
	}
	f.services[id] = svc
	return svc
}

func (f *fakeRepo) GetService(_ context.Context, serviceID uint) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return svc, nil
}

func isActive(status string) bool {
	return status == string(domain.StatusPending) ||
		status == string(domain.StatusConfirmed)
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	for _, existing := range f.bookings {
		if existing.ServiceID == b.ServiceID &&
			existing.Date.Equal(b.Date) &&
			isActive(existing.Status) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	f.nextID++
	b.ID = f.nextID

	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeRepo) ListBookedTimes(
	_ context.Context,
	serviceID uint,
	start time.Time,
	end time.Time,
) ([]time.Time, error) {

	var times []time.Time
	for _, b := range f.bookings {
		if b.ServiceID != serviceID || !isActive(b.Status) {
			continue
		}
		if b.Date.Before(start) || !b.Date.Before(end) {
			continue
		}
		times = append(times, b.Date)
	}
	return times, nil
}

func (f *fakeRepo) GetBooking(_ context.Context, bookingID uint) (*models.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	cp := *b
	cp.Service = *f.services[b.ServiceID]
	return &cp, nil
}

func (f *fakeRepo) GetBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	b, err := f.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	return b, nil
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return httperr.ErrBusiness("booking_not_found")
	}

	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeRepo) ListActiveBookings(
	_ context.Context,
	completedSince time.Time,
) ([]models.Booking, error) {

	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == string(domain.StatusCanceled) {
			continue
		}
		if b.Status == string(domain.StatusCompleted) && b.Date.Before(completedSince) {
			continue
		}
		cp := *b
		cp.Service = *f.services[b.ServiceID]
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeRepo) ListAllBookings(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		cp := *b
		cp.Service = *f.services[b.ServiceID]
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeRepo) ListUserBookings(
	_ context.Context,
	userID uint,
	from time.Time,
	upcoming bool,
) ([]models.Booking, error) {

	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		isUpcoming := !b.Date.Before(from)
		if isUpcoming != upcoming {
			continue
		}
		cp := *b
		cp.Service = *f.services[b.ServiceID]
		out = append(out, cp)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
