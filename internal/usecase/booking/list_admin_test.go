package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/trimhub/booking-api/internal/domain/booking"
)

func TestListAdminBookings_FiltersCanceledAndStaleCompleted(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "UTC")

	now := time.Now().UTC()

	pending := seedBooking(repo, 1, now.Add(24*time.Hour), domain.StatusPending)
	confirmed := seedBooking(repo, 2, now.Add(48*time.Hour), domain.StatusConfirmed)
	seedBooking(repo, 3, now.Add(72*time.Hour), domain.StatusCanceled)

	// concluído recente fica; concluído velho sai da lista ativa
	recent := seedBooking(repo, 4, now.Add(-2*24*time.Hour), domain.StatusCompleted)
	seedBooking(repo, 5, now.Add(-30*24*time.Hour), domain.StatusCompleted)

	uc := NewListAdminBookings(repo)

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(got))
	}

	want := map[uint]bool{pending.ID: true, confirmed.ID: true, recent.ID: true}
	for _, b := range got {
		if !want[b.ID] {
			t.Fatalf("unexpected booking %d (status %s) in active list", b.ID, b.Status)
		}
	}
}

func TestListBookingHistory_IncludesEverything(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "UTC")

	now := time.Now().UTC()
	seedBooking(repo, 1, now.Add(24*time.Hour), domain.StatusPending)
	seedBooking(repo, 2, now.Add(-30*24*time.Hour), domain.StatusCompleted)
	seedBooking(repo, 3, now.Add(-10*24*time.Hour), domain.StatusCanceled)

	uc := NewListBookingHistory(repo)

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("history must not filter anything, got %d of 3", len(got))
	}
}
