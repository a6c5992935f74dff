package booking

import (
	"testing"
	"time"

	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/models"
)

func TestCanTransition_Matrix(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCanceled, true},

		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCanceled, StatusConfirmed, false},
		{StatusCanceled, StatusPending, false},
		{StatusCompleted, StatusCanceled, false},
		{StatusCompleted, StatusConfirmed, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		if tc.ok && err != nil {
			t.Fatalf("%s→%s: expected legal, got %v", tc.from, tc.to, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s→%s: expected rejection", tc.from, tc.to)
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	if err := CanTransition(Status("SCHEDULED"), StatusConfirmed); err == nil {
		t.Fatalf("expected rejection for unknown current status")
	}
	if err := CanTransition(StatusPending, Status("ARCHIVED")); err == nil {
		t.Fatalf("expected rejection for unknown target status")
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(StatusCanceled) || !IsTerminal(StatusCompleted) {
		t.Fatalf("CANCELED and COMPLETED must be terminal")
	}
	if IsTerminal(StatusPending) || IsTerminal(StatusConfirmed) {
		t.Fatalf("PENDING and CONFIRMED must not be terminal")
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("CONFIRMED"); err != nil {
		t.Fatalf("expected CONFIRMED to parse, got %v", err)
	}
	if _, err := ParseStatus("confirmed"); err == nil {
		t.Fatalf("expected lowercase value to be rejected")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Fatalf("expected empty value to be rejected")
	}
}

func TestActions_SetStatusAndTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	b := &models.Booking{Status: string(StatusPending)}
	if err := Confirm(b, now); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if b.Status != string(StatusConfirmed) || b.ConfirmedAt == nil {
		t.Fatalf("confirm did not apply status/timestamp")
	}

	if err := Complete(b, now); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if b.Status != string(StatusCompleted) || b.CompletedAt == nil {
		t.Fatalf("complete did not apply status/timestamp")
	}

	// estado terminal: nada mais sai dele
	if err := Cancel(b, now); err == nil {
		t.Fatalf("expected cancel of completed booking to fail")
	}
}

func TestCanSelfCancel(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	future := &models.Booking{
		Status: string(StatusConfirmed),
		Date:   now.Add(2 * time.Hour),
	}
	if err := CanSelfCancel(future, now); err != nil {
		t.Fatalf("expected future booking cancellable, got %v", err)
	}

	elapsed := &models.Booking{
		Status: string(StatusPending),
		Date:   now.Add(-time.Hour),
	}
	err := CanSelfCancel(elapsed, now)
	if !httperr.IsBusiness(err, "booking_elapsed") {
		t.Fatalf("expected booking_elapsed, got %v", err)
	}

	canceled := &models.Booking{
		Status: string(StatusCanceled),
		Date:   now.Add(2 * time.Hour),
	}
	if err := CanSelfCancel(canceled, now); err == nil {
		t.Fatalf("expected canceled booking not cancellable again")
	}
}
