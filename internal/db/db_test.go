package db

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestSlotIndex_UniquePartialOverActiveStatuses(t *testing.T) {
	if !strings.Contains(slotIndexDDL, "CREATE UNIQUE INDEX") {
		t.Fatalf("slot index must be unique: %s", slotIndexDDL)
	}

	if !strings.Contains(slotIndexDDL, "(service_id, date)") {
		t.Fatalf("slot index must cover (service_id, date): %s", slotIndexDDL)
	}

	// só PENDING e CONFIRMED seguram o slot; terminal libera
	for _, s := range []string{"'PENDING'", "'CONFIRMED'"} {
		if !strings.Contains(slotIndexDDL, s) {
			t.Fatalf("slot index predicate missing %s: %s", s, slotIndexDDL)
		}
	}
	for _, s := range []string{"CANCELED", "COMPLETED"} {
		if strings.Contains(slotIndexDDL, s) {
			t.Fatalf("%s must not hold a slot: %s", s, slotIndexDDL)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}

	if !IsUniqueViolation(dup) {
		t.Fatal("bare 23505 must be detected")
	}

	if !IsUniqueViolation(fmt.Errorf("create user: %w", dup)) {
		t.Fatal("wrapped 23505 must be detected")
	}

	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violation is not a unique violation")
	}

	if IsUniqueViolation(errors.New("connection refused")) {
		t.Fatal("plain errors are not unique violations")
	}
}
