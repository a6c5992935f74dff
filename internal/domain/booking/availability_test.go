package booking

import (
	"reflect"
	"testing"
	"time"
)

func day(t *testing.T, y int, m time.Month, d int) time.Time {
	t.Helper()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(t *testing.T, base time.Time, hm string) time.Time {
	t.Helper()
	ts, err := At(base, hm)
	if err != nil {
		t.Fatalf("bad time %q: %v", hm, err)
	}
	return ts
}

func TestAvailableTimes_OtherDayNoPastExclusion(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)

	// dia anterior ao "hoje": nenhum horário é excluído por passado
	selected := day(t, 2026, 3, 9)

	got := AvailableTimes(now, selected, nil)
	if !reflect.DeepEqual(got, TimeGrid()) {
		t.Fatalf("expected full grid for non-today day, got %v", got)
	}
}

func TestAvailableTimes_EmptyBookingsFullGrid(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	selected := day(t, 2026, 3, 20)

	got := AvailableTimes(now, selected, nil)
	if !reflect.DeepEqual(got, TimeGrid()) {
		t.Fatalf("expected full grid, got %v", got)
	}
}

func TestAvailableTimes_BookedSlotsRemoved(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	selected := day(t, 2026, 3, 20)

	booked := []time.Time{
		at(t, selected, "09:00"),
		at(t, selected, "14:30"),
	}

	got := AvailableTimes(now, selected, booked)

	if len(got) != 19 {
		t.Fatalf("expected 19 slots, got %d", len(got))
	}

	for _, hm := range got {
		if hm == "09:00" || hm == "14:30" {
			t.Fatalf("booked slot %s present in output", hm)
		}
	}
}

func TestAvailableTimes_TodayPastCutoff(t *testing.T) {
	// hoje às 10:15: tudo até 10:00 sai, de 10:30 em diante fica
	now := time.Date(2026, 3, 10, 10, 15, 0, 0, time.UTC)
	selected := day(t, 2026, 3, 10)

	got := AvailableTimes(now, selected, nil)

	want := []string{
		"10:30", "11:00", "11:30", "12:00", "12:30",
		"13:00", "13:30", "14:00", "14:30", "15:00",
		"15:30", "16:00", "16:30", "17:00", "17:30",
		"18:00",
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAvailableTimes_TodayExactSlotExcluded(t *testing.T) {
	// slot igual ao instante atual conta como passado
	now := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)
	selected := day(t, 2026, 3, 10)

	got := AvailableTimes(now, selected, nil)

	if got[0] != "11:00" {
		t.Fatalf("expected first slot 11:00, got %s", got[0])
	}
}

func TestAvailableTimes_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 15, 0, 0, time.UTC)
	selected := day(t, 2026, 3, 10)
	booked := []time.Time{at(t, selected, "12:00")}

	first := AvailableTimes(now, selected, booked)
	second := AvailableTimes(now, selected, booked)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output on repeated calls")
	}
}

func TestAvailableTimes_BookedMatchByHourMinute(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	selected := day(t, 2026, 3, 20)

	// agendamento em outro fuso, mesmo instante de parede no dia
	other := time.FixedZone("UTC+3", 3*3600)
	booked := []time.Time{
		time.Date(2026, 3, 20, 12, 0, 0, 0, other), // 09:00 UTC
	}

	got := AvailableTimes(now, selected, booked)

	for _, hm := range got {
		if hm == "09:00" {
			t.Fatalf("expected 09:00 removed after timezone normalization")
		}
	}
}
