package booking

import "github.com/trimhub/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", httperr.ErrBusiness("invalid_status")
	}
	return s, nil
}

// ===============================
// Transitions
// ===============================

// CANCELED e COMPLETED são terminais: nenhuma transição sai deles.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCompleted, StatusCanceled},
}

// CanTransition valida se a mudança current→target é legal.
func CanTransition(current, target Status) error {
	if !current.Valid() || !target.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}

	for _, allowed := range transitions[current] {
		if allowed == target {
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_transition")
}

// IsTerminal indica status sem transições de saída.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}
