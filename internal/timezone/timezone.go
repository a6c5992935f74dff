// Package timezone centraliza a resolução de fuso. Toda conta de
// horário (grade, disponibilidade, cancelamento) usa o fuso da
// barbearia; o default cobre linhas antigas sem fuso gravado.
package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve tz, caindo para o default (e, em último caso, UTC)
// em vez de propagar erro: fuso inválido não pode derrubar request.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
