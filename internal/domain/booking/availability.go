package booking

import "time"

// ===============================
// Availability Filter
// ===============================

// AvailableTimes calcula o subconjunto da grade reservável para um serviço
// em um dia, dado "now" e os instantes já agendados nesse dia.
//
// Função pura: não consulta storage; o acesso ao banco é papel do
// colaborador que busca os agendamentos antes do filtro rodar.
//
// Regras:
//   - se o dia selecionado é hoje, horários que já passaram são removidos;
//   - horários com hora e minuto iguais a um agendamento existente são
//     removidos;
//   - dias que não são hoje não sofrem exclusão por "passado" (o limite de
//     não escolher dias anteriores é imposto fora do filtro).
func AvailableTimes(now time.Time, day time.Time, booked []time.Time) []string {
	isToday := sameDay(now, day.In(now.Location()))

	out := make([]string, 0, len(TimeGrid()))

	for _, hm := range TimeGrid() {
		slot, err := At(day, hm)
		if err != nil {
			continue
		}

		if isToday && !slot.After(now) {
			continue
		}

		if hasBookingAt(booked, slot) {
			continue
		}

		out = append(out, hm)
	}

	return out
}

// comparação por hora e minuto, como o agendamento é sempre um horário
// exato da grade
func hasBookingAt(booked []time.Time, slot time.Time) bool {
	for _, b := range booked {
		b = b.In(slot.Location())
		if b.Hour() == slot.Hour() && b.Minute() == slot.Minute() {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
