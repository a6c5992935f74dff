package booking

import (
	"fmt"
	"time"
)

// ===============================
// Time Grid
// ===============================

// Grade fixa de horários reserváveis, igual para todas as barbearias.
// Não deriva do expediente configurado de cada loja.
const (
	gridOpenMinutes  = 8 * 60  // 08:00
	gridCloseMinutes = 18 * 60 // 18:00, inclusivo
	gridStepMinutes  = 30

	TimeFormat = "15:04"
	DateFormat = "2006-01-02"
)

// TimeGrid retorna os horários do dia no formato HH:mm, em ordem.
// 08:00..18:00 de 30 em 30 minutos (21 entradas).
func TimeGrid() []string {
	grid := make([]string, 0, (gridCloseMinutes-gridOpenMinutes)/gridStepMinutes+1)
	for m := gridOpenMinutes; m <= gridCloseMinutes; m += gridStepMinutes {
		grid = append(grid, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return grid
}

// OnGrid verifica se um horário HH:mm pertence à grade.
func OnGrid(hm string) bool {
	t, err := time.Parse(TimeFormat, hm)
	if err != nil {
		return false
	}

	m := t.Hour()*60 + t.Minute()
	if m < gridOpenMinutes || m > gridCloseMinutes {
		return false
	}
	return (m-gridOpenMinutes)%gridStepMinutes == 0
}

// At combina um dia com um horário da grade no fuso do dia.
func At(day time.Time, hm string) (time.Time, error) {
	t, err := time.Parse(TimeFormat, hm)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}
