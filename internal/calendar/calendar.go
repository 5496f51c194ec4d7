// Package calendar arma la grilla mensual del selector de fecha. Es
// puro cálculo de fechas: la navegación y el resaltado de días con citas
// pendientes no tocan la red.
package calendar

import (
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

type Day struct {
	Date       time.Time
	InMonth    bool
	Today      bool
	Selected   bool
	HasPending bool
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var SpanishWeekdays = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// Grid genera las 42 celdas del mes (6 semanas, arrancando en el domingo
// anterior o igual al día 1). pending marca los días con citas pendientes,
// con clave 2006-01-02.
func Grid(month, selected, today time.Time, pending map[string]bool) []Day {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]Day, 0, 42)
	for i := 0; i < 42; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, Day{
			Date:       d,
			InMonth:    d.Month() == month.Month(),
			Today:      sameDay(d, today),
			Selected:   sameDay(d, selected),
			HasPending: pending[d.Format(dateKeyLayout)],
		})
	}
	return days
}

func Prev(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location()).AddDate(0, -1, 0)
}

func Next(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location()).AddDate(0, 1, 0)
}

// Title devuelve el encabezado del mes en español, p. ej. "marzo 2025".
func Title(month time.Time) string {
	return fmt.Sprintf("%s %d", spanishMonths[month.Month()-1], month.Year())
}

// PendingDays convierte fechas de citas pendientes (dateTimeAssigned del
// backend) al mapa de marcas que consume Grid.
func PendingDays(assigned []string) map[string]bool {
	pending := make(map[string]bool, len(assigned))
	for _, raw := range assigned {
		if len(raw) >= len(dateKeyLayout) {
			pending[raw[:len(dateKeyLayout)]] = true
		}
	}
	return pending
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
