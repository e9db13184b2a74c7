// Package timefmt renders the Spanish date and relative-time labels used on
// the dashboard, charts and reports.
package timefmt

import (
	"fmt"
	"time"
)

var shortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// ShortDateTime formats a chart axis label, e.g. "12 ene, 14:30".
func ShortDateTime(t time.Time) string {
	return fmt.Sprintf("%d %s, %02d:%02d", t.Day(), shortMonths[t.Month()-1], t.Hour(), t.Minute())
}

// FullDateTime formats a report cell, e.g. "12/01/2026 14:30".
func FullDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// Ago renders a relative "hace ..." label for the time elapsed between t and
// now. Future timestamps are treated as just now.
func Ago(t time.Time, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	day := 24 * time.Hour
	switch {
	case d < time.Minute:
		return "hace menos de un minuto"
	case d < 2*time.Minute:
		return "hace 1 minuto"
	case d < time.Hour:
		return fmt.Sprintf("hace %d minutos", int(d.Minutes()))
	case d < 2*time.Hour:
		return "hace 1 hora"
	case d < day:
		return fmt.Sprintf("hace %d horas", int(d.Hours()))
	case d < 2*day:
		return "hace 1 día"
	case d < 30*day:
		return fmt.Sprintf("hace %d días", int(d/day))
	case d < 60*day:
		return "hace 1 mes"
	case d < 365*day:
		return fmt.Sprintf("hace %d meses", int(d/(30*day)))
	case d < 2*365*day:
		return "hace 1 año"
	default:
		return fmt.Sprintf("hace %d años", int(d/(365*day)))
	}
}
