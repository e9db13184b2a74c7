// Package report renders filtered compliance readings into exportable
// documents (PDF and XLSX). The rows are computed by the compliance package;
// this package only lays them out.
package report

import (
	"fmt"
	"time"

	"temp-compliance-backend/internal/timefmt"
)

// Title is the document heading shared by both export formats.
const Title = "Reporte de cumplimiento de temperaturas (HACCP)"

// columns is the shared table header.
var columns = []string{"Fecha", "Equipo", "Temp. (°C)", "Estado", "Rango", "Registrado por", "Notas"}

// Meta is the header block stamped onto every export, including zero-row
// ones.
type Meta struct {
	RestaurantName  string
	EquipmentFilter string // display label, e.g. "Todos los equipos"
	From            *time.Time
	To              *time.Time
	GeneratedAt     time.Time
}

// PeriodLabel describes the applied date range, or "Historial completo"
// when both bounds are open.
func (m Meta) PeriodLabel() string {
	switch {
	case m.From == nil && m.To == nil:
		return "Historial completo"
	case m.To == nil:
		return fmt.Sprintf("Desde %s", m.From.Format("02/01/2006"))
	case m.From == nil:
		return fmt.Sprintf("Hasta %s", m.To.Format("02/01/2006"))
	default:
		return fmt.Sprintf("%s - %s", m.From.Format("02/01/2006"), m.To.Format("02/01/2006"))
	}
}

func (m Meta) headerLines() []string {
	return []string{
		fmt.Sprintf("Restaurante: %s", m.RestaurantName),
		fmt.Sprintf("Periodo: %s", m.PeriodLabel()),
		fmt.Sprintf("Equipo: %s", m.EquipmentFilter),
		fmt.Sprintf("Generado: %s", timefmt.FullDateTime(m.GeneratedAt)),
	}
}
