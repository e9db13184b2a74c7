package compliance

import (
	"fmt"
	"sort"
	"time"

	"temp-compliance-backend/internal/model"
)

// AllEquipment is the sentinel equipment filter meaning "no filter".
const AllEquipment = "all"

// UnknownEquipmentLabel replaces the name of equipment missing from the
// provided set. A dangling equipment reference degrades the row, never the
// whole report.
const UnknownEquipmentLabel = "Equipo Desconocido"

// ReportFilter is the immutable query for one report evaluation. Nil bounds
// leave that side open; both nil means full history.
type ReportFilter struct {
	From        *time.Time // inclusive
	To          *time.Time // inclusive
	EquipmentID string     // AllEquipment or empty selects every equipment
}

// FilterReadings returns the readings matching the filter, newest first.
// The equipment slice defines the restaurant scope: readings referencing
// equipment outside it belong to another restaurant and are dropped. With
// open bounds and the AllEquipment sentinel the result is exactly the
// scoped input set, reordered.
func FilterReadings(readings []model.TemperatureReading, equipment []model.Equipment, f ReportFilter) []model.TemperatureReading {
	byID := equipmentIndex(equipment)
	out := make([]model.TemperatureReading, 0, len(readings))
	for _, r := range readings {
		if f.From != nil && r.RecordedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && r.RecordedAt.After(*f.To) {
			continue
		}
		if f.EquipmentID != "" && f.EquipmentID != AllEquipment && r.EquipmentID != f.EquipmentID {
			continue
		}
		if _, ok := byID[r.EquipmentID]; !ok {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out
}

// ReportRow is one rendered line of the compliance report.
type ReportRow struct {
	RecordedAt    time.Time `json:"recorded_at"`
	EquipmentName string    `json:"equipment_name"`
	Value         float64   `json:"value"`
	Status        Status    `json:"status"`
	SnapshotRange string    `json:"snapshot_range"`
	RecordedBy    string    `json:"recorded_by"`
	Notes         string    `json:"notes,omitempty"`
}

// BuildReportRows renders filtered readings into report rows, preserving
// input order. Each row is graded against its own snapshot range
// (ClassifySnapshot). Attribution prefers the taken_by display name, then
// the resolved creator name, then the raw creator id.
func BuildReportRows(readings []model.TemperatureReading, equipment []model.Equipment, users []model.User) []ReportRow {
	byID := equipmentIndex(equipment)
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	rows := make([]ReportRow, 0, len(readings))
	for _, r := range readings {
		var eq *model.Equipment
		name := UnknownEquipmentLabel
		if e, ok := byID[r.EquipmentID]; ok {
			eq = &e
			name = e.Name
		}
		rows = append(rows, ReportRow{
			RecordedAt:    r.RecordedAt,
			EquipmentName: name,
			Value:         r.Value,
			Status:        ClassifySnapshot(r, eq),
			SnapshotRange: snapshotRangeLabel(r, eq),
			RecordedBy:    attribution(r, names),
			Notes:         r.Notes,
		})
	}
	return rows
}

func equipmentIndex(equipment []model.Equipment) map[string]model.Equipment {
	byID := make(map[string]model.Equipment, len(equipment))
	for _, eq := range equipment {
		byID[eq.ID] = eq
	}
	return byID
}

func attribution(r model.TemperatureReading, names map[string]string) string {
	if r.TakenBy != "" {
		return r.TakenBy
	}
	if n, ok := names[r.CreatedBy]; ok {
		return n
	}
	return r.CreatedBy
}

func snapshotRangeLabel(r model.TemperatureReading, eq *model.Equipment) string {
	if r.SnapshotMinTemp != nil && r.SnapshotMaxTemp != nil {
		return fmt.Sprintf("%g°C a %g°C", *r.SnapshotMinTemp, *r.SnapshotMaxTemp)
	}
	if eq != nil {
		return fmt.Sprintf("%g°C a %g°C", eq.MinTemp, eq.MaxTemp)
	}
	return "-"
}
