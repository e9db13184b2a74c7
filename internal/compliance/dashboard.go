package compliance

import (
	"time"

	"temp-compliance-backend/internal/model"
	"temp-compliance-backend/internal/timefmt"
)

// NoRecordsLabel is the fixed dashboard label for equipment that has never
// recorded a reading.
const NoRecordsLabel = "Sin registros"

// DashboardItem merges an equipment with its derived live status.
type DashboardItem struct {
	model.Equipment
	LastReading     *model.TemperatureReading `json:"last_reading,omitempty"`
	Status          Status                    `json:"status"`
	LastUpdatedText string                    `json:"last_updated_text"`
}

// DashboardItems produces one item per equipment: the last reading graded
// against the equipment's current range (ClassifyLive) plus a relative
// "last updated" label. Equipment without readings gets StatusNoData and
// NoRecordsLabel.
//
// Tenant filtering happens before this stage; the equipment slice is assumed
// to already be scoped to what the caller may see.
func DashboardItems(equipment []model.Equipment, readings []model.TemperatureReading, now time.Time) []DashboardItem {
	items := make([]DashboardItem, 0, len(equipment))
	for _, eq := range equipment {
		item := DashboardItem{
			Equipment:       eq,
			Status:          StatusNoData,
			LastUpdatedText: NoRecordsLabel,
		}
		if last, ok := LastReading(readings, eq.ID); ok {
			r := last
			item.LastReading = &r
			item.Status = ClassifyLive(last, eq)
			item.LastUpdatedText = timefmt.Ago(last.RecordedAt, now)
		}
		items = append(items, item)
	}
	return items
}
