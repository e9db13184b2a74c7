package compliance

import "temp-compliance-backend/internal/model"

// LastReading returns the reading with the greatest RecordedAt among those
// belonging to the given equipment, or false when it has none. Ties on
// identical timestamps resolve to the reading scanned last; callers must not
// rely on input order. The input slice is never reordered.
func LastReading(readings []model.TemperatureReading, equipmentID string) (model.TemperatureReading, bool) {
	var last model.TemperatureReading
	found := false
	for _, r := range readings {
		if r.EquipmentID != equipmentID {
			continue
		}
		if !found || !r.RecordedAt.Before(last.RecordedAt) {
			last = r
			found = true
		}
	}
	return last, found
}
