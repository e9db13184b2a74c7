package compliance

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"temp-compliance-backend/internal/model"
	"temp-compliance-backend/internal/timefmt"
)

// TimeRange is a named history window.
type TimeRange string

const (
	Range24h TimeRange = "24h"
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
)

// ErrInvalidRange reports a time-range selector outside the enumerated set.
// It must be rejected at the API boundary, never inside the core.
var ErrInvalidRange = errors.New("invalid time range")

// ParseTimeRange validates a raw selector value.
func ParseTimeRange(s string) (TimeRange, error) {
	switch tr := TimeRange(s); tr {
	case Range24h, Range7d, Range30d:
		return tr, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
}

// cutoff returns the window start relative to now. The 30d window subtracts
// one calendar month, not a flat 30 days; this mirrors the established
// product behavior.
func (tr TimeRange) cutoff(now time.Time) time.Time {
	switch tr {
	case Range24h:
		return now.AddDate(0, 0, -1)
	case Range7d:
		return now.AddDate(0, 0, -7)
	default:
		return monthEarlier(now)
	}
}

// monthEarlier shifts now one calendar month back, clamping the day to the
// target month's length (Mar 31 -> Feb 28). AddDate would instead normalize
// the overflow forward into March and narrow the window.
func monthEarlier(now time.Time) time.Time {
	y, m, d := now.Date()
	firstOfPrev := time.Date(y, m-1, 1, 0, 0, 0, 0, now.Location())
	if last := firstOfPrev.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(firstOfPrev.Year(), firstOfPrev.Month(), d,
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
}

// HistoryPoint is one charted sample. Min and Max carry the equipment's
// current range so the chart can draw reference lines for today's policy;
// alert coloring elsewhere must use the reading's own snapshot instead.
type HistoryPoint struct {
	RecordedAt time.Time `json:"recorded_at"`
	Label      string    `json:"label"`
	Value      float64   `json:"value"`
	Min        float64   `json:"min"`
	Max        float64   `json:"max"`
}

// History returns the equipment's readings recorded strictly after
// now−range, sorted ascending by timestamp. The series is recomputed in full
// on every call; no state survives a range switch, so identical inputs give
// identical output.
func History(readings []model.TemperatureReading, eq model.Equipment, tr TimeRange, now time.Time) []HistoryPoint {
	cut := tr.cutoff(now)
	points := make([]HistoryPoint, 0)
	for _, r := range readings {
		if r.EquipmentID != eq.ID || !r.RecordedAt.After(cut) {
			continue
		}
		points = append(points, HistoryPoint{
			RecordedAt: r.RecordedAt,
			Label:      timefmt.ShortDateTime(r.RecordedAt),
			Value:      r.Value,
			Min:        eq.MinTemp,
			Max:        eq.MaxTemp,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].RecordedAt.Before(points[j].RecordedAt)
	})
	return points
}
