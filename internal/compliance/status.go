// Package compliance implements the temperature-compliance core: status
// classification, last-reading resolution, time-windowed history, dashboard
// aggregation and report filtering. Everything here is a pure function over
// collections the store has already fetched; nothing mutates its inputs.
package compliance

import (
	"math"

	"temp-compliance-backend/internal/model"
)

// Status classifies a reading against a temperature range.
type Status string

const (
	StatusNormal  Status = "normal"
	StatusWarning Status = "warning"
	StatusAlert   Status = "alert"
	// StatusNoData marks equipment that has never recorded a reading. It is
	// a property of the equipment, not of any single reading.
	StatusNoData Status = "no_data"
)

// warningMargin is the fixed distance in °C from either bound that turns a
// normal reading into a warning. It does not scale with the range width, so
// for ranges narrower than 2°C the warning band covers the whole in-range
// zone. That is the established product behavior; keep it.
const warningMargin = 1.0

// ClassifyValue grades a temperature value against a [minTemp, maxTemp]
// range: alert outside the range, warning within warningMargin of either
// bound (inclusive), normal otherwise.
func ClassifyValue(value, minTemp, maxTemp float64) Status {
	switch {
	case value < minTemp || value > maxTemp:
		return StatusAlert
	case value <= minTemp+warningMargin || value >= maxTemp-warningMargin:
		return StatusWarning
	default:
		return StatusNormal
	}
}

// ClassifyLive grades a reading against the equipment's current range. The
// dashboard uses this: it answers "are we compliant right now under the
// limits in force today".
//
// ClassifyLive and ClassifySnapshot intentionally coexist; see the latter.
func ClassifyLive(r model.TemperatureReading, eq model.Equipment) Status {
	return ClassifyValue(r.Value, eq.MinTemp, eq.MaxTemp)
}

// ClassifySnapshot grades a reading against the range captured when it was
// recorded, so report rows answer "was this reading compliant under the
// rules in force then" and stay stable after equipment is reconfigured.
// Each missing snapshot bound falls back to the equipment's current bound;
// with no equipment either, that side is unbounded. Reports only distinguish
// alert from normal, so no warning band applies here.
//
// Do not merge this with ClassifyLive: the dashboard/report asymmetry is
// deliberate.
func ClassifySnapshot(r model.TemperatureReading, eq *model.Equipment) Status {
	minTemp := math.Inf(-1)
	maxTemp := math.Inf(1)
	if r.SnapshotMinTemp != nil {
		minTemp = *r.SnapshotMinTemp
	} else if eq != nil {
		minTemp = eq.MinTemp
	}
	if r.SnapshotMaxTemp != nil {
		maxTemp = *r.SnapshotMaxTemp
	} else if eq != nil {
		maxTemp = eq.MaxTemp
	}
	if r.Value < minTemp || r.Value > maxTemp {
		return StatusAlert
	}
	return StatusNormal
}
