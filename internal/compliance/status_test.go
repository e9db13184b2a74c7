package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"temp-compliance-backend/internal/model"
)

func TestClassifyValue(t *testing.T) {
	// Reference equipment range used throughout: min=1, max=4.
	testCases := []struct {
		name     string
		value    float64
		expected Status
	}{
		{"well inside the range", 2.5, StatusNormal},
		{"exactly at min", 1.0, StatusWarning},
		{"exactly at min plus margin", 2.0, StatusWarning},
		{"exactly at max minus margin", 3.0, StatusWarning},
		{"inside the upper margin", 3.5, StatusWarning},
		{"exactly at max", 4.0, StatusWarning},
		{"below min", 0.5, StatusAlert},
		{"above max", 4.5, StatusAlert},
		{"far below min", -10, StatusAlert},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyValue(tc.value, 1, 4))
		})
	}
}

func TestClassifyValue_AlertExactlyOutsideRange(t *testing.T) {
	// alert iff value < min or value > max, for any range.
	for _, r := range []struct{ min, max float64 }{{0, 8}, {-20, -15}, {2, 2}} {
		assert.Equal(t, StatusAlert, ClassifyValue(r.min-0.1, r.min, r.max))
		assert.Equal(t, StatusAlert, ClassifyValue(r.max+0.1, r.min, r.max))
		assert.NotEqual(t, StatusAlert, ClassifyValue(r.min, r.min, r.max))
		assert.NotEqual(t, StatusAlert, ClassifyValue(r.max, r.min, r.max))
	}
}

func TestClassifyValue_NarrowRangeIsAllWarning(t *testing.T) {
	// For ranges narrower than twice the margin the warning band swallows
	// the whole in-range zone. Established behavior, not a bug.
	for _, v := range []float64{2.0, 2.5, 3.0} {
		assert.Equal(t, StatusWarning, ClassifyValue(v, 2, 3))
	}
}

func TestClassifyLiveAndSnapshotDiverge(t *testing.T) {
	// The equipment was reconfigured after the reading was taken: the live
	// range allows the value, the snapshot does not.
	snapMin, snapMax := 0.0, 4.0
	reading := model.TemperatureReading{
		Value:           6,
		SnapshotMinTemp: &snapMin,
		SnapshotMaxTemp: &snapMax,
	}
	equipment := model.Equipment{MinTemp: 0, MaxTemp: 10}

	assert.Equal(t, StatusNormal, ClassifyLive(reading, equipment))
	assert.Equal(t, StatusAlert, ClassifySnapshot(reading, &equipment))
}

func TestClassifySnapshot_FallsBackToLiveRange(t *testing.T) {
	reading := model.TemperatureReading{Value: 12}
	equipment := model.Equipment{MinTemp: 0, MaxTemp: 10}

	assert.Equal(t, StatusAlert, ClassifySnapshot(reading, &equipment))

	// Without snapshot or equipment there is nothing to breach.
	assert.Equal(t, StatusNormal, ClassifySnapshot(reading, nil))
}

func TestClassifySnapshot_PartialSnapshot(t *testing.T) {
	// Each bound falls back independently.
	snapMax := 4.0
	reading := model.TemperatureReading{Value: -1, SnapshotMaxTemp: &snapMax}
	equipment := model.Equipment{MinTemp: 0, MaxTemp: 10}

	assert.Equal(t, StatusAlert, ClassifySnapshot(reading, &equipment))
	assert.Equal(t, StatusNormal, ClassifySnapshot(reading, nil))
}
