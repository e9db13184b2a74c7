package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortDateTime(t *testing.T) {
	testCases := []struct {
		in       time.Time
		expected string
	}{
		{time.Date(2026, 1, 12, 14, 30, 0, 0, time.UTC), "12 ene, 14:30"},
		{time.Date(2026, 8, 3, 9, 5, 0, 0, time.UTC), "3 ago, 09:05"},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "31 dic, 00:00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ShortDateTime(tc.in))
	}
}

func TestFullDateTime(t *testing.T) {
	in := time.Date(2026, 1, 12, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "12/01/2026 14:30", FullDateTime(in))
}

func TestAgo(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		elapsed  time.Duration
		expected string
	}{
		{"seconds", 30 * time.Second, "hace menos de un minuto"},
		{"one minute", 90 * time.Second, "hace 1 minuto"},
		{"minutes", 45 * time.Minute, "hace 45 minutos"},
		{"one hour", 90 * time.Minute, "hace 1 hora"},
		{"hours", 5 * time.Hour, "hace 5 horas"},
		{"one day", 30 * time.Hour, "hace 1 día"},
		{"days", 6 * 24 * time.Hour, "hace 6 días"},
		{"one month", 40 * 24 * time.Hour, "hace 1 mes"},
		{"months", 100 * 24 * time.Hour, "hace 3 meses"},
		{"one year", 400 * 24 * time.Hour, "hace 1 año"},
		{"years", 3 * 365 * 24 * time.Hour, "hace 3 años"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Ago(now.Add(-tc.elapsed), now))
		})
	}
}

func TestAgo_FutureTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "hace menos de un minuto", Ago(now.Add(time.Minute), now))
}
