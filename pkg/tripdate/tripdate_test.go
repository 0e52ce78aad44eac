package tripdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingsync-service/pkg/logger"
)

func newTestResolver() *Resolver {
	return NewResolver(logger.NewLogger())
}

func date(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolve_WellFormedDuration(t *testing.T) {
	r := newTestResolver()

	window, ok := r.Resolve("2025-01-01", "7 days")
	require.True(t, ok)
	assert.Equal(t, date("2025-01-01"), window.Start)
	assert.Equal(t, date("2025-01-07"), window.End)
}

func TestResolve_SingleDayTrip(t *testing.T) {
	r := newTestResolver()

	window, ok := r.Resolve("2025-03-15", "1 day")
	require.True(t, ok)
	assert.Equal(t, window.Start, window.End, "a one day trip starts and ends on the same day")
}

func TestResolve_DurationVariants(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name     string
		duration string
		wantOK   bool
		wantEnd  string
	}{
		{name: "bare number", duration: "7", wantOK: true, wantEnd: "2025-01-07"},
		{name: "unit suffix", duration: "7 days", wantOK: true, wantEnd: "2025-01-07"},
		{name: "unit prefix", duration: "days: 10", wantOK: true, wantEnd: "2025-01-10"},
		{name: "extra whitespace", duration: "  3   days  ", wantOK: true, wantEnd: "2025-01-03"},
		{name: "first digit run wins", duration: "7 days 3 nights", wantOK: true, wantEnd: "2025-01-07"},
		{name: "no digits", duration: "seven days", wantOK: false},
		{name: "empty string", duration: "", wantOK: false},
		{name: "zero days", duration: "0 days", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, ok := r.Resolve("2025-01-01", tt.duration)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, date(tt.wantEnd), window.End)
			}
		})
	}
}

func TestResolve_BadStartDate(t *testing.T) {
	r := newTestResolver()

	for _, startDate := range []string{"bad-date", "", "2025-13-40", "01/02/2025"} {
		_, ok := r.Resolve(startDate, "7 days")
		assert.False(t, ok, "start date %q should not be derivable", startDate)
	}
}

func TestResolve_NeverPanics(t *testing.T) {
	r := newTestResolver()

	// Totality: any input maps to a window or not-derivable, never a panic
	inputs := []struct{ startDate, duration string }{
		{"2025-01-01", "999999999999999999999999999999 days"},
		{"\x00", "\x00"},
		{"2025-01-01", "-3 days"},
		{"   ", "   "},
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			r.Resolve(in.startDate, in.duration)
		})
	}
}

func TestResolve_NegativeSignIgnored(t *testing.T) {
	r := newTestResolver()

	// The day count is the first digit run; a leading minus is non-digit noise
	window, ok := r.Resolve("2025-01-01", "-3 days")
	require.True(t, ok)
	assert.Equal(t, date("2025-01-03"), window.End)
}

func TestWindow_Bounds(t *testing.T) {
	w := Window{Start: date("2025-01-01"), End: date("2025-01-07")}

	assert.False(t, w.Contains(date("2024-12-31")))
	assert.True(t, w.Contains(date("2025-01-01")))
	assert.True(t, w.Contains(date("2025-01-03")))
	assert.True(t, w.Contains(date("2025-01-07")))
	assert.False(t, w.Contains(date("2025-01-08")))

	assert.False(t, w.EndedBefore(date("2025-01-07")))
	assert.True(t, w.EndedBefore(date("2025-01-08")))
}
