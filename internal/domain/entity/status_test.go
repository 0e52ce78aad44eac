package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingsync-service/pkg/tripdate"
)

func day(value string) time.Time {
	t, err := time.Parse(tripdate.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func window(start, end string) tripdate.Window {
	return tripdate.Window{Start: day(start), End: day(end)}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusFinished.IsTerminal())
	assert.False(t, StatusBooked.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusStarted.IsTerminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusBooked, StatusConfirmed, true},
		{StatusBooked, StatusStarted, true},
		{StatusBooked, StatusCancelled, true},
		{StatusBooked, StatusFinished, true},
		{StatusConfirmed, StatusStarted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusFinished, true},
		{StatusStarted, StatusFinished, true},
		{StatusStarted, StatusCancelled, false},
		{StatusStarted, StatusStarted, false},
		{StatusConfirmed, StatusBooked, false},
		{StatusCancelled, StatusStarted, false},
		{StatusCancelled, StatusFinished, false},
		{StatusFinished, StatusStarted, false},
		{StatusFinished, StatusCancelled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestDecideTransition_TerminalAlwaysNoChange(t *testing.T) {
	w := window("2025-01-01", "2025-01-07")

	for _, status := range []Status{StatusCancelled, StatusFinished} {
		for _, today := range []string{"2024-12-01", "2025-01-03", "2025-06-01"} {
			_, ok := DecideTransition(status, day(today), w, true)
			assert.False(t, ok, "terminal status %s must never change", status)
		}
	}
}

func TestDecideTransition_NotDerivableNoChange(t *testing.T) {
	_, ok := DecideTransition(StatusBooked, day("2025-01-03"), tripdate.Window{}, false)
	assert.False(t, ok)
}

func TestDecideTransition_InWindowStarts(t *testing.T) {
	w := window("2025-01-01", "2025-01-07")

	for _, today := range []string{"2025-01-01", "2025-01-03", "2025-01-07"} {
		next, ok := DecideTransition(StatusBooked, day(today), w, true)
		require.True(t, ok, "today=%s", today)
		assert.Equal(t, StatusStarted, next)
	}
}

func TestDecideTransition_ElapsedFinishes(t *testing.T) {
	w := window("2025-01-01", "2025-01-07")

	next, ok := DecideTransition(StatusStarted, day("2025-01-10"), w, true)
	require.True(t, ok)
	assert.Equal(t, StatusFinished, next)
}

func TestDecideTransition_ElapsedWinsOverInWindow(t *testing.T) {
	// A fully elapsed window must never produce STARTED, whatever the state
	w := window("2025-01-01", "2025-01-07")

	for _, status := range []Status{StatusBooked, StatusConfirmed, StatusStarted} {
		next, ok := DecideTransition(status, day("2025-02-01"), w, true)
		require.True(t, ok, "status=%s", status)
		assert.Equal(t, StatusFinished, next)
	}
}

func TestDecideTransition_FutureTripNoChange(t *testing.T) {
	w := window("2025-03-01", "2025-03-07")

	_, ok := DecideTransition(StatusConfirmed, day("2025-01-03"), w, true)
	assert.False(t, ok)
}

func TestDecideTransition_AlreadyStartedInWindowNoChange(t *testing.T) {
	// STARTED -> STARTED is not in the table, so an in-window STARTED
	// booking stays put and the cycle remains idempotent.
	w := window("2025-01-01", "2025-01-07")

	_, ok := DecideTransition(StatusStarted, day("2025-01-03"), w, true)
	assert.False(t, ok)
}
