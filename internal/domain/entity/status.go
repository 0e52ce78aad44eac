package entity

import (
	"time"

	"bookingsync-service/pkg/tripdate"
)

// Status represents the lifecycle state of a booking.
type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusConfirmed Status = "CONFIRMED"
	StatusStarted   Status = "STARTED"
	StatusCancelled Status = "CANCELLED"
	StatusFinished  Status = "FINISHED"
)

// transitions defines all valid state changes in the booking lifecycle.
// CANCELLED and FINISHED are terminal. FINISHED is reachable directly from
// BOOKED and CONFIRMED so that a booking whose window fully elapsed between
// reconciliation cycles does not need a synthetic pass through STARTED.
var transitions = map[Status][]Status{
	StatusBooked:    {StatusConfirmed, StatusStarted, StatusCancelled, StatusFinished},
	StatusConfirmed: {StatusStarted, StatusCancelled, StatusFinished},
	StatusStarted:   {StatusFinished},
	StatusCancelled: {},
	StatusFinished:  {},
}

// IsTerminal reports whether no further transition is permitted from s
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusFinished
}

// CanTransitionTo reports whether the transition table permits s -> next
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DecideTransition evaluates a booking's status against the calendar and
// returns the next status, or ok=false when nothing should change. The
// elapsed-window check runs before the in-window check so a fully elapsed
// trip is never marked STARTED. Proposals are filtered through the
// transition table, so terminal states and same-status proposals stay put.
func DecideTransition(current Status, today time.Time, window tripdate.Window, derivable bool) (Status, bool) {
	if current.IsTerminal() || !derivable {
		return current, false
	}

	if window.EndedBefore(today) {
		return StatusFinished, current.CanTransitionTo(StatusFinished)
	}

	if window.Contains(today) {
		return StatusStarted, current.CanTransitionTo(StatusStarted)
	}

	return current, false
}
