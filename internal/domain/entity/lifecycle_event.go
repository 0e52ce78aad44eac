package entity

import (
	"time"
)

// Lifecycle event types. The reconciliation cycle only emits FINISH;
// CONFIRM and CANCEL originate from the booking request path.
const (
	EventConfirm = "CONFIRM"
	EventCancel  = "CANCEL"
	EventFinish  = "FINISH"
)

// LifecycleEvent is the message emitted downstream after a committed
// status transition. It is constructed per transition and never persisted.
type LifecycleEvent struct {
	EventType      string    `json:"eventType"`
	BookingID      string    `json:"bookingId"`
	UserID         string    `json:"userId"`
	TourID         string    `json:"tourId"`
	AgentEmail     string    `json:"agentEmail"`
	EventTimestamp time.Time `json:"eventTimestamp"`
}

// NewLifecycleEvent builds a lifecycle event for a booking at the given time
func NewLifecycleEvent(eventType string, booking *Booking, at time.Time) *LifecycleEvent {
	return &LifecycleEvent{
		EventType:      eventType,
		BookingID:      booking.BookingID,
		UserID:         booking.UserID,
		TourID:         booking.TourID,
		AgentEmail:     booking.AgentEmail,
		EventTimestamp: at,
	}
}
