// internal/domain/entity/booking.go
package entity

import (
	"time"
)

type Booking struct {
	ID         string    `bson:"_id,omitempty"`
	UserID     string    `bson:"userId"`    // {userId}:{bookingId} - unique compound index
	BookingID  string    `bson:"bookingId"`
	TourID     string    `bson:"tourId"`
	AgentEmail string    `bson:"agentEmail"`
	Status     Status    `bson:"status"`
	StartDate  string    `bson:"startDate"` // ISO calendar date, first day of the trip
	Duration   string    `bson:"duration"`  // free-form day count, e.g. "7 days"
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}
