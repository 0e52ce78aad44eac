package repository

import (
	"context"
	"errors"

	"bookingsync-service/internal/domain/entity"
)

// ErrStatusConflict is returned when a conditional status update matched no
// record, meaning the booking moved concurrently or no longer exists.
var ErrStatusConflict = errors.New("booking status conflict")

// BookingRepository defines read and update access to the booking store
type BookingRepository interface {
	// FindActivePage returns the next page of non-terminal bookings in scan
	// order. afterID is the ID of the last booking of the previous page, or
	// empty for the first page.
	FindActivePage(ctx context.Context, afterID string, limit int) ([]*entity.Booking, error)

	// UpdateStatusIfCurrent atomically moves a booking from one status to
	// another, succeeding only if the stored status still equals from.
	UpdateStatusIfCurrent(ctx context.Context, userID, bookingID string, from, to entity.Status) error
}
