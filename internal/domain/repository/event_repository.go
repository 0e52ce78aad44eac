package repository

import (
	"context"

	"bookingsync-service/internal/domain/entity"
)

// EventRepository defines the interface for emitting lifecycle events.
// Delivery is at-least-once; a publish failure never affects the
// already-committed status transition.
type EventRepository interface {
	PublishLifecycle(ctx context.Context, event *entity.LifecycleEvent) error
}
