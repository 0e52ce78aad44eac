package repository

import (
	"context"

	"bookingsync-service/internal/domain/entity"
)

// RunLedgerRepository defines the interface for persisting cycle summaries
type RunLedgerRepository interface {
	Save(ctx context.Context, summary *entity.ReconcileSummary) error
}
