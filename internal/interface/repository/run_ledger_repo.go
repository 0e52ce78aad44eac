package repository

import (
	"context"
	"time"

	"bookingsync-service/internal/domain/entity"
	"bookingsync-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormRunLedgerRepository implements the RunLedgerRepository interface
type GormRunLedgerRepository struct {
	db *gorm.DB
}

// NewGormRunLedgerRepository creates a new GORM run ledger repository
func NewGormRunLedgerRepository(db *gorm.DB) repository.RunLedgerRepository {
	return &GormRunLedgerRepository{
		db: db,
	}
}

// ReconcileRuns GORM model for database mapping
type ReconcileRuns struct {
	ID          uint   `gorm:"primaryKey"`
	RunDate     string `gorm:"column:run_date"`
	Checked     int    `gorm:"column:checked"`
	SetStarted  int    `gorm:"column:set_started"`
	SetFinished int    `gorm:"column:set_finished"`
	ElapsedMs   int64  `gorm:"column:elapsed_ms"`
	CreatedAt   time.Time
}

// TableName overrides the default table name
func (ReconcileRuns) TableName() string {
	return "t_reconcile_runs"
}

// Save appends a cycle summary to the run ledger
func (r *GormRunLedgerRepository) Save(ctx context.Context, summary *entity.ReconcileSummary) error {
	row := ReconcileRuns{
		RunDate:     summary.Date,
		Checked:     summary.Checked,
		SetStarted:  summary.SetStarted,
		SetFinished: summary.SetFinished,
		ElapsedMs:   summary.Elapsed.Milliseconds(),
	}

	result := r.db.WithContext(ctx).Create(&row)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
