package entity

import (
	"time"
)

// ReconcileSummary is the result of one full reconciliation cycle,
// returned to the scheduler and appended to the run ledger.
type ReconcileSummary struct {
	Checked     int           `json:"checked"`
	SetStarted  int           `json:"setStarted"`
	SetFinished int           `json:"setFinished"`
	Date        string        `json:"date"` // evaluation date, fixed at cycle start
	Elapsed     time.Duration `json:"-"`
}
