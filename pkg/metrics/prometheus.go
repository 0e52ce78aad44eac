package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	BookingsChecked    prometheus.Counter
	TransitionsApplied *prometheus.CounterVec
	CommitFailures     prometheus.Counter
	PublishFailures    prometheus.Counter
	CycleDuration      prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		BookingsChecked: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_checked_total",
			Help:      "The total number of bookings evaluated by reconciliation cycles",
		}),
		TransitionsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_applied_total",
			Help:      "The total number of committed status transitions",
		}, []string{"status"}),
		CommitFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commit_failures_total",
			Help:      "The total number of status commits rejected or failed",
		}),
		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_failures_total",
			Help:      "The total number of lifecycle events that failed to publish",
		}),
		CycleDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_duration_seconds",
			Help:      "Time taken to run a full reconciliation cycle",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
