package usecase

import (
	"context"
	"fmt"
	"time"

	"bookingsync-service/internal/domain/entity"
	"bookingsync-service/internal/domain/repository"
	"bookingsync-service/pkg/logger"
	"bookingsync-service/pkg/metrics"
	"bookingsync-service/pkg/tripdate"
)

// BookingReconciler runs the booking lifecycle reconciliation cycle
type BookingReconciler struct {
	bookingRepo repository.BookingRepository
	eventRepo   repository.EventRepository
	resolver    *tripdate.Resolver
	metrics     *metrics.Metrics
	logger      logger.Logger
	pageSize    int
	now         func() time.Time
}

// NewBookingReconciler creates a new booking reconciler
func NewBookingReconciler(
	bookingRepo repository.BookingRepository,
	eventRepo repository.EventRepository,
	resolver *tripdate.Resolver,
	metrics *metrics.Metrics,
	logger logger.Logger,
	pageSize int,
) *BookingReconciler {
	return &BookingReconciler{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		resolver:    resolver,
		metrics:     metrics,
		logger:      logger,
		pageSize:    pageSize,
		now:         time.Now,
	}
}

// Reconcile scans all active bookings once and applies any status transition
// the calendar requires. Per-record failures are logged and skipped; only a
// failure to read the next page aborts the cycle. The evaluation date is
// fixed at cycle start so every booking is judged against the same day.
func (r *BookingReconciler) Reconcile(ctx context.Context) (*entity.ReconcileSummary, error) {
	started := r.now()
	today := startOfDay(started.UTC())

	summary := &entity.ReconcileSummary{
		Date: today.Format(tripdate.DateLayout),
	}

	r.logger.Info("Starting reconciliation cycle", "date", summary.Date)

	afterID := ""
	for {
		bookings, err := r.bookingRepo.FindActivePage(ctx, afterID, r.pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to scan active bookings: %w", err)
		}
		if len(bookings) == 0 {
			break
		}

		for _, booking := range bookings {
			summary.Checked++
			r.metrics.BookingsChecked.Inc()
			r.reconcileBooking(ctx, booking, today, summary)
		}

		afterID = bookings[len(bookings)-1].ID
		if len(bookings) < r.pageSize {
			break
		}
	}

	summary.Elapsed = r.now().Sub(started)
	r.metrics.CycleDuration.Observe(summary.Elapsed.Seconds())

	r.logger.Info("Reconciliation cycle finished",
		"date", summary.Date,
		"checked", summary.Checked,
		"setStarted", summary.SetStarted,
		"setFinished", summary.SetFinished,
		"elapsed", summary.Elapsed)

	return summary, nil
}

// reconcileBooking evaluates and, when needed, transitions a single booking.
// Commit must succeed before the event is attempted; a publish failure never
// rolls the committed transition back.
func (r *BookingReconciler) reconcileBooking(ctx context.Context, booking *entity.Booking, today time.Time, summary *entity.ReconcileSummary) {
	window, derivable := r.resolver.Resolve(booking.StartDate, booking.Duration)
	if !derivable {
		r.logger.Warn("Trip window not derivable, skipping booking",
			"userId", booking.UserID,
			"bookingId", booking.BookingID,
			"startDate", booking.StartDate,
			"duration", booking.Duration)
		return
	}

	next, ok := entity.DecideTransition(booking.Status, today, window, derivable)
	if !ok {
		return
	}

	if err := r.bookingRepo.UpdateStatusIfCurrent(ctx, booking.UserID, booking.BookingID, booking.Status, next); err != nil {
		r.logger.Error("Failed to commit status transition, skipping booking",
			"userId", booking.UserID,
			"bookingId", booking.BookingID,
			"from", booking.Status,
			"to", next,
			"error", err)
		r.metrics.CommitFailures.Inc()
		return
	}

	switch next {
	case entity.StatusStarted:
		summary.SetStarted++
	case entity.StatusFinished:
		summary.SetFinished++
	}
	r.metrics.TransitionsApplied.WithLabelValues(string(next)).Inc()

	r.logger.Info("Status transition committed",
		"userId", booking.UserID,
		"bookingId", booking.BookingID,
		"from", booking.Status,
		"to", next)

	if next == entity.StatusFinished {
		event := entity.NewLifecycleEvent(entity.EventFinish, booking, r.now())
		if err := r.eventRepo.PublishLifecycle(ctx, event); err != nil {
			// The commit is already durable and must not be rolled back or
			// retried here; log and count only.
			r.logger.Error("Failed to publish finish event",
				"userId", booking.UserID,
				"bookingId", booking.BookingID,
				"error", err)
			r.metrics.PublishFailures.Inc()
		}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
