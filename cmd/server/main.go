package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookingsync-service/internal/infrastructure/config"
	"bookingsync-service/internal/infrastructure/persistence"
	bookingRepo "bookingsync-service/internal/interface/repository"
	"bookingsync-service/internal/usecase"
	"bookingsync-service/pkg/logger"
	"bookingsync-service/pkg/metrics"
	"bookingsync-service/pkg/tripdate"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Bookingsync Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	bookings := bookingRepo.NewMongoBookingRepository(db)
	runLedger := bookingRepo.NewGormRunLedgerRepository(gormDB)

	events, err := bookingRepo.NewAmqpEventRepository(cfg.AmqpURL, cfg.AmqpExchange, log.Named("events"))
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ", "error", err)
	}

	// Set up the reconciler
	m := metrics.NewMetrics("bookingsync")
	resolver := tripdate.NewResolver(log.Named("tripdate"))
	reconciler := usecase.NewBookingReconciler(bookings, events, resolver, m, log.Named("reconciler"), cfg.ReconcilePageSize)

	runCycle := func() {
		summary, err := reconciler.Reconcile(ctx)
		if err != nil {
			log.Error("Reconciliation cycle failed", "error", err)
			return
		}

		// Ledger write is best effort; the summary is already logged
		if err := runLedger.Save(ctx, summary); err != nil {
			log.Error("Failed to save run ledger entry", "error", err)
		}
	}

	// Start the reconciliation loop in a goroutine
	go func() {
		runCycle()

		ticker := time.NewTicker(cfg.ReconcileInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Reconciliation loop stopped")
				return
			case <-ticker.C:
				runCycle()
			}
		}
	}()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop the reconciliation loop

	if err := events.Close(); err != nil {
		log.Error("RabbitMQ close error", "error", err)
	}

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Bookingsync Service stopped")
}
