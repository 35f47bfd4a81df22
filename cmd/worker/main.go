// Adherence monitoring worker. Scans enrolled users on a fixed interval and
// runs a monitor cycle for everyone whose next evaluation is due.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/habitloop/adherence-engine/internal/advisory"
	"github.com/habitloop/adherence-engine/internal/config"
	"github.com/habitloop/adherence-engine/internal/dispatch"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/internal/engine"
	"github.com/habitloop/adherence-engine/internal/repository"
	"github.com/habitloop/adherence-engine/internal/service"
	"github.com/habitloop/adherence-engine/internal/store"
	"github.com/habitloop/adherence-engine/internal/telemetry"
	"github.com/habitloop/adherence-engine/internal/worker"
)

func main() {
	cfg := config.Load()
	telemetry.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "adherence-engine-worker")
	if err != nil {
		slog.Error("Failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer shutdownTracer(context.Background())

	db, err := config.NewDatabase(cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.MetricsSnapshot{}, &domain.DispatchRecord{}); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	// The worker needs shared state across replicas; Redis is required here,
	// unlike the API which can fall back to the in-memory store.
	redisClient, err := store.Connect(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	st := store.NewRedisStore(redisClient)
	dispatcher := dispatch.NewStreamDispatcher(redisClient, cfg.DispatchStream)

	userRepo := repository.NewUserRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	dispatchRepo := repository.NewDispatchRepository(db)

	opts := []engine.Option{engine.WithDispatchAudit(dispatchRepo)}
	advisoryClient := advisory.NewOpenAIClient(
		cfg.OpenAIAPIKey,
		cfg.OpenAIAdvisoryModel,
		time.Duration(cfg.AdvisoryTimeoutSeconds)*time.Second,
	)
	if advisoryClient == nil {
		slog.Warn("OpenAI API key not configured, advisory enrichment disabled")
	} else {
		opts = append(opts, engine.WithAdvisory(advisoryClient))
	}
	eng := engine.NewEngine(st, dispatcher, opts...)

	adherenceService := service.NewAdherenceService(eng, userRepo, snapshotRepo, dispatchRepo)

	monitor := worker.NewMonitor(
		adherenceService,
		userRepo,
		cfg.MonitorWorkers,
		time.Duration(cfg.MonitorPollSeconds)*time.Second,
	)

	if err := monitor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Worker shut down")
}
