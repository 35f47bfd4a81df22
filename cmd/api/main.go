// Adherence Risk Engine API
//
// REST API for per-user disengagement risk scoring, escalation detection,
// and intervention dispatch.
//
//	@title			Adherence Risk Engine API
//	@version		1.0
//	@description	Score adherence risk from telemetry snapshots and dispatch ranked interventions.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User enrollment endpoints
//
//	@tag.name			adherence
//	@tag.description	Risk evaluation, monitoring, and intervention endpoints
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/habitloop/adherence-engine/internal/advisory"
	"github.com/habitloop/adherence-engine/internal/api"
	"github.com/habitloop/adherence-engine/internal/api/handler"
	"github.com/habitloop/adherence-engine/internal/config"
	"github.com/habitloop/adherence-engine/internal/dispatch"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/internal/engine"
	"github.com/habitloop/adherence-engine/internal/repository"
	"github.com/habitloop/adherence-engine/internal/seed"
	"github.com/habitloop/adherence-engine/internal/service"
	"github.com/habitloop/adherence-engine/internal/store"
	"github.com/habitloop/adherence-engine/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()
	telemetry.InitLogger(cfg.LogLevel)

	ctx := context.Background()

	// Initialize tracing (no-op if Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "adherence-engine-api")
	if err != nil {
		slog.Error("Failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer shutdownTracer(ctx)

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.MetricsSnapshot{}, &domain.DispatchRecord{}); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migration completed")

	if cfg.Seed {
		slog.Info("Seeding database with sample data (SEED=true)")
		if err := seed.Run(db); err != nil {
			slog.Error("Failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Redis; fall back to the in-memory store for local runs
	var (
		st         store.Store
		dispatcher dispatch.Dispatcher
	)
	redisClient, err := store.Connect(ctx, cfg.RedisURL)
	if err != nil {
		slog.Warn("Redis unavailable, using in-memory store and log dispatcher", "error", err)
		st = store.NewMemoryStore()
		dispatcher = dispatch.LogDispatcher{}
	} else {
		st = store.NewRedisStore(redisClient)
		dispatcher = dispatch.NewStreamDispatcher(redisClient, cfg.DispatchStream)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	dispatchRepo := repository.NewDispatchRepository(db)

	// Initialize the risk engine; the advisory client may be nil when OpenAI
	// is not configured, leaving the engine fully deterministic
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

	// Initialize services
	userService := service.NewUserService(userRepo)
	adherenceService := service.NewAdherenceService(eng, userRepo, snapshotRepo, dispatchRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	adherenceHandler := handler.NewAdherenceHandler(adherenceService)

	// Setup router
	router := api.NewRouter(userHandler, adherenceHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Starting server", "addr", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
