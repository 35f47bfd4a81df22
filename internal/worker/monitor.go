// Package worker runs the background monitoring loop: it periodically scans
// enrolled users and runs a monitor cycle for everyone whose next evaluation
// is due.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/internal/repository"
	"github.com/habitloop/adherence-engine/internal/service"
)

// Monitor is the scheduled monitoring worker. Concurrency is bounded so a
// large user base cannot overwhelm the store or the advisory backend.
type Monitor struct {
	service service.AdherenceService
	users   repository.UserRepository
	workers int
	poll    time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

func NewMonitor(svc service.AdherenceService, users repository.UserRepository, workers int, poll time.Duration) *Monitor {
	if workers <= 0 {
		workers = 4
	}
	if poll <= 0 {
		poll = time.Minute
	}
	return &Monitor{
		service: svc,
		users:   users,
		workers: workers,
		poll:    poll,
		logger:  slog.Default(),
		now:     time.Now,
	}
}

// Run sweeps immediately and then on every poll tick until the context is
// cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.InfoContext(ctx, "monitoring worker started",
		"workers", m.workers, "poll_interval", m.poll)

	m.sweep(ctx)

	ticker := time.NewTicker(m.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.InfoContext(ctx, "monitoring worker stopping")
			return ctx.Err()
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *Monitor) sweep(ctx context.Context) {
	ids, err := m.users.ListIDs(ctx)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to list users for sweep", "error", err)
		return
	}

	sem := make(chan struct{}, m.workers)
	var wg sync.WaitGroup

	for _, id := range ids {
		due, err := m.isDue(ctx, id)
		if err != nil {
			m.logger.WarnContext(ctx, "failed to read monitoring state",
				"user_id", id, "error", err)
			continue
		}
		if !due {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(userID uuid.UUID) {
			defer wg.Done()
			defer func() { <-sem }()
			m.monitorUser(ctx, userID)
		}(id)
	}

	wg.Wait()
}

// isDue reports whether the user needs a monitor cycle. A user with no
// monitoring state has never been evaluated and is due immediately.
func (m *Monitor) isDue(ctx context.Context, userID uuid.UUID) (bool, error) {
	state, err := m.service.MonitoringState(ctx, userID)
	if err != nil {
		return false, err
	}
	if state == nil {
		return true, nil
	}
	return !state.NextMonitoringDue.After(m.now()), nil
}

func (m *Monitor) monitorUser(ctx context.Context, userID uuid.UUID) {
	result, err := m.service.Monitor(ctx, userID, nil)
	if err != nil {
		if errors.Is(err, domain.ErrNoSnapshot) {
			m.logger.DebugContext(ctx, "skipping user without telemetry", "user_id", userID)
			return
		}
		m.logger.ErrorContext(ctx, "monitor cycle failed", "user_id", userID, "error", err)
		return
	}

	m.logger.InfoContext(ctx, "monitor cycle completed",
		"user_id", userID,
		"risk_level", result.Prediction.RiskLevel,
		"risk_change", result.RiskChange,
		"intervention_needed", result.InterventionNeeded,
		"dispatched", len(result.InterventionsTriggered),
		"next_due", result.NextMonitoringDue)
}
