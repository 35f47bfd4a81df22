package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/advisory"
	"github.com/habitloop/adherence-engine/internal/domain"
)

// Adjustment bounds. Deltas outside these ranges are discarded, never
// clamped: an out-of-range advisory answer means the advisory did not follow
// the contract and its output cannot be trusted at all.
const (
	HistoricalDeltaBound = 0.2
	ContextualDeltaBound = 0.15
)

// Adjuster produces the bounded historical and contextual probability
// deltas. It may consult the advisory capability; any advisory failure
// forces the affected delta to zero. Without an advisory client the deltas
// come from fixed deterministic rules over the typed context fields.
type Adjuster struct {
	advisory advisory.Client
	logger   *slog.Logger
}

// NewAdjuster creates an adjuster. client may be nil to disable the advisory
// path entirely.
func NewAdjuster(client advisory.Client, logger *slog.Logger) *Adjuster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adjuster{advisory: client, logger: logger}
}

// HistoricalDelta returns the program-history adjustment in
// [-HistoricalDeltaBound, +HistoricalDeltaBound]. A nil context contributes
// nothing.
func (a *Adjuster) HistoricalDelta(ctx context.Context, userID uuid.UUID, hist *domain.HistoricalContext) float64 {
	if hist == nil {
		return 0
	}

	if a.advisory != nil {
		return a.advisoryDelta(ctx, userID, "historical", hist, HistoricalDeltaBound)
	}

	// Deterministic rule: completion ratio above 0.5 earns trust, below
	// costs it, and a recent relapse costs a little more.
	delta := 0.0
	if hist.PriorPrograms > 0 {
		ratio := float64(hist.CompletedPrograms) / float64(hist.PriorPrograms)
		delta = (ratio - 0.5) * 2 * HistoricalDeltaBound
	}
	if hist.RecentRelapse {
		delta -= 0.05
	}
	return clampAbs(delta, HistoricalDeltaBound)
}

// ContextualDelta returns the current-situation adjustment in
// [-ContextualDeltaBound, +ContextualDeltaBound]. A nil context contributes
// nothing.
func (a *Adjuster) ContextualDelta(ctx context.Context, userID uuid.UUID, sctx *domain.SituationalContext) float64 {
	if sctx == nil {
		return 0
	}

	if a.advisory != nil && sctx.Description != "" {
		return a.advisoryDelta(ctx, userID, "contextual", sctx, ContextualDeltaBound)
	}

	delta := 0.0
	if sctx.RecentLifeEvent {
		delta -= 0.08
	}
	if sctx.ScheduleDisruption {
		delta -= 0.05
	}
	return clampAbs(delta, ContextualDeltaBound)
}

// advisoryDelta asks the advisory for a single bounded float. Every failure
// mode (call error, timeout, non-numeric output, out-of-range number) yields
// zero; the adjustment is enrichment only.
func (a *Adjuster) advisoryDelta(ctx context.Context, userID uuid.UUID, kind string, payload any, bound float64) float64 {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return 0
	}

	prompt := fmt.Sprintf(
		"Given this %s context for a behavior-change program user, reply with a single number in [%.2f, %.2f]: the adjustment to their adherence probability. Negative lowers it. Nothing but the number.\n\n%s",
		kind, -bound, bound, encoded)

	text, err := a.advisory.Generate(ctx, prompt)
	if err != nil {
		a.logger.WarnContext(ctx, "advisory adjustment failed, using neutral delta",
			"user_id", userID, "kind", kind, "error", err)
		return 0
	}

	delta, ok := advisory.ParseBoundedFloat(text, -bound, bound)
	if !ok {
		a.logger.WarnContext(ctx, "advisory adjustment unparseable, using neutral delta",
			"user_id", userID, "kind", kind)
		return 0
	}
	return delta
}

// Combine folds the deltas into the base score and clamps the result into
// [0, 1] even when the raw sum falls outside it.
func Combine(base, historicalDelta, contextualDelta float64) float64 {
	return clamp01(base + historicalDelta + contextualDelta)
}

func clampAbs(v, bound float64) float64 {
	if v < -bound {
		return -bound
	}
	if v > bound {
		return bound
	}
	return v
}
