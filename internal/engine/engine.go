// Package engine implements the adherence risk pipeline: weighted category
// scoring, bounded adjustment, ordinal classification, trigger and factor
// extraction, escalation comparison, the intervention decision gate, ranked
// selection, cooldown-guarded dispatch, and monitoring cadence.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/advisory"
	"github.com/habitloop/adherence-engine/internal/dispatch"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/internal/repository"
	"github.com/habitloop/adherence-engine/internal/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	predictionKeyFormat = "adherence:prediction:%s"
	monitorKeyFormat    = "adherence:monitor:%s"
	historyKeyFormat    = "adherence:history:%s"

	// cacheTTL bounds how long per-user state survives without a new cycle.
	cacheTTL = 30 * 24 * time.Hour

	// historyMaxEntries caps the per-user prediction history list.
	historyMaxEntries = 50

	// dispatchTimeout bounds a single fire-and-forget dispatch attempt so a
	// stuck delivery backend cannot stall the monitor cycle.
	dispatchTimeout = 3 * time.Second

	// successUpliftShare is the share of remaining headroom a landed
	// intervention is assumed to recover.
	successUpliftShare = 0.4
)

// Engine runs prediction and monitoring cycles. It is safe for concurrent use.
type Engine struct {
	store      store.Store
	advisory   advisory.Client
	dispatcher dispatch.Dispatcher
	audit      repository.DispatchRepository
	cooldowns  *CooldownLedger
	adjuster   *Adjuster
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures optional Engine collaborators.
type Option func(*Engine)

// WithAdvisory enables the advisory enrichment path. A nil client leaves the
// engine fully deterministic.
func WithAdvisory(client advisory.Client) Option {
	return func(e *Engine) { e.advisory = client }
}

// WithDispatchAudit persists every dispatch attempt through the given
// repository. Without it attempts are only reported in the cycle result.
func WithDispatchAudit(repo repository.DispatchRepository) Option {
	return func(e *Engine) { e.audit = repo }
}

// WithClock overrides the engine clock. Tests use it to advance time past
// cooldowns without sleeping.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
		e.cooldowns.SetClock(now)
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine wires the pipeline around a state store and a dispatcher.
func NewEngine(st store.Store, dispatcher dispatch.Dispatcher, opts ...Option) *Engine {
	e := &Engine{
		store:      st,
		dispatcher: dispatcher,
		cooldowns:  NewCooldownLedger(st),
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.adjuster = NewAdjuster(e.advisory, e.logger)
	return e
}

// PredictInput carries one evaluation request. Snapshot is required; the
// context blocks are optional enrichment.
type PredictInput struct {
	UserID      uuid.UUID
	Snapshot    *domain.MetricsSnapshot
	Historical  *domain.HistoricalContext
	Situational *domain.SituationalContext
}

// Predict runs one full evaluation cycle and caches the resulting prediction.
// The returned prediction is immutable; the next cycle supersedes it.
func (e *Engine) Predict(ctx context.Context, in PredictInput) (*domain.Prediction, error) {
	tracer := otel.Tracer("adherence-engine/pipeline")
	ctx, span := tracer.Start(ctx, "Engine.Predict",
		trace.WithAttributes(
			attribute.String("user.id", in.UserID.String()),
		),
	)
	defer span.End()

	if in.Snapshot == nil {
		return nil, fmt.Errorf("predict: %w: snapshot is required", domain.ErrInvalidInput)
	}
	if err := domain.ValidateSnapshot(in.Snapshot); err != nil {
		return nil, err
	}

	base := Score(in.Snapshot)
	historicalDelta := e.adjuster.HistoricalDelta(ctx, in.UserID, in.Historical)
	contextualDelta := e.adjuster.ContextualDelta(ctx, in.UserID, in.Situational)
	probability := Combine(base, historicalDelta, contextualDelta)

	level := ClassifyRisk(probability)
	triggers := MergeTriggers(DetectTriggers(in.Snapshot), e.advisoryTriggers(ctx, in))
	riskFactors, protectiveFactors := ExtractFactors(in.Snapshot)

	estimated := EstimateDropoutDays(probability, level, in.Snapshot)
	window := InterventionWindowDays(level, estimated)
	plan := MonitoringPlanFor(level)

	selection := SelectionInput{Snapshot: in.Snapshot, RiskLevel: level, Triggers: triggers}
	interventions := SelectInterventions(selection, e.advisoryCandidates(ctx, in, level, triggers))

	prediction := &domain.Prediction{
		UserID:                  in.UserID,
		Probability:             probability,
		RiskLevel:               level,
		Confidence:              Confidence(in.Snapshot),
		RiskFactors:             riskFactors,
		ProtectiveFactors:       protectiveFactors,
		Triggers:                triggers,
		EstimatedDropoutDays:    estimated,
		InterventionWindowDays:  window,
		Interventions:           interventions,
		MonitoringFrequency:     plan.Frequency,
		SuccessWithIntervention: clamp01(probability + (1-probability)*successUpliftShare),
		GeneratedAt:             e.now().UTC(),
	}

	span.SetAttributes(
		attribute.Float64("risk.probability", probability),
		attribute.String("risk.level", string(level)),
		attribute.Int("risk.triggers", len(triggers)),
		attribute.Int("risk.interventions", len(interventions)),
	)

	e.cachePrediction(ctx, prediction)
	e.appendHistory(ctx, prediction)

	e.logger.InfoContext(ctx, "prediction generated",
		"user_id", in.UserID,
		"probability", probability,
		"risk_level", level,
		"triggers", len(triggers),
		"interventions", len(interventions))

	return prediction, nil
}

// MonitorInput carries one monitor request.
type MonitorInput struct {
	PredictInput
	// HelpRequested marks an explicit user help request, which forces the
	// intervention gate open on its own.
	HelpRequested bool
}

// Monitor runs a full monitor cycle: re-evaluate, compare against the prior
// cached prediction, decide whether to intervene, and dispatch what the
// cooldown ledger allows. Dispatch is fire-and-forget; a failed dispatch is
// recorded but never fails the cycle.
func (e *Engine) Monitor(ctx context.Context, in MonitorInput) (*domain.MonitorResult, error) {
	tracer := otel.Tracer("adherence-engine/pipeline")
	ctx, span := tracer.Start(ctx, "Engine.Monitor",
		trace.WithAttributes(
			attribute.String("user.id", in.UserID.String()),
			attribute.Bool("help.requested", in.HelpRequested),
		),
	)
	defer span.End()

	prior, err := e.GetCachedPrediction(ctx, in.UserID)
	if err != nil {
		e.logger.WarnContext(ctx, "prior prediction unavailable, treating as first cycle",
			"user_id", in.UserID, "error", err)
		prior = nil
	}

	prediction, err := e.Predict(ctx, in.PredictInput)
	if err != nil {
		return nil, err
	}

	escalation := DetectEscalation(prediction, prior)

	needed := NeedsIntervention(GateInput{
		RiskLevel:              prediction.RiskLevel,
		Escalated:              escalation.Escalated,
		ProbabilityDelta:       escalation.ProbabilityDelta,
		Triggers:               prediction.Triggers,
		InterventionWindowDays: prediction.InterventionWindowDays,
		HelpRequested:          in.HelpRequested,
	})

	var outcomes []domain.InterventionOutcome
	if needed {
		outcomes = e.dispatchAll(ctx, prediction)
	}

	plan := MonitoringPlanFor(prediction.RiskLevel)
	nextDue := prediction.GeneratedAt.Add(plan.Interval)

	span.SetAttributes(
		attribute.String("risk.level", string(prediction.RiskLevel)),
		attribute.String("risk.change", string(escalation.RiskChange)),
		attribute.Bool("intervention.needed", needed),
		attribute.Int("intervention.attempts", len(outcomes)),
	)

	e.saveMonitoringState(ctx, prediction, escalation, nextDue)

	return &domain.MonitorResult{
		Prediction:             *prediction,
		RiskChange:             escalation.RiskChange,
		InterventionNeeded:     needed,
		InterventionsTriggered: outcomes,
		NextMonitoringDue:      nextDue,
	}, nil
}

// dispatchAll attempts every candidate on the prediction. Candidates on
// cooldown are reported as skipped rather than silently dropped. A store
// outage fails open: a duplicate nudge costs less than a missed one for a
// user already at risk.
func (e *Engine) dispatchAll(ctx context.Context, p *domain.Prediction) []domain.InterventionOutcome {
	outcomes := make([]domain.InterventionOutcome, 0, len(p.Interventions))

	for _, candidate := range p.Interventions {
		outcome := domain.InterventionOutcome{
			Type:     candidate.Type,
			Priority: candidate.Priority,
			At:       e.now().UTC(),
		}

		acquired, err := e.cooldowns.Acquire(ctx, p.UserID, candidate.Type)
		if err != nil {
			e.logger.ErrorContext(ctx, "cooldown store unavailable, dispatching anyway",
				"user_id", p.UserID, "type", candidate.Type, "error", err)
			acquired = true
		}
		if !acquired {
			outcome.Status = domain.DispatchStatusSkippedCooldown
			outcome.Reason = fmt.Sprintf("on cooldown for %s", e.cooldowns.Duration(candidate.Type))
			outcomes = append(outcomes, outcome)
			e.recordDispatch(ctx, p, outcome)
			continue
		}

		dispatchCtx, cancel := context.WithTimeout(ctx, dispatchTimeout)
		err = e.dispatcher.Dispatch(dispatchCtx, dispatch.Request{
			UserID:    p.UserID,
			Type:      candidate.Type,
			Reasoning: candidate.Reasoning,
			Priority:  candidate.Priority,
			RiskLevel: p.RiskLevel,
		})
		cancel()

		if err != nil {
			outcome.Status = domain.DispatchStatusFailed
			outcome.Reason = err.Error()
			e.logger.ErrorContext(ctx, "intervention dispatch failed",
				"user_id", p.UserID, "type", candidate.Type, "error", err)
		} else {
			outcome.Status = domain.DispatchStatusDispatched
		}

		outcomes = append(outcomes, outcome)
		e.recordDispatch(ctx, p, outcome)
	}

	return outcomes
}

func (e *Engine) recordDispatch(ctx context.Context, p *domain.Prediction, outcome domain.InterventionOutcome) {
	if e.audit == nil {
		return
	}
	record := &domain.DispatchRecord{
		ID:        uuid.New(),
		UserID:    p.UserID,
		Type:      outcome.Type,
		Status:    outcome.Status,
		Reason:    outcome.Reason,
		Priority:  outcome.Priority,
		RiskLevel: p.RiskLevel,
	}
	if err := e.audit.Create(ctx, record); err != nil {
		e.logger.WarnContext(ctx, "failed to persist dispatch record",
			"user_id", p.UserID, "type", outcome.Type, "error", err)
	}
}

// GetCachedPrediction returns the latest cached prediction, or nil without
// error when no cycle has run inside the retention window.
func (e *Engine) GetCachedPrediction(ctx context.Context, userID uuid.UUID) (*domain.Prediction, error) {
	raw, found, err := e.store.Get(ctx, fmt.Sprintf(predictionKeyFormat, userID))
	if err != nil {
		return nil, fmt.Errorf("get cached prediction: %w", err)
	}
	if !found {
		return nil, nil
	}

	var prediction domain.Prediction
	if err := json.Unmarshal([]byte(raw), &prediction); err != nil {
		return nil, fmt.Errorf("decode cached prediction: %w", err)
	}
	return &prediction, nil
}

// GetMonitoringState returns the per-user scheduling state, or nil without
// error when the user has never been monitored.
func (e *Engine) GetMonitoringState(ctx context.Context, userID uuid.UUID) (*domain.MonitoringState, error) {
	raw, found, err := e.store.Get(ctx, fmt.Sprintf(monitorKeyFormat, userID))
	if err != nil {
		return nil, fmt.Errorf("get monitoring state: %w", err)
	}
	if !found {
		return nil, nil
	}

	var state domain.MonitoringState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("decode monitoring state: %w", err)
	}
	return &state, nil
}

// History returns up to limit prediction history entries, newest first.
func (e *Engine) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 || limit > historyMaxEntries {
		limit = historyMaxEntries
	}

	raw, err := e.store.ListRange(ctx, fmt.Sprintf(historyKeyFormat, userID), 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry domain.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// cachePrediction persists the prediction under its user key. Cache failures
// are logged, not fatal: the caller already holds the prediction.
func (e *Engine) cachePrediction(ctx context.Context, p *domain.Prediction) {
	encoded, err := json.Marshal(p)
	if err != nil {
		e.logger.WarnContext(ctx, "failed to encode prediction for cache",
			"user_id", p.UserID, "error", err)
		return
	}
	key := fmt.Sprintf(predictionKeyFormat, p.UserID)
	if err := e.store.Set(ctx, key, string(encoded), cacheTTL); err != nil {
		e.logger.WarnContext(ctx, "failed to cache prediction",
			"user_id", p.UserID, "error", err)
	}
}

func (e *Engine) appendHistory(ctx context.Context, p *domain.Prediction) {
	entry := domain.HistoryEntry{
		Probability: p.Probability,
		RiskLevel:   p.RiskLevel,
		GeneratedAt: p.GeneratedAt,
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		return
	}
	key := fmt.Sprintf(historyKeyFormat, p.UserID)
	if err := e.store.ListPush(ctx, key, string(encoded), historyMaxEntries, cacheTTL); err != nil {
		e.logger.WarnContext(ctx, "failed to append prediction history",
			"user_id", p.UserID, "error", err)
	}
}

func (e *Engine) saveMonitoringState(ctx context.Context, p *domain.Prediction, esc domain.EscalationResult, nextDue time.Time) {
	state := domain.MonitoringState{
		UserID:            p.UserID,
		LastProbability:   p.Probability,
		LastRiskLevel:     p.RiskLevel,
		RiskTrend:         esc.RiskChange,
		LastMonitoredAt:   p.GeneratedAt,
		NextMonitoringDue: nextDue,
	}
	encoded, err := json.Marshal(state)
	if err != nil {
		return
	}
	key := fmt.Sprintf(monitorKeyFormat, p.UserID)
	if err := e.store.Set(ctx, key, string(encoded), cacheTTL); err != nil {
		e.logger.WarnContext(ctx, "failed to save monitoring state",
			"user_id", p.UserID, "error", err)
	}
}

// advisoryTriggers asks the advisory to tag the situational description with
// vocabulary triggers. Only runs when a description exists; every failure
// yields no tags.
func (e *Engine) advisoryTriggers(ctx context.Context, in PredictInput) []domain.Trigger {
	if e.advisory == nil || in.Situational == nil || in.Situational.Description == "" {
		return nil
	}

	vocabulary := make([]string, 0, len(domain.TriggerVocabulary))
	for _, t := range domain.TriggerVocabulary {
		vocabulary = append(vocabulary, string(t))
	}

	prompt := fmt.Sprintf(
		"A behavior-change program user described their situation as:\n\n%q\n\nReply with a comma-separated list of the matching tags from this closed vocabulary, or NONE: %s",
		in.Situational.Description, strings.Join(vocabulary, ", "))

	text, err := e.advisory.Generate(ctx, prompt)
	if err != nil {
		e.logger.WarnContext(ctx, "advisory trigger tagging failed",
			"user_id", in.UserID, "error", err)
		return nil
	}
	return advisory.ParseTagList(text)
}

// advisoryCandidates asks the advisory for intervention proposals at elevated
// risk. Proposals are validated against the catalogue before the selector
// ever sees them.
func (e *Engine) advisoryCandidates(ctx context.Context, in PredictInput, level domain.RiskLevel, triggers []domain.Trigger) []domain.InterventionCandidate {
	if e.advisory == nil || level.Severity() < domain.RiskModerate.Severity() {
		return nil
	}

	catalogue := make([]string, 0, len(domain.InterventionCatalogue))
	for _, t := range domain.InterventionCatalogue {
		catalogue = append(catalogue, string(t))
	}
	tags := make([]string, 0, len(triggers))
	for _, t := range triggers {
		tags = append(tags, string(t))
	}

	prompt := fmt.Sprintf(
		"A behavior-change program user is at %s disengagement risk with triggers [%s]. Propose up to 3 interventions as a JSON array of {\"type\", \"reasoning\", \"priority\"} where type is one of [%s] and priority is 1-10. JSON only.",
		level, strings.Join(tags, ", "), strings.Join(catalogue, ", "))

	text, err := e.advisory.Generate(ctx, prompt)
	if err != nil {
		e.logger.WarnContext(ctx, "advisory intervention proposals failed",
			"user_id", in.UserID, "error", err)
		return nil
	}
	return advisory.ParseCandidateList(text)
}
