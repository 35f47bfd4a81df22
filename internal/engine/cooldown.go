package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/internal/store"
)

// Per-type cooldown durations. Types without an entry use DefaultCooldown.
var cooldownDurations = map[domain.InterventionType]time.Duration{
	domain.InterventionAutomatedMessage:   24 * time.Hour,
	domain.InterventionPushNotification:   12 * time.Hour,
	domain.InterventionAgentOutreach:      72 * time.Hour,
	domain.InterventionProtocolAdjustment: 168 * time.Hour,
	domain.InterventionGoalSimplification: 336 * time.Hour,
}

// DefaultCooldown applies to intervention types without an explicit duration.
const DefaultCooldown = 24 * time.Hour

// CooldownLedger enforces per-(user, intervention type) dispatch cooldowns on
// top of the key-value store. Entries become inert when their TTL elapses; no
// explicit cleanup runs.
type CooldownLedger struct {
	store store.Store
	now   func() time.Time
}

// NewCooldownLedger creates a ledger over the given store.
func NewCooldownLedger(st store.Store) *CooldownLedger {
	return &CooldownLedger{store: st, now: time.Now}
}

// SetClock overrides the ledger's clock for tests.
func (l *CooldownLedger) SetClock(now func() time.Time) {
	l.now = now
}

// Duration returns the cooldown window for an intervention type.
func (l *CooldownLedger) Duration(t domain.InterventionType) time.Duration {
	if d, ok := cooldownDurations[t]; ok {
		return d
	}
	return DefaultCooldown
}

// IsOnCooldown reports whether the (user, type) pair is inside its window.
func (l *CooldownLedger) IsOnCooldown(ctx context.Context, userID uuid.UUID, t domain.InterventionType) (bool, error) {
	_, exists, err := l.store.Get(ctx, l.key(userID, t))
	if err != nil {
		return false, fmt.Errorf("cooldown lookup: %w", err)
	}
	return exists, nil
}

// SetCooldown unconditionally starts the cooldown window for (user, type).
func (l *CooldownLedger) SetCooldown(ctx context.Context, userID uuid.UUID, t domain.InterventionType) error {
	stamp := l.now().UTC().Format(time.RFC3339)
	if err := l.store.Set(ctx, l.key(userID, t), stamp, l.Duration(t)); err != nil {
		return fmt.Errorf("cooldown set: %w", err)
	}
	return nil
}

// Acquire atomically claims the cooldown slot for (user, type). It returns
// true when the slot was free and is now held for the full window. Two
// concurrent evaluations for the same user cannot both acquire: the
// check-then-set is a single set-if-absent in the store.
func (l *CooldownLedger) Acquire(ctx context.Context, userID uuid.UUID, t domain.InterventionType) (bool, error) {
	stamp := l.now().UTC().Format(time.RFC3339)
	acquired, err := l.store.SetIfAbsent(ctx, l.key(userID, t), stamp, l.Duration(t))
	if err != nil {
		return false, fmt.Errorf("cooldown acquire: %w", err)
	}
	return acquired, nil
}

func (l *CooldownLedger) key(userID uuid.UUID, t domain.InterventionType) string {
	return fmt.Sprintf("adherence:cooldown:%s:%s", userID, t)
}
