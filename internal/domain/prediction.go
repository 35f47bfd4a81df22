package domain

import (
	"time"

	"github.com/google/uuid"
)

// Factor is a ranked human-readable risk or protective factor label.
// @Description Ranked factor label extracted from the metrics snapshot.
type Factor struct {
	// Human-readable factor label
	Label string `json:"label" example:"Low daily engagement"`
	// Metric category the factor was derived from
	Category string `json:"category" example:"engagement"`
	// Relative weight used for ranking (higher = more significant)
	Weight float64 `json:"weight" example:"0.9"`
}

// InterventionCandidate is one ranked intervention proposal. Candidates are
// transient and recomputed every cycle.
// @Description Ranked intervention candidate for the current cycle.
type InterventionCandidate struct {
	// Intervention type from the fixed catalogue
	Type InterventionType `json:"type" example:"agent_outreach"`
	// Why this intervention was proposed
	Reasoning string `json:"reasoning" example:"High disengagement risk requires direct outreach"`
	// Priority score (higher dispatches first)
	Priority int `json:"priority" example:"10"`
}

// Prediction is the immutable result of one evaluation cycle. A new cycle
// supersedes it; nothing mutates a prediction after creation.
// @Description Adherence prediction for one user and cycle.
type Prediction struct {
	// User the prediction belongs to
	UserID uuid.UUID `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Probability of sustained adherence (0-1, higher is better)
	Probability float64 `json:"probability" example:"0.46"`
	// Disengagement risk classification
	RiskLevel RiskLevel `json:"risk_level" example:"moderate"`
	// Confidence in the prediction (0-1)
	Confidence float64 `json:"confidence" example:"0.85"`
	// Ranked risk factors (at most 5)
	RiskFactors []Factor `json:"risk_factors"`
	// Ranked protective factors (at most 5)
	ProtectiveFactors []Factor `json:"protective_factors"`
	// Detected behavioral triggers
	Triggers []Trigger `json:"triggers"`
	// Estimated days until dropout, present only at elevated risk
	EstimatedDropoutDays *int `json:"estimated_dropout_days,omitempty" example:"21"`
	// Days remaining in which an intervention is likely to work
	InterventionWindowDays int `json:"intervention_window_days" example:"7"`
	// Ranked intervention candidates (at most 3)
	Interventions []InterventionCandidate `json:"interventions"`
	// Recommended monitoring cadence
	MonitoringFrequency MonitoringFrequency `json:"monitoring_frequency" example:"weekly"`
	// Estimated adherence probability if the top intervention lands
	SuccessWithIntervention float64 `json:"success_with_intervention" example:"0.67"`
	// When the prediction was computed
	GeneratedAt time.Time `json:"generated_at" example:"2024-01-16T07:05:00Z"`
}

// RiskChange describes the ordinal movement between two predictions.
type RiskChange string

const (
	RiskChangeUnknown  RiskChange = "unknown"
	RiskChangeStable   RiskChange = "stable"
	RiskChangeImproved RiskChange = "improved"
	RiskChangeWorsened RiskChange = "worsened"
)

// EscalationResult is the output of comparing the current prediction against
// the cached prior one. With no prior, Escalated is false and RiskChange is
// unknown.
// @Description Escalation comparison against the previous cycle.
type EscalationResult struct {
	// Whether risk severity increased since the prior cycle
	Escalated bool `json:"escalated" example:"true"`
	// Direction of ordinal risk movement
	RiskChange RiskChange `json:"risk_change" example:"worsened"`
	// Current minus prior adherence probability
	ProbabilityDelta float64 `json:"probability_delta" example:"-0.4"`
	// How many severity tiers the risk moved (positive = worse)
	LevelShift int `json:"level_shift" example:"2"`
}

// DispatchStatus describes the outcome of one intervention dispatch attempt.
type DispatchStatus string

const (
	DispatchStatusDispatched      DispatchStatus = "dispatched"
	DispatchStatusFailed          DispatchStatus = "failed"
	DispatchStatusSkippedCooldown DispatchStatus = "skipped_cooldown"
)

// InterventionOutcome records one dispatch attempt within a monitor cycle.
// Candidates on cooldown are kept with a skipped_cooldown status instead of
// being dropped, so every considered candidate is observable.
// @Description Outcome of one intervention dispatch attempt.
type InterventionOutcome struct {
	// Intervention type that was considered
	Type InterventionType `json:"type" example:"push_notification"`
	// Dispatch outcome
	Status DispatchStatus `json:"status" example:"dispatched"`
	// Failure or skip reason, empty on success
	Reason string `json:"reason,omitempty" example:"on cooldown until 2024-01-16T19:00:00Z"`
	// Priority the candidate carried
	Priority int `json:"priority" example:"9"`
	// When the attempt happened
	At time.Time `json:"at" example:"2024-01-16T07:05:00Z"`
}

// MonitorResult is the outcome of one full monitor cycle.
// @Description Monitor cycle result: prediction, escalation, dispatches, next due time.
type MonitorResult struct {
	Prediction Prediction `json:"prediction"`
	// Risk movement vs the prior cached prediction
	RiskChange RiskChange `json:"risk_change" example:"worsened"`
	// Whether the decision gate requested interventions this cycle
	InterventionNeeded bool `json:"intervention_needed" example:"true"`
	// Dispatch attempts made this cycle
	InterventionsTriggered []InterventionOutcome `json:"interventions_triggered"`
	// When the next evaluation is due
	NextMonitoringDue time.Time `json:"next_monitoring_due" example:"2024-01-17T07:05:00Z"`
}

// MonitoringState is the per-user scheduling state, upserted every monitor
// cycle and retained with a 30-day TTL.
type MonitoringState struct {
	UserID            uuid.UUID  `json:"user_id"`
	LastProbability   float64    `json:"last_probability"`
	LastRiskLevel     RiskLevel  `json:"last_risk_level"`
	RiskTrend         RiskChange `json:"risk_trend"`
	LastMonitoredAt   time.Time  `json:"last_monitored_at"`
	NextMonitoringDue time.Time  `json:"next_monitoring_due"`
}

// HistoryEntry is one compact line of a user's prediction history, kept in a
// capped list so trend queries never replay full predictions.
type HistoryEntry struct {
	Probability float64   `json:"probability"`
	RiskLevel   RiskLevel `json:"risk_level"`
	GeneratedAt time.Time `json:"generated_at"`
}

// DispatchRecord is the persisted audit row for one dispatch attempt.
type DispatchRecord struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_dispatches_user_created" json:"user_id"`
	Type      InterventionType `gorm:"type:varchar(40);not null" json:"type"`
	Status    DispatchStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Reason    string           `gorm:"type:varchar(500)" json:"reason,omitempty"`
	Priority  int              `gorm:"type:smallint;not null" json:"priority"`
	RiskLevel RiskLevel        `gorm:"type:varchar(10);not null" json:"risk_level"`
	CreatedAt time.Time        `gorm:"autoCreateTime;index:idx_dispatches_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DispatchRecord) TableName() string {
	return "intervention_dispatches"
}
