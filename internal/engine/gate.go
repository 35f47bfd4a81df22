package engine

import "github.com/habitloop/adherence-engine/internal/domain"

// Decision gate thresholds.
const (
	// ProbabilityDropThreshold is the per-cycle adherence probability drop
	// that forces an intervention regardless of the absolute level.
	ProbabilityDropThreshold = -0.15
	// UrgentWindowDays gates moderate/high risk users whose intervention
	// window has nearly closed.
	UrgentWindowDays = 3
)

// urgentTriggers force an intervention on their own.
var urgentTriggers = map[domain.Trigger]bool{
	domain.TriggerHealthConcern:  true,
	domain.TriggerLifeEvent:      true,
	domain.TriggerMotivationDrop: true,
}

// GateInput carries everything the decision gate looks at.
type GateInput struct {
	RiskLevel              domain.RiskLevel
	Escalated              bool
	ProbabilityDelta       float64
	Triggers               []domain.Trigger
	InterventionWindowDays int
	HelpRequested          bool
}

// NeedsIntervention returns true when any gating condition holds. The
// conditions are independent ORs with no precedence among them.
func NeedsIntervention(in GateInput) bool {
	if in.RiskLevel == domain.RiskVeryHigh {
		return true
	}
	if in.Escalated {
		return true
	}
	if in.ProbabilityDelta <= ProbabilityDropThreshold {
		return true
	}
	for _, t := range in.Triggers {
		if urgentTriggers[t] {
			return true
		}
	}
	if (in.RiskLevel == domain.RiskHigh || in.RiskLevel == domain.RiskModerate) &&
		in.InterventionWindowDays <= UrgentWindowDays {
		return true
	}
	return in.HelpRequested
}
