package engine

import "github.com/habitloop/adherence-engine/internal/domain"

// DetectEscalation compares the current prediction against the cached prior
// one. With no prior, nothing can have escalated and the movement is unknown.
func DetectEscalation(current *domain.Prediction, prior *domain.Prediction) domain.EscalationResult {
	if prior == nil {
		return domain.EscalationResult{
			Escalated:  false,
			RiskChange: domain.RiskChangeUnknown,
		}
	}

	shift := current.RiskLevel.Severity() - prior.RiskLevel.Severity()

	change := domain.RiskChangeStable
	switch {
	case shift > 0:
		change = domain.RiskChangeWorsened
	case shift < 0:
		change = domain.RiskChangeImproved
	}

	return domain.EscalationResult{
		Escalated:        shift > 0,
		RiskChange:       change,
		ProbabilityDelta: current.Probability - prior.Probability,
		LevelShift:       shift,
	}
}
