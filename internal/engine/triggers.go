package engine

import "github.com/habitloop/adherence-engine/internal/domain"

// Trigger detection thresholds.
const (
	PlateauTriggerDays          = 14
	ModificationTriggerRequests = 3
	MotivationUsageMinutes      = 10.0
	MotivationConsistency       = 0.4
	TimePressurePriorities      = 7.0
	SocialSupportFloor          = 0.3
	SocialChallengeCeiling      = 6.0
	DissatisfactionScore        = 3.0
	DissatisfactionGap          = 0.5
)

// DetectTriggers runs the deterministic rule set over a snapshot. The
// health_concern and life_event tags have no telemetry signal and only enter
// through validated advisory augmentation.
func DetectTriggers(m *domain.MetricsSnapshot) []domain.Trigger {
	var triggers []domain.Trigger

	if m.PlateauDurationDays > PlateauTriggerDays {
		triggers = append(triggers, domain.TriggerPlateau)
	}
	if m.CompetingPriorities >= TimePressurePriorities {
		triggers = append(triggers, domain.TriggerTimePressure)
	}
	if m.DailyUsageMinutes < MotivationUsageMinutes && m.ConsistencyScore < MotivationConsistency {
		triggers = append(triggers, domain.TriggerMotivationDrop)
	}
	if m.ModificationRequests > ModificationTriggerRequests {
		triggers = append(triggers, domain.TriggerComplexityOverload)
	}
	if m.SupportStrength < SocialSupportFloor && m.EnvironmentalChallenges >= SocialChallengeCeiling {
		triggers = append(triggers, domain.TriggerSocialPressure)
	}
	if m.SatisfactionScore <= DissatisfactionScore || m.ExpectationRealityGap > DissatisfactionGap {
		triggers = append(triggers, domain.TriggerProgressDissatisfaction)
	}

	return triggers
}

// MergeTriggers unions the deterministic set with validated advisory tags,
// preserving deterministic order first and deduplicating.
func MergeTriggers(deterministic, advisory []domain.Trigger) []domain.Trigger {
	seen := make(map[domain.Trigger]bool, len(deterministic)+len(advisory))
	merged := make([]domain.Trigger, 0, len(deterministic)+len(advisory))

	for _, set := range [][]domain.Trigger{deterministic, advisory} {
		for _, t := range set {
			if !t.Valid() || seen[t] {
				continue
			}
			seen[t] = true
			merged = append(merged, t)
		}
	}
	return merged
}
