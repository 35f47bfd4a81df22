package engine

import (
	"sort"

	"github.com/habitloop/adherence-engine/internal/domain"
)

// MaxInterventionCandidates bounds the ranked candidate list.
const MaxInterventionCandidates = 3

// SelectionInput carries the signals the selector ranks on.
type SelectionInput struct {
	Snapshot  *domain.MetricsSnapshot
	RiskLevel domain.RiskLevel
	Triggers  []domain.Trigger
}

// SelectInterventions produces the ranked candidate list: deterministic
// fallback rules first, optionally merged with validated advisory proposals.
// Result is sorted by priority descending with catalogue declaration order as
// the stable tie-break, truncated to MaxInterventionCandidates.
func SelectInterventions(in SelectionInput, advisoryCandidates []domain.InterventionCandidate) []domain.InterventionCandidate {
	byType := make(map[domain.InterventionType]domain.InterventionCandidate)

	consider := func(c domain.InterventionCandidate) {
		if !c.Type.Valid() {
			return
		}
		if existing, ok := byType[c.Type]; ok && existing.Priority >= c.Priority {
			return
		}
		byType[c.Type] = c
	}

	for _, c := range fallbackCandidates(in) {
		consider(c)
	}
	// Advisory proposals were validated against the catalogue upstream, but
	// the selector re-checks: it is the last line before dispatch.
	for _, c := range advisoryCandidates {
		consider(c)
	}

	candidates := make([]domain.InterventionCandidate, 0, len(byType))
	for _, c := range byType {
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority > candidates[j].Priority
		}
		return candidates[i].Type.CatalogueIndex() < candidates[j].Type.CatalogueIndex()
	})

	if len(candidates) > MaxInterventionCandidates {
		candidates = candidates[:MaxInterventionCandidates]
	}
	return candidates
}

func fallbackCandidates(in SelectionInput) []domain.InterventionCandidate {
	m := in.Snapshot
	highRisk := in.RiskLevel.Severity() >= domain.RiskHigh.Severity()

	triggered := make(map[domain.Trigger]bool, len(in.Triggers))
	for _, t := range in.Triggers {
		triggered[t] = true
	}

	var out []domain.InterventionCandidate

	if highRisk {
		out = append(out, domain.InterventionCandidate{
			Type:      domain.InterventionAgentOutreach,
			Reasoning: "High disengagement risk requires direct outreach",
			Priority:  10,
		})
	}

	if triggered[domain.TriggerPlateau] {
		out = append(out, domain.InterventionCandidate{
			Type:      domain.InterventionProtocolAdjustment,
			Reasoning: "Progress plateau calls for a protocol change",
			Priority:  9,
		})
	}

	if m.DailyUsageMinutes < UsageTargetLowMinutes {
		priority := 7
		if highRisk {
			priority += 2
		}
		out = append(out, domain.InterventionCandidate{
			Type:      domain.InterventionPushNotification,
			Reasoning: "Low daily engagement; a well-timed nudge can restore the habit",
			Priority:  priority,
		})
	}

	if m.SatisfactionScore <= 4 || triggered[domain.TriggerComplexityOverload] {
		out = append(out, domain.InterventionCandidate{
			Type:      domain.InterventionGoalSimplification,
			Reasoning: "Low satisfaction suggests the current goals are too ambitious",
			Priority:  8,
		})
	}

	if triggered[domain.TriggerMotivationDrop] {
		out = append(out, domain.InterventionCandidate{
			Type:      domain.InterventionGamificationBoost,
			Reasoning: "Falling motivation responds well to short-term wins",
			Priority:  6,
		})
	}

	if m.SupportStrength < 0.4 {
		out = append(out, domain.InterventionCandidate{
			Type:      domain.InterventionSocialSupport,
			Reasoning: "Weak support network; connecting with peers improves retention",
			Priority:  5,
		})
	}

	if in.RiskLevel == domain.RiskModerate {
		out = append(out, domain.InterventionCandidate{
			Type:      domain.InterventionContentPersonalization,
			Reasoning: "Tailored content can re-engage a wavering user",
			Priority:  4,
		})
	}

	// Baseline so the selector never returns empty when an intervention is
	// warranted for other reasons (e.g. an explicit help request).
	out = append(out, domain.InterventionCandidate{
		Type:      domain.InterventionAutomatedMessage,
		Reasoning: "Routine encouragement check-in",
		Priority:  2,
	})

	return out
}
