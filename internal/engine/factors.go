package engine

import (
	"sort"

	"github.com/habitloop/adherence-engine/internal/domain"
)

// MaxFactorsPerKind bounds the ranked risk and protective factor lists.
const MaxFactorsPerKind = 5

type factorRule struct {
	category   string
	label      string
	weight     float64
	protective bool
	applies    func(m *domain.MetricsSnapshot) bool
}

// The rule table is fixed and AI-independent. Weights rank factors within a
// prediction; declaration order breaks ties.
var factorRules = []factorRule{
	// Risk factors
	{"engagement", "Low daily engagement", 0.90, false, func(m *domain.MetricsSnapshot) bool { return m.DailyUsageMinutes < 10 }},
	{"behavioral", "Inconsistent usage pattern", 0.85, false, func(m *domain.MetricsSnapshot) bool { return m.ConsistencyScore < 0.4 }},
	{"progress", "Low satisfaction with progress", 0.85, false, func(m *domain.MetricsSnapshot) bool { return m.SatisfactionScore <= 4 }},
	{"engagement", "Few active days per week", 0.80, false, func(m *domain.MetricsSnapshot) bool { return m.WeeklyActiveDays <= 2 }},
	{"behavioral", "Low goal completion", 0.80, false, func(m *domain.MetricsSnapshot) bool { return m.GoalCompletionRate < 0.3 }},
	{"progress", "Extended progress plateau", 0.75, false, func(m *domain.MetricsSnapshot) bool { return m.PlateauDurationDays > 14 }},
	{"social", "Weak support system", 0.70, false, func(m *domain.MetricsSnapshot) bool { return m.SupportStrength < 0.3 }},
	{"progress", "Expectations outpacing results", 0.70, false, func(m *domain.MetricsSnapshot) bool { return m.ExpectationRealityGap > 0.5 }},
	{"social", "Strong competing priorities", 0.65, false, func(m *domain.MetricsSnapshot) bool { return m.CompetingPriorities > 7 }},
	{"engagement", "Slow response to prompts", 0.60, false, func(m *domain.MetricsSnapshot) bool { return m.ResponseLatencyHours > 24 }},
	{"social", "Challenging environment", 0.60, false, func(m *domain.MetricsSnapshot) bool { return m.EnvironmentalChallenges > 7 }},
	{"behavioral", "Frequent plan modification requests", 0.60, false, func(m *domain.MetricsSnapshot) bool { return m.ModificationRequests > 3 }},
	{"historical", "History of early dropout", 0.60, false, func(m *domain.MetricsSnapshot) bool { return m.PreviousCompletionRate < 0.4 }},
	{"historical", "Short time-to-dropout in past programs", 0.55, false, func(m *domain.MetricsSnapshot) bool { return m.AvgDropoutDays != nil && *m.AvgDropoutDays < 21 }},

	// Protective factors
	{"engagement", "High daily engagement", 0.90, true, func(m *domain.MetricsSnapshot) bool { return m.DailyUsageMinutes > 20 }},
	{"behavioral", "Consistent usage pattern", 0.85, true, func(m *domain.MetricsSnapshot) bool { return m.ConsistencyScore > 0.7 }},
	{"progress", "High satisfaction with progress", 0.85, true, func(m *domain.MetricsSnapshot) bool { return m.SatisfactionScore >= 8 }},
	{"engagement", "Active nearly every day", 0.80, true, func(m *domain.MetricsSnapshot) bool { return m.WeeklyActiveDays >= 6 }},
	{"behavioral", "Strong goal completion", 0.80, true, func(m *domain.MetricsSnapshot) bool { return m.GoalCompletionRate > 0.7 }},
	{"social", "Strong support system", 0.75, true, func(m *domain.MetricsSnapshot) bool { return m.SupportStrength > 0.7 }},
	{"progress", "Steady milestone achievement", 0.70, true, func(m *domain.MetricsSnapshot) bool { return m.MilestoneAchievementRate > 0.6 }},
	{"historical", "History of completing programs", 0.65, true, func(m *domain.MetricsSnapshot) bool { return m.PreviousCompletionRate > 0.7 }},
	{"behavioral", "Regular self-reporting", 0.60, true, func(m *domain.MetricsSnapshot) bool { return m.SelfReportingFrequency >= 3 }},
	{"historical", "Long adherence streak", 0.60, true, func(m *domain.MetricsSnapshot) bool { return m.LongestStreakDays >= 21 }},
}

// ExtractFactors produces the ranked risk and protective factor lists for a
// snapshot, each capped at MaxFactorsPerKind. Fully deterministic.
func ExtractFactors(m *domain.MetricsSnapshot) (risk, protective []domain.Factor) {
	for _, rule := range factorRules {
		if !rule.applies(m) {
			continue
		}
		factor := domain.Factor{
			Label:    rule.label,
			Category: rule.category,
			Weight:   rule.weight,
		}
		if rule.protective {
			protective = append(protective, factor)
		} else {
			risk = append(risk, factor)
		}
	}

	sortFactors(risk)
	sortFactors(protective)

	if len(risk) > MaxFactorsPerKind {
		risk = risk[:MaxFactorsPerKind]
	}
	if len(protective) > MaxFactorsPerKind {
		protective = protective[:MaxFactorsPerKind]
	}
	return risk, protective
}

func sortFactors(factors []domain.Factor) {
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Weight > factors[j].Weight
	})
}
