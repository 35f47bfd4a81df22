package domain

// RiskLevel is the ordinal disengagement risk classification.
// @Description Disengagement risk tier, from very_low to very_high.
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "very_low"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// riskSeverity defines the total order on risk levels, least severe first.
var riskSeverity = []RiskLevel{RiskVeryLow, RiskLow, RiskModerate, RiskHigh, RiskVeryHigh}

// Severity returns the ordinal rank of the level (0 = very_low, 4 = very_high).
// Unknown levels rank as -1 so they never compare as more severe.
func (r RiskLevel) Severity() int {
	for i, level := range riskSeverity {
		if level == r {
			return i
		}
	}
	return -1
}

// Valid reports whether the level is part of the closed vocabulary.
func (r RiskLevel) Valid() bool {
	return r.Severity() >= 0
}

// Trigger is a tagged behavioral/contextual signal correlated with disengagement.
// @Description Behavioral trigger tag from the closed 8-tag vocabulary.
type Trigger string

const (
	TriggerPlateau                 Trigger = "plateau"
	TriggerTimePressure            Trigger = "time_pressure"
	TriggerMotivationDrop          Trigger = "motivation_drop"
	TriggerComplexityOverload      Trigger = "complexity_overload"
	TriggerSocialPressure          Trigger = "social_pressure"
	TriggerHealthConcern           Trigger = "health_concern"
	TriggerLifeEvent               Trigger = "life_event"
	TriggerProgressDissatisfaction Trigger = "progress_dissatisfaction"
)

// TriggerVocabulary is the closed set of recognized triggers. Tags from the
// advisory capability are validated against it before use.
var TriggerVocabulary = []Trigger{
	TriggerPlateau,
	TriggerTimePressure,
	TriggerMotivationDrop,
	TriggerComplexityOverload,
	TriggerSocialPressure,
	TriggerHealthConcern,
	TriggerLifeEvent,
	TriggerProgressDissatisfaction,
}

// Valid reports whether the trigger is part of the closed vocabulary.
func (t Trigger) Valid() bool {
	for _, known := range TriggerVocabulary {
		if t == known {
			return true
		}
	}
	return false
}

// InterventionType identifies a dispatchable intervention strategy.
// @Description Intervention strategy type from the fixed 8-type catalogue.
type InterventionType string

const (
	InterventionAutomatedMessage       InterventionType = "automated_message"
	InterventionPushNotification       InterventionType = "push_notification"
	InterventionAgentOutreach          InterventionType = "agent_outreach"
	InterventionProtocolAdjustment     InterventionType = "protocol_adjustment"
	InterventionGoalSimplification     InterventionType = "goal_simplification"
	InterventionSocialSupport          InterventionType = "social_support"
	InterventionContentPersonalization InterventionType = "content_personalization"
	InterventionGamificationBoost      InterventionType = "gamification_boost"
)

// InterventionCatalogue is the fixed catalogue in declaration order. The order
// is the stable tie-break when candidates share a priority.
var InterventionCatalogue = []InterventionType{
	InterventionAutomatedMessage,
	InterventionPushNotification,
	InterventionAgentOutreach,
	InterventionProtocolAdjustment,
	InterventionGoalSimplification,
	InterventionSocialSupport,
	InterventionContentPersonalization,
	InterventionGamificationBoost,
}

// CatalogueIndex returns the declaration-order index of the type, or -1 when
// the type is not part of the catalogue.
func (t InterventionType) CatalogueIndex() int {
	for i, known := range InterventionCatalogue {
		if t == known {
			return i
		}
	}
	return -1
}

// Valid reports whether the type is part of the fixed catalogue.
func (t InterventionType) Valid() bool {
	return t.CatalogueIndex() >= 0
}

// MonitoringFrequency is the recommended re-evaluation cadence for a user.
// @Description Monitoring cadence tag derived from the current risk level.
type MonitoringFrequency string

const (
	MonitorDaily      MonitoringFrequency = "daily"
	MonitorEvery2Days MonitoringFrequency = "every_2_days"
	MonitorWeekly     MonitoringFrequency = "weekly"
	MonitorBiWeekly   MonitoringFrequency = "bi_weekly"
	MonitorMonthly    MonitoringFrequency = "monthly"
)

// Days returns the cadence interval in days.
func (f MonitoringFrequency) Days() int {
	switch f {
	case MonitorDaily:
		return 1
	case MonitorEvery2Days:
		return 2
	case MonitorWeekly:
		return 7
	case MonitorBiWeekly:
		return 14
	case MonitorMonthly:
		return 30
	default:
		return 30
	}
}
