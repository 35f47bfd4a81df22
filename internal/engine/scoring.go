// Package engine implements the adherence risk pipeline: scoring,
// adjustment, classification, trigger and factor extraction, escalation
// detection, intervention selection, cooldown enforcement, and monitoring
// scheduling.
package engine

import (
	"math"

	"github.com/habitloop/adherence-engine/internal/domain"
)

// Category weights. They sum to 1.0 so the combined score stays in [0, 1].
const (
	WeightEngagement = 0.25
	WeightBehavioral = 0.30
	WeightProgress   = 0.20
	WeightSocial     = 0.15
	WeightHistorical = 0.10
)

// Engagement normalization bands.
const (
	// Healthy daily usage band in minutes. Usage far above the band is
	// penalized: frustration-driven over-use predicts dropout, not adherence.
	UsageTargetLowMinutes  = 15.0
	UsageTargetHighMinutes = 45.0
	UsageOveruseMinutes    = 120.0
	UsageOveruseFloor      = 0.4

	ActiveDaysTarget = 5.0

	InteractionTargetLow  = 1.0
	InteractionTargetHigh = 3.0
	InteractionOveruse    = 8.0
	InteractionOverFloor  = 0.5

	LatencyPromptHours = 2.0
	LatencyWorstHours  = 48.0
)

// Behavioral, progress, and historical normalization bands.
const (
	SelfReportTargetPerWeek  = 3.0
	ModificationPenaltyEach  = 0.15
	PlateauGraceDays         = 7.0
	PlateauWorstDays         = 30.0
	StreakTargetDays         = 30.0
	DropoutHorizonDays       = 60.0
	NeutralHistoricalDefault = 0.5
)

// CategoryScores holds the five 0-1 sub-scores that feed the weighted sum.
type CategoryScores struct {
	Engagement float64 `json:"engagement"`
	Behavioral float64 `json:"behavioral"`
	Progress   float64 `json:"progress"`
	Social     float64 `json:"social"`
	Historical float64 `json:"historical"`
}

// Combined returns the weighted adherence score, clamped to [0, 1].
func (c CategoryScores) Combined() float64 {
	sum := c.Engagement*WeightEngagement +
		c.Behavioral*WeightBehavioral +
		c.Progress*WeightProgress +
		c.Social*WeightSocial +
		c.Historical*WeightHistorical
	return clamp01(sum)
}

// Score computes the base adherence probability for a snapshot. The snapshot
// must already be validated; Score itself has no failure mode.
func Score(m *domain.MetricsSnapshot) float64 {
	return ScoreCategories(m).Combined()
}

// ScoreCategories computes the five category sub-scores.
func ScoreCategories(m *domain.MetricsSnapshot) CategoryScores {
	return CategoryScores{
		Engagement: engagementScore(m),
		Behavioral: behavioralScore(m),
		Progress:   progressScore(m),
		Social:     socialScore(m),
		Historical: historicalScore(m),
	}
}

func engagementScore(m *domain.MetricsSnapshot) float64 {
	usage := targetBand(m.DailyUsageMinutes,
		UsageTargetLowMinutes, UsageTargetHighMinutes,
		UsageOveruseMinutes, UsageOveruseFloor)

	activeDays := rampUp(float64(m.WeeklyActiveDays), 0, ActiveDaysTarget)

	interaction := targetBand(m.InteractionFrequency,
		InteractionTargetLow, InteractionTargetHigh,
		InteractionOveruse, InteractionOverFloor)

	latency := 1.0
	if m.ResponseLatencyHours > LatencyPromptHours {
		latency = rampDown(m.ResponseLatencyHours, LatencyPromptHours, LatencyWorstHours)
	}

	return mean(usage, activeDays, interaction, latency)
}

func behavioralScore(m *domain.MetricsSnapshot) float64 {
	selfReport := rampUp(m.SelfReportingFrequency, 0, SelfReportTargetPerWeek)

	// The first modification request is normal fine-tuning; each one beyond
	// that signals the plan is not working for the user.
	modifications := 1.0
	if extra := float64(m.ModificationRequests - 1); extra > 0 {
		modifications = clamp01(1.0 - extra*ModificationPenaltyEach)
	}

	return mean(m.ConsistencyScore, m.GoalCompletionRate, selfReport, modifications)
}

func progressScore(m *domain.MetricsSnapshot) float64 {
	satisfaction := (m.SatisfactionScore - 1) / 9

	plateau := 1.0
	if float64(m.PlateauDurationDays) > PlateauGraceDays {
		plateau = rampDown(float64(m.PlateauDurationDays), PlateauGraceDays, PlateauWorstDays)
	}

	// Negative gap means reality beats expectations.
	gap := 1.0
	if m.ExpectationRealityGap > 0 {
		gap = clamp01(1.0 - m.ExpectationRealityGap)
	}

	return mean(satisfaction, m.MilestoneAchievementRate, plateau, gap)
}

func socialScore(m *domain.MetricsSnapshot) float64 {
	challenges := clamp01(1.0 - m.EnvironmentalChallenges/10.0)
	priorities := clamp01(1.0 - m.CompetingPriorities/10.0)
	return mean(m.SupportStrength, challenges, priorities)
}

func historicalScore(m *domain.MetricsSnapshot) float64 {
	streak := rampUp(float64(m.LongestStreakDays), 0, StreakTargetDays)

	dropout := NeutralHistoricalDefault
	if m.AvgDropoutDays != nil {
		dropout = rampUp(*m.AvgDropoutDays, 0, DropoutHorizonDays)
	}

	return mean(m.PreviousCompletionRate, streak, dropout)
}

// Confidence estimates how much to trust the prediction based on data
// completeness. It never drops below 0.5: the deterministic pipeline always
// produces a usable answer.
func Confidence(m *domain.MetricsSnapshot) float64 {
	confidence := 0.9
	if m.AvgDropoutDays == nil {
		confidence -= 0.05
	}
	if m.DailyUsageMinutes == 0 && m.WeeklyActiveDays == 0 {
		// No engagement signal at all; the telemetry window may be empty.
		confidence -= 0.15
	}
	if m.SelfReportingFrequency == 0 {
		confidence -= 0.05
	}
	return math.Max(confidence, 0.5)
}

// rampUp maps v linearly from 0 at lo to 1 at hi, clamped.
func rampUp(v, lo, hi float64) float64 {
	if hi <= lo {
		return 1.0
	}
	return clamp01((v - lo) / (hi - lo))
}

// rampDown maps v linearly from 1 at lo to 0 at hi, clamped.
func rampDown(v, lo, hi float64) float64 {
	return 1.0 - rampUp(v, lo, hi)
}

// targetBand scores 1.0 inside [lo, hi], rises linearly from 0 below lo, and
// falls linearly to floor at overLimit above hi. Values past overLimit keep
// the floor rather than dropping to zero: heavy overshoot is a warning sign,
// not total disengagement.
func targetBand(v, lo, hi, overLimit, floor float64) float64 {
	switch {
	case v < lo:
		return rampUp(v, 0, lo)
	case v <= hi:
		return 1.0
	case v >= overLimit:
		return floor
	default:
		return 1.0 - (1.0-floor)*(v-hi)/(overLimit-hi)
	}
}

func mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
