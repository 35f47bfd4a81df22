package engine

import (
	"math"
	"time"

	"github.com/habitloop/adherence-engine/internal/domain"
)

// MonitoringPlan pairs the cadence tag with its concrete interval. The engine
// only reports when the next evaluation is due; an external scheduler owns
// the actual timers.
type MonitoringPlan struct {
	Frequency domain.MonitoringFrequency
	Interval  time.Duration
}

// MonitoringPlanFor maps a risk level to its monitoring cadence. Frequency
// strictly increases with risk severity.
func MonitoringPlanFor(level domain.RiskLevel) MonitoringPlan {
	var freq domain.MonitoringFrequency
	switch level {
	case domain.RiskVeryHigh:
		freq = domain.MonitorDaily
	case domain.RiskHigh:
		freq = domain.MonitorEvery2Days
	case domain.RiskModerate:
		freq = domain.MonitorWeekly
	case domain.RiskLow:
		freq = domain.MonitorBiWeekly
	default:
		freq = domain.MonitorMonthly
	}
	return MonitoringPlan{
		Frequency: freq,
		Interval:  time.Duration(freq.Days()) * 24 * time.Hour,
	}
}

// EstimateDropoutDays projects days until likely dropout. Only meaningful at
// moderate risk and above; below that the projection is omitted entirely.
// When the user's history includes an average time-to-dropout, the projection
// is blended with it.
func EstimateDropoutDays(probability float64, level domain.RiskLevel, m *domain.MetricsSnapshot) *int {
	if level.Severity() < domain.RiskModerate.Severity() {
		return nil
	}

	estimate := 10 + probability*50
	if m.AvgDropoutDays != nil {
		estimate = (estimate + *m.AvgDropoutDays) / 2
	}

	days := int(math.Round(estimate))
	if days < 3 {
		days = 3
	}
	return &days
}

// InterventionWindowDays derives how many days remain in which an
// intervention is likely to land. With a dropout projection the window tracks
// it; otherwise it falls back to a per-level default.
func InterventionWindowDays(level domain.RiskLevel, estimatedDropoutDays *int) int {
	if estimatedDropoutDays != nil {
		window := int(math.Round(float64(*estimatedDropoutDays) / 5.0))
		if window < 1 {
			window = 1
		}
		if window > 30 {
			window = 30
		}
		return window
	}

	switch level {
	case domain.RiskVeryHigh:
		return 2
	case domain.RiskHigh:
		return 3
	case domain.RiskModerate:
		return 7
	case domain.RiskLow:
		return 14
	default:
		return 30
	}
}
