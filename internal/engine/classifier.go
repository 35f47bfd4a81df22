package engine

import "github.com/habitloop/adherence-engine/internal/domain"

// Risk classification thresholds over the adherence probability, evaluated
// in descending order. The bands are fixed and non-overlapping, so the
// mapping is total and monotone.
const (
	ThresholdVeryLow  = 0.8
	ThresholdLow      = 0.6
	ThresholdModerate = 0.4
	ThresholdHigh     = 0.2
)

// ClassifyRisk maps an adherence probability to a disengagement risk level.
// Higher probability of sustained adherence means lower risk.
func ClassifyRisk(probability float64) domain.RiskLevel {
	switch {
	case probability >= ThresholdVeryLow:
		return domain.RiskVeryLow
	case probability >= ThresholdLow:
		return domain.RiskLow
	case probability >= ThresholdModerate:
		return domain.RiskModerate
	case probability >= ThresholdHigh:
		return domain.RiskHigh
	default:
		return domain.RiskVeryHigh
	}
}
