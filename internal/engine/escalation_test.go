package engine

import (
	"math"
	"testing"

	"github.com/habitloop/adherence-engine/internal/domain"
)

func prediction(probability float64, level domain.RiskLevel) *domain.Prediction {
	return &domain.Prediction{Probability: probability, RiskLevel: level}
}

func TestDetectEscalation_NoPrior(t *testing.T) {
	got := DetectEscalation(prediction(0.3, domain.RiskHigh), nil)

	if got.Escalated {
		t.Error("first cycle must not escalate")
	}
	if got.RiskChange != domain.RiskChangeUnknown {
		t.Errorf("RiskChange = %v, want unknown", got.RiskChange)
	}
}

func TestDetectEscalation(t *testing.T) {
	tests := []struct {
		name          string
		current       *domain.Prediction
		prior         *domain.Prediction
		wantEscalated bool
		wantChange    domain.RiskChange
		wantShift     int
		wantDelta     float64
	}{
		{
			name:          "sharp decline across two tiers",
			current:       prediction(0.3, domain.RiskHigh),
			prior:         prediction(0.7, domain.RiskLow),
			wantEscalated: true,
			wantChange:    domain.RiskChangeWorsened,
			wantShift:     2,
			wantDelta:     -0.4,
		},
		{
			name:          "one tier worse",
			current:       prediction(0.55, domain.RiskModerate),
			prior:         prediction(0.65, domain.RiskLow),
			wantEscalated: true,
			wantChange:    domain.RiskChangeWorsened,
			wantShift:     1,
			wantDelta:     -0.1,
		},
		{
			name:          "stable tier despite probability drop",
			current:       prediction(0.61, domain.RiskLow),
			prior:         prediction(0.75, domain.RiskLow),
			wantEscalated: false,
			wantChange:    domain.RiskChangeStable,
			wantShift:     0,
			wantDelta:     -0.14,
		},
		{
			name:          "improvement",
			current:       prediction(0.65, domain.RiskLow),
			prior:         prediction(0.35, domain.RiskHigh),
			wantEscalated: false,
			wantChange:    domain.RiskChangeImproved,
			wantShift:     -2,
			wantDelta:     0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectEscalation(tt.current, tt.prior)

			if got.Escalated != tt.wantEscalated {
				t.Errorf("Escalated = %v, want %v", got.Escalated, tt.wantEscalated)
			}
			if got.RiskChange != tt.wantChange {
				t.Errorf("RiskChange = %v, want %v", got.RiskChange, tt.wantChange)
			}
			if got.LevelShift != tt.wantShift {
				t.Errorf("LevelShift = %v, want %v", got.LevelShift, tt.wantShift)
			}
			if math.Abs(got.ProbabilityDelta-tt.wantDelta) > 1e-9 {
				t.Errorf("ProbabilityDelta = %v, want %v", got.ProbabilityDelta, tt.wantDelta)
			}
		})
	}
}
