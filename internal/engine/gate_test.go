package engine

import (
	"testing"

	"github.com/habitloop/adherence-engine/internal/domain"
)

func TestNeedsIntervention(t *testing.T) {
	// Baseline that trips no condition.
	calm := GateInput{
		RiskLevel:              domain.RiskLow,
		Escalated:              false,
		ProbabilityDelta:       -0.05,
		InterventionWindowDays: 14,
	}

	tests := []struct {
		name string
		in   GateInput
		want bool
	}{
		{"no condition holds", calm, false},
		{
			"very high risk alone",
			GateInput{RiskLevel: domain.RiskVeryHigh, InterventionWindowDays: 14},
			true,
		},
		{
			"escalation alone",
			GateInput{RiskLevel: domain.RiskLow, Escalated: true, InterventionWindowDays: 14},
			true,
		},
		{
			"sharp probability drop alone",
			GateInput{RiskLevel: domain.RiskLow, ProbabilityDelta: -0.15, InterventionWindowDays: 14},
			true,
		},
		{
			"drop just under threshold",
			GateInput{RiskLevel: domain.RiskLow, ProbabilityDelta: -0.14, InterventionWindowDays: 14},
			false,
		},
		{
			"urgent trigger alone",
			GateInput{
				RiskLevel:              domain.RiskLow,
				Triggers:               []domain.Trigger{domain.TriggerHealthConcern},
				InterventionWindowDays: 14,
			},
			true,
		},
		{
			"non-urgent trigger does not gate",
			GateInput{
				RiskLevel:              domain.RiskLow,
				Triggers:               []domain.Trigger{domain.TriggerPlateau},
				InterventionWindowDays: 14,
			},
			false,
		},
		{
			"closing window at high risk",
			GateInput{RiskLevel: domain.RiskHigh, InterventionWindowDays: 3},
			true,
		},
		{
			"closing window at moderate risk",
			GateInput{RiskLevel: domain.RiskModerate, InterventionWindowDays: 2},
			true,
		},
		{
			"closing window at low risk does not gate",
			GateInput{RiskLevel: domain.RiskLow, InterventionWindowDays: 1},
			false,
		},
		{
			"explicit help request alone",
			GateInput{RiskLevel: domain.RiskVeryLow, InterventionWindowDays: 30, HelpRequested: true},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsIntervention(tt.in); got != tt.want {
				t.Errorf("NeedsIntervention() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNeedsIntervention_UrgentTriggers(t *testing.T) {
	urgent := []domain.Trigger{
		domain.TriggerHealthConcern,
		domain.TriggerLifeEvent,
		domain.TriggerMotivationDrop,
	}
	for _, tag := range urgent {
		in := GateInput{
			RiskLevel:              domain.RiskVeryLow,
			Triggers:               []domain.Trigger{tag},
			InterventionWindowDays: 30,
		}
		if !NeedsIntervention(in) {
			t.Errorf("trigger %v should gate on its own", tag)
		}
	}
}
