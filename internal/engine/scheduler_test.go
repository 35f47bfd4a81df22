package engine

import (
	"testing"
	"time"

	"github.com/habitloop/adherence-engine/internal/domain"
)

func TestMonitoringPlanFor(t *testing.T) {
	tests := []struct {
		level    domain.RiskLevel
		wantFreq domain.MonitoringFrequency
		wantDays int
	}{
		{domain.RiskVeryHigh, domain.MonitorDaily, 1},
		{domain.RiskHigh, domain.MonitorEvery2Days, 2},
		{domain.RiskModerate, domain.MonitorWeekly, 7},
		{domain.RiskLow, domain.MonitorBiWeekly, 14},
		{domain.RiskVeryLow, domain.MonitorMonthly, 30},
	}

	for _, tt := range tests {
		plan := MonitoringPlanFor(tt.level)
		if plan.Frequency != tt.wantFreq {
			t.Errorf("MonitoringPlanFor(%v) freq = %v, want %v", tt.level, plan.Frequency, tt.wantFreq)
		}
		if plan.Interval != time.Duration(tt.wantDays)*24*time.Hour {
			t.Errorf("MonitoringPlanFor(%v) interval = %v, want %d days", tt.level, plan.Interval, tt.wantDays)
		}
	}
}

func TestMonitoringPlanFor_FrequencyIncreasesWithSeverity(t *testing.T) {
	levels := []domain.RiskLevel{
		domain.RiskVeryLow, domain.RiskLow, domain.RiskModerate, domain.RiskHigh, domain.RiskVeryHigh,
	}
	prev := time.Duration(1<<62 - 1)
	for _, level := range levels {
		interval := MonitoringPlanFor(level).Interval
		if interval >= prev {
			t.Errorf("interval for %v (%v) not shorter than previous (%v)", level, interval, prev)
		}
		prev = interval
	}
}

func TestEstimateDropoutDays(t *testing.T) {
	m := strugglingSnapshot()

	// Below moderate risk there is no projection at all.
	for _, level := range []domain.RiskLevel{domain.RiskVeryLow, domain.RiskLow} {
		if got := EstimateDropoutDays(0.7, level, m); got != nil {
			t.Errorf("EstimateDropoutDays(%v) = %v, want nil", level, *got)
		}
	}

	// Base projection: 10 + p*50.
	got := EstimateDropoutDays(0.3, domain.RiskHigh, m)
	if got == nil || *got != 25 {
		t.Fatalf("EstimateDropoutDays(0.3, high) = %v, want 25", got)
	}

	// A known dropout history is blended in.
	history := 15.0
	m.AvgDropoutDays = &history
	got = EstimateDropoutDays(0.3, domain.RiskHigh, m)
	if got == nil || *got != 20 {
		t.Fatalf("EstimateDropoutDays with history = %v, want 20", got)
	}

	// Worst case: zero probability and instant historical dropout.
	nearZero := 0.0
	m.AvgDropoutDays = &nearZero
	got = EstimateDropoutDays(0.0, domain.RiskVeryHigh, m)
	if got == nil || *got != 5 {
		t.Fatalf("EstimateDropoutDays(0, very_high) = %v, want 5", got)
	}
}

func TestInterventionWindowDays(t *testing.T) {
	// With a projection the window tracks it at one fifth.
	est := 25
	if got := InterventionWindowDays(domain.RiskHigh, &est); got != 5 {
		t.Errorf("InterventionWindowDays(25) = %v, want 5", got)
	}

	tiny := 3
	if got := InterventionWindowDays(domain.RiskVeryHigh, &tiny); got != 1 {
		t.Errorf("InterventionWindowDays(3) = %v, want floor of 1", got)
	}

	// Without a projection, per-level defaults apply.
	defaults := []struct {
		level domain.RiskLevel
		want  int
	}{
		{domain.RiskVeryHigh, 2},
		{domain.RiskHigh, 3},
		{domain.RiskModerate, 7},
		{domain.RiskLow, 14},
		{domain.RiskVeryLow, 30},
	}
	for _, tt := range defaults {
		if got := InterventionWindowDays(tt.level, nil); got != tt.want {
			t.Errorf("InterventionWindowDays(%v, nil) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
