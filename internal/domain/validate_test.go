package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func validSnapshot() *MetricsSnapshot {
	return &MetricsSnapshot{
		UserID:                   uuid.New(),
		DailyUsageMinutes:        22,
		WeeklyActiveDays:         5,
		InteractionFrequency:     2,
		ResponseLatencyHours:     4,
		ConsistencyScore:         0.7,
		GoalCompletionRate:       0.6,
		SelfReportingFrequency:   3,
		ModificationRequests:     1,
		SatisfactionScore:        7,
		MilestoneAchievementRate: 0.5,
		PlateauDurationDays:      4,
		ExpectationRealityGap:    0.2,
		SupportStrength:          0.6,
		EnvironmentalChallenges:  3,
		CompetingPriorities:      4,
		PreviousCompletionRate:   0.5,
		LongestStreakDays:        21,
	}
}

func TestValidateSnapshot_Valid(t *testing.T) {
	if err := ValidateSnapshot(validSnapshot()); err != nil {
		t.Errorf("ValidateSnapshot() = %v, want nil", err)
	}
}

func TestValidateSnapshot_Nil(t *testing.T) {
	err := ValidateSnapshot(nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidateSnapshot(nil) = %v, want *ValidationError", err)
	}
}

func TestValidateSnapshot_OutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(m *MetricsSnapshot)
		wantField string
	}{
		{"usage above a day", func(m *MetricsSnapshot) { m.DailyUsageMinutes = 2000 }, "daily_usage_minutes"},
		{"eight active days", func(m *MetricsSnapshot) { m.WeeklyActiveDays = 8 }, "weekly_active_days"},
		{"negative latency", func(m *MetricsSnapshot) { m.ResponseLatencyHours = -1 }, "response_latency_hours"},
		{"consistency above one", func(m *MetricsSnapshot) { m.ConsistencyScore = 1.5 }, "consistency_score"},
		{"satisfaction zero", func(m *MetricsSnapshot) { m.SatisfactionScore = 0 }, "satisfaction_score"},
		{"satisfaction eleven", func(m *MetricsSnapshot) { m.SatisfactionScore = 11 }, "satisfaction_score"},
		{"gap below minus one", func(m *MetricsSnapshot) { m.ExpectationRealityGap = -1.5 }, "expectation_reality_gap"},
		{"challenges above ten", func(m *MetricsSnapshot) { m.EnvironmentalChallenges = 12 }, "environmental_challenges"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validSnapshot()
			tt.mutate(m)

			err := ValidateSnapshot(m)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateSnapshot() = %v, want *ValidationError", err)
			}

			found := false
			for _, v := range verr.Violations {
				if v.Field == tt.wantField {
					found = true
					if v.Message == "" {
						t.Error("violation missing message")
					}
				}
			}
			if !found {
				t.Errorf("violations %v missing field %q", verr.Violations, tt.wantField)
			}
		})
	}
}

func TestValidateSnapshot_CollectsAllViolations(t *testing.T) {
	m := validSnapshot()
	m.SatisfactionScore = 0
	m.ConsistencyScore = 2
	m.WeeklyActiveDays = 9

	err := ValidateSnapshot(m)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidateSnapshot() = %v, want *ValidationError", err)
	}
	if len(verr.Violations) < 3 {
		t.Errorf("got %d violations, want all 3 reported", len(verr.Violations))
	}
}
