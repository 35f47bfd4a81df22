package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/dispatch"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/internal/repository"
)

// healthySnapshot returns metrics for a thriving user: in-band usage, strong
// consistency, high satisfaction.
func healthySnapshot() *domain.MetricsSnapshot {
	avgDropout := 55.0
	return &domain.MetricsSnapshot{
		UserID:                   uuid.New(),
		DailyUsageMinutes:        30,
		WeeklyActiveDays:         6,
		InteractionFrequency:     2,
		ResponseLatencyHours:     2,
		ConsistencyScore:         0.85,
		GoalCompletionRate:       0.8,
		SelfReportingFrequency:   4,
		ModificationRequests:     0,
		SatisfactionScore:        8,
		MilestoneAchievementRate: 0.8,
		PlateauDurationDays:      0,
		ExpectationRealityGap:    -0.1,
		SupportStrength:          0.8,
		EnvironmentalChallenges:  2,
		CompetingPriorities:      3,
		PreviousCompletionRate:   0.8,
		LongestStreakDays:        45,
		AvgDropoutDays:           &avgDropout,
	}
}

// strugglingSnapshot returns metrics for a user sliding toward dropout: low
// usage, poor consistency, long plateau, weak support.
func strugglingSnapshot() *domain.MetricsSnapshot {
	return &domain.MetricsSnapshot{
		UserID:                   uuid.New(),
		DailyUsageMinutes:        5,
		WeeklyActiveDays:         2,
		InteractionFrequency:     0.5,
		ResponseLatencyHours:     48,
		ConsistencyScore:         0.3,
		GoalCompletionRate:       0.4,
		SelfReportingFrequency:   1,
		ModificationRequests:     1,
		SatisfactionScore:        3,
		MilestoneAchievementRate: 0.2,
		PlateauDurationDays:      20,
		ExpectationRealityGap:    0.6,
		SupportStrength:          0.2,
		EnvironmentalChallenges:  8,
		CompetingPriorities:      9,
		PreviousCompletionRate:   0.3,
		LongestStreakDays:        10,
	}
}

// stubAdvisory is a canned advisory client.
type stubAdvisory struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (s *stubAdvisory) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// captureDispatcher records every dispatch request.
type captureDispatcher struct {
	mu       sync.Mutex
	requests []dispatch.Request
	err      error
}

func (d *captureDispatcher) Dispatch(ctx context.Context, req dispatch.Request) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.requests = append(d.requests, req)
	return nil
}

func (d *captureDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.requests)
}

// MockDispatchRepository is an in-memory dispatch audit repository.
type MockDispatchRepository struct {
	mu      sync.Mutex
	records []domain.DispatchRecord
	err     error
}

func NewMockDispatchRepository() *MockDispatchRepository {
	return &MockDispatchRepository{}
}

func (m *MockDispatchRepository) Create(ctx context.Context, record *domain.DispatchRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *MockDispatchRepository) List(ctx context.Context, userID uuid.UUID, filter repository.DispatchFilter) ([]domain.DispatchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.DispatchRecord
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
