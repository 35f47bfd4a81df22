package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/domain"
	"gorm.io/gorm"
)

const seededWeeks = 6

// Run seeds the database with sample users and telemetry snapshots covering
// the full risk range. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.MetricsSnapshot{}, &domain.DispatchRecord{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam", Program: "strength-12w"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York", Program: "habit-reset"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", Program: "sleep-hygiene"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney", Program: "mindfulness-8w"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	// Fixed seed keeps repeated runs comparable.
	rng := rand.New(rand.NewSource(42))
	profiles := []profile{thrivingProfile, steadyProfile, waveringProfile, strugglingProfile}
	for i, user := range users {
		if err := seedSnapshotsForUser(db, user, profiles[i%len(profiles)], rng); err != nil {
			return err
		}
	}

	slog.Info("Seed completed")
	return nil
}

// profile generates one weekly snapshot; week 0 is the most recent.
type profile func(user domain.User, week int, rng *rand.Rand) domain.MetricsSnapshot

func seedSnapshotsForUser(db *gorm.DB, user domain.User, build profile, rng *rand.Rand) error {
	now := time.Now().UTC()
	for week := 0; week < seededWeeks; week++ {
		snapshot := build(user, week, rng)
		snapshot.ID = uuid.New()
		snapshot.CreatedAt = now.AddDate(0, 0, -7*week)

		err := db.Where("user_id = ? AND created_at = ?", user.ID, snapshot.CreatedAt).
			FirstOrCreate(&snapshot).Error
		if err != nil {
			return fmt.Errorf("failed to create snapshot for %s: %w", user.ID, err)
		}
	}
	return nil
}

func thrivingProfile(user domain.User, week int, rng *rand.Rand) domain.MetricsSnapshot {
	return domain.MetricsSnapshot{
		UserID:                   user.ID,
		DailyUsageMinutes:        25 + rng.Float64()*15,
		WeeklyActiveDays:         6,
		InteractionFrequency:     2 + rng.Float64(),
		ResponseLatencyHours:     1 + rng.Float64()*3,
		ConsistencyScore:         0.8 + rng.Float64()*0.15,
		GoalCompletionRate:       0.75 + rng.Float64()*0.2,
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
	}
}

func steadyProfile(user domain.User, week int, rng *rand.Rand) domain.MetricsSnapshot {
	return domain.MetricsSnapshot{
		UserID:                   user.ID,
		DailyUsageMinutes:        18 + rng.Float64()*10,
		WeeklyActiveDays:         5,
		InteractionFrequency:     1.5 + rng.Float64(),
		ResponseLatencyHours:     4 + rng.Float64()*6,
		ConsistencyScore:         0.6 + rng.Float64()*0.15,
		GoalCompletionRate:       0.6,
		SelfReportingFrequency:   3,
		ModificationRequests:     1,
		SatisfactionScore:        7,
		MilestoneAchievementRate: 0.55,
		PlateauDurationDays:      3,
		ExpectationRealityGap:    0.1,
		SupportStrength:          0.6,
		EnvironmentalChallenges:  4,
		CompetingPriorities:      5,
		PreviousCompletionRate:   0.5,
		LongestStreakDays:        25,
	}
}

func waveringProfile(user domain.User, week int, rng *rand.Rand) domain.MetricsSnapshot {
	// Metrics degrade toward the present as weeks approach 0.
	decay := float64(seededWeeks-week) / float64(seededWeeks)
	return domain.MetricsSnapshot{
		UserID:                   user.ID,
		DailyUsageMinutes:        20 - decay*10,
		WeeklyActiveDays:         5 - int(decay*2),
		InteractionFrequency:     1.8 - decay,
		ResponseLatencyHours:     6 + decay*18,
		ConsistencyScore:         0.65 - decay*0.25,
		GoalCompletionRate:       0.6 - decay*0.2,
		SelfReportingFrequency:   3 - decay*2,
		ModificationRequests:     int(decay * 3),
		SatisfactionScore:        7 - decay*2,
		MilestoneAchievementRate: 0.5 - decay*0.2,
		PlateauDurationDays:      int(decay * 12),
		ExpectationRealityGap:    decay * 0.4,
		SupportStrength:          0.5,
		EnvironmentalChallenges:  5,
		CompetingPriorities:      6,
		PreviousCompletionRate:   0.4,
		LongestStreakDays:        18,
	}
}

func strugglingProfile(user domain.User, week int, rng *rand.Rand) domain.MetricsSnapshot {
	avgDropout := 30.0
	return domain.MetricsSnapshot{
		UserID:                   user.ID,
		DailyUsageMinutes:        4 + rng.Float64()*4,
		WeeklyActiveDays:         2,
		InteractionFrequency:     0.4,
		ResponseLatencyHours:     36 + rng.Float64()*24,
		ConsistencyScore:         0.25,
		GoalCompletionRate:       0.3,
		SelfReportingFrequency:   0.5,
		ModificationRequests:     4,
		SatisfactionScore:        3,
		MilestoneAchievementRate: 0.15,
		PlateauDurationDays:      21,
		ExpectationRealityGap:    0.6,
		SupportStrength:          0.2,
		EnvironmentalChallenges:  8,
		CompetingPriorities:      8,
		PreviousCompletionRate:   0.25,
		LongestStreakDays:        8,
		AvgDropoutDays:           &avgDropout,
	}
}
