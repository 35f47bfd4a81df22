package domain

import (
	"time"

	"github.com/google/uuid"
)

// MetricsSnapshot is the immutable per-cycle telemetry record for one user.
// It is constructed by the external telemetry supplier and never mutated; each
// evaluation cycle reads exactly one snapshot.
type MetricsSnapshot struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_snapshots_user_created" json:"user_id"`

	// Engagement
	DailyUsageMinutes    float64 `gorm:"not null" json:"daily_usage_minutes" validate:"min=0,max=1440"`
	WeeklyActiveDays     int     `gorm:"not null" json:"weekly_active_days" validate:"min=0,max=7"`
	InteractionFrequency float64 `gorm:"not null" json:"interaction_frequency" validate:"min=0"`
	ResponseLatencyHours float64 `gorm:"not null" json:"response_latency_hours" validate:"min=0"`

	// Behavioral
	ConsistencyScore       float64 `gorm:"not null" json:"consistency_score" validate:"min=0,max=1"`
	GoalCompletionRate     float64 `gorm:"not null" json:"goal_completion_rate" validate:"min=0,max=1"`
	SelfReportingFrequency float64 `gorm:"not null" json:"self_reporting_frequency" validate:"min=0"`
	ModificationRequests   int     `gorm:"not null" json:"modification_requests" validate:"min=0"`

	// Progress
	SatisfactionScore        float64 `gorm:"not null" json:"satisfaction_score" validate:"min=1,max=10"`
	MilestoneAchievementRate float64 `gorm:"not null" json:"milestone_achievement_rate" validate:"min=0,max=1"`
	PlateauDurationDays      int     `gorm:"not null" json:"plateau_duration_days" validate:"min=0"`
	ExpectationRealityGap    float64 `gorm:"not null" json:"expectation_reality_gap" validate:"min=-1,max=1"`

	// Social / environmental
	SupportStrength         float64 `gorm:"not null" json:"support_strength" validate:"min=0,max=1"`
	EnvironmentalChallenges float64 `gorm:"not null" json:"environmental_challenges" validate:"min=0,max=10"`
	CompetingPriorities     float64 `gorm:"not null" json:"competing_priorities" validate:"min=0,max=10"`

	// Historical
	PreviousCompletionRate float64  `gorm:"not null" json:"previous_completion_rate" validate:"min=0,max=1"`
	LongestStreakDays      int      `gorm:"not null" json:"longest_streak_days" validate:"min=0"`
	AvgDropoutDays         *float64 `json:"avg_dropout_days,omitempty" validate:"omitempty,min=0"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_snapshots_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MetricsSnapshot) TableName() string {
	return "metrics_snapshots"
}

// SnapshotRequest is the request body for submitting a telemetry snapshot.
// Required fields are pointers so that absent and zero are distinguishable.
// @Description Telemetry snapshot payload for one evaluation cycle.
type SnapshotRequest struct {
	// Average daily app usage in minutes
	DailyUsageMinutes *float64 `json:"daily_usage_minutes" validate:"required,min=0,max=1440" example:"22.5"`
	// Days active in the last week (0-7)
	WeeklyActiveDays *int `json:"weekly_active_days" validate:"required,min=0,max=7" example:"5"`
	// Average interactions per day
	InteractionFrequency *float64 `json:"interaction_frequency" validate:"required,min=0" example:"2.1"`
	// Average hours before responding to prompts
	ResponseLatencyHours *float64 `json:"response_latency_hours" validate:"required,min=0" example:"4"`
	// Usage consistency score (0-1)
	ConsistencyScore *float64 `json:"consistency_score" validate:"required,min=0,max=1" example:"0.7"`
	// Goal completion rate (0-1)
	GoalCompletionRate *float64 `json:"goal_completion_rate" validate:"required,min=0,max=1" example:"0.6"`
	// Self-reports per week
	SelfReportingFrequency *float64 `json:"self_reporting_frequency" validate:"required,min=0" example:"3"`
	// Plan modification requests this cycle
	ModificationRequests *int `json:"modification_requests" validate:"required,min=0" example:"1"`
	// Self-reported satisfaction (1-10)
	SatisfactionScore *float64 `json:"satisfaction_score" validate:"required,min=1,max=10" example:"7"`
	// Milestone achievement rate (0-1)
	MilestoneAchievementRate *float64 `json:"milestone_achievement_rate" validate:"required,min=0,max=1" example:"0.5"`
	// Days without measurable progress
	PlateauDurationDays *int `json:"plateau_duration_days" validate:"required,min=0" example:"4"`
	// Expectation vs reality gap (-1..1, positive means reality lags)
	ExpectationRealityGap *float64 `json:"expectation_reality_gap" validate:"required,min=-1,max=1" example:"0.2"`
	// Support system strength (0-1)
	SupportStrength *float64 `json:"support_strength" validate:"required,min=0,max=1" example:"0.6"`
	// Environmental challenge level (0-10)
	EnvironmentalChallenges *float64 `json:"environmental_challenges" validate:"required,min=0,max=10" example:"3"`
	// Competing priority level (0-10)
	CompetingPriorities *float64 `json:"competing_priorities" validate:"required,min=0,max=10" example:"4"`
	// Completion rate across previous programs (0-1)
	PreviousCompletionRate *float64 `json:"previous_completion_rate" validate:"required,min=0,max=1" example:"0.5"`
	// Longest adherence streak in days
	LongestStreakDays *int `json:"longest_streak_days" validate:"required,min=0" example:"21"`
	// Average days until dropout in previous programs (optional)
	AvgDropoutDays *float64 `json:"avg_dropout_days,omitempty" validate:"omitempty,min=0" example:"45"`
}

// ToSnapshot converts the request into a snapshot for the given user.
func (r *SnapshotRequest) ToSnapshot(userID uuid.UUID) *MetricsSnapshot {
	return &MetricsSnapshot{
		UserID:                   userID,
		DailyUsageMinutes:        *r.DailyUsageMinutes,
		WeeklyActiveDays:         *r.WeeklyActiveDays,
		InteractionFrequency:     *r.InteractionFrequency,
		ResponseLatencyHours:     *r.ResponseLatencyHours,
		ConsistencyScore:         *r.ConsistencyScore,
		GoalCompletionRate:       *r.GoalCompletionRate,
		SelfReportingFrequency:   *r.SelfReportingFrequency,
		ModificationRequests:     *r.ModificationRequests,
		SatisfactionScore:        *r.SatisfactionScore,
		MilestoneAchievementRate: *r.MilestoneAchievementRate,
		PlateauDurationDays:      *r.PlateauDurationDays,
		ExpectationRealityGap:    *r.ExpectationRealityGap,
		SupportStrength:          *r.SupportStrength,
		EnvironmentalChallenges:  *r.EnvironmentalChallenges,
		CompetingPriorities:      *r.CompetingPriorities,
		PreviousCompletionRate:   *r.PreviousCompletionRate,
		LongestStreakDays:        *r.LongestStreakDays,
		AvgDropoutDays:           r.AvgDropoutDays,
	}
}

// HistoricalContext carries optional program-history data for the adjuster.
// @Description Optional historical context for probability adjustment.
type HistoricalContext struct {
	// Number of previous behavior-change programs
	PriorPrograms int `json:"prior_programs" validate:"min=0" example:"3"`
	// How many of those were completed
	CompletedPrograms int `json:"completed_programs" validate:"min=0" example:"1"`
	// Whether the user recently lapsed and restarted
	RecentRelapse bool `json:"recent_relapse" example:"false"`
}

// SituationalContext carries optional current-situation data for the adjuster
// and the advisory trigger augmentation.
// @Description Optional situational context for probability adjustment.
type SituationalContext struct {
	// Free-text description of the user's current situation
	Description string `json:"description,omitempty" validate:"omitempty,max=2000" example:"travelling for work this month"`
	// Whether a major life event was reported this cycle
	RecentLifeEvent bool `json:"recent_life_event" example:"false"`
	// Whether the user's routine is currently disrupted
	ScheduleDisruption bool `json:"schedule_disruption" example:"true"`
}
