package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/domain"
	"gorm.io/gorm"
)

type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *domain.MetricsSnapshot) error
	// GetLatest returns the newest snapshot for a user, or domain.ErrNoSnapshot
	// when the telemetry supplier has not submitted one yet.
	GetLatest(ctx context.Context, userID uuid.UUID) (*domain.MetricsSnapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(ctx context.Context, snapshot *domain.MetricsSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *snapshotRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.MetricsSnapshot, error) {
	var snapshot domain.MetricsSnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&snapshot).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNoSnapshot
		}
		return nil, err
	}
	return &snapshot, nil
}
