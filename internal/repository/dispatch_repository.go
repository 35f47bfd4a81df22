package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/pkg/pagination"
	"gorm.io/gorm"
)

// DispatchFilter contains filter parameters for listing dispatch records.
type DispatchFilter struct {
	Limit  int
	Cursor string
}

type DispatchRepository interface {
	Create(ctx context.Context, record *domain.DispatchRecord) error
	// List returns dispatch records newest first with cursor pagination.
	List(ctx context.Context, userID uuid.UUID, filter DispatchFilter) ([]domain.DispatchRecord, error)
}

type dispatchRepository struct {
	db *gorm.DB
}

func NewDispatchRepository(db *gorm.DB) DispatchRepository {
	return &dispatchRepository{db: db}
}

func (r *dispatchRepository) Create(ctx context.Context, record *domain.DispatchRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *dispatchRepository) List(ctx context.Context, userID uuid.UUID, filter DispatchFilter) ([]domain.DispatchRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.DispatchRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
