package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/dispatch"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uuid.UUID, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockSnapshotRepository is a mock implementation of SnapshotRepository
type MockSnapshotRepository struct {
	snapshots map[uuid.UUID][]*domain.MetricsSnapshot
	err       error
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		snapshots: make(map[uuid.UUID][]*domain.MetricsSnapshot),
	}
}

func (m *MockSnapshotRepository) Create(ctx context.Context, snapshot *domain.MetricsSnapshot) error {
	if m.err != nil {
		return m.err
	}
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	snapshot.CreatedAt = time.Now()
	m.snapshots[snapshot.UserID] = append(m.snapshots[snapshot.UserID], snapshot)
	return nil
}

func (m *MockSnapshotRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.MetricsSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	list := m.snapshots[userID]
	if len(list) == 0 {
		return nil, domain.ErrNoSnapshot
	}
	return list[len(list)-1], nil
}

func (m *MockSnapshotRepository) Count(userID uuid.UUID) int {
	return len(m.snapshots[userID])
}

// MockDispatchRepository is a mock implementation of DispatchRepository
type MockDispatchRepository struct {
	records []domain.DispatchRecord
	err     error
}

func NewMockDispatchRepository() *MockDispatchRepository {
	return &MockDispatchRepository{}
}

func (m *MockDispatchRepository) Create(ctx context.Context, record *domain.DispatchRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	m.records = append(m.records, *record)
	return nil
}

func (m *MockDispatchRepository) List(ctx context.Context, userID uuid.UUID, filter repository.DispatchFilter) ([]domain.DispatchRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DispatchRecord
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

// nopDispatcher accepts every dispatch request.
type nopDispatcher struct {
	requests []dispatch.Request
}

func (d *nopDispatcher) Dispatch(ctx context.Context, req dispatch.Request) error {
	d.requests = append(d.requests, req)
	return nil
}
