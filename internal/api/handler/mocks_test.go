package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/internal/repository"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone, Program: req.Program}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockAdherenceService is a mock implementation of AdherenceService
type MockAdherenceService struct {
	submitSnapshotFunc  func(ctx context.Context, userID uuid.UUID, req *domain.SnapshotRequest) (*domain.MetricsSnapshot, error)
	predictFunc         func(ctx context.Context, userID uuid.UUID, req *domain.PredictRequest) (*domain.Prediction, error)
	monitorFunc         func(ctx context.Context, userID uuid.UUID, req *domain.MonitorRequest) (*domain.MonitorResult, error)
	cachedFunc          func(ctx context.Context, userID uuid.UUID) (*domain.Prediction, error)
	monitoringStateFunc func(ctx context.Context, userID uuid.UUID) (*domain.MonitoringState, error)
	historyFunc         func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HistoryEntry, error)
	listDispatchesFunc  func(ctx context.Context, userID uuid.UUID, filter repository.DispatchFilter) ([]domain.DispatchRecord, error)
}

func (m *MockAdherenceService) SubmitSnapshot(ctx context.Context, userID uuid.UUID, req *domain.SnapshotRequest) (*domain.MetricsSnapshot, error) {
	if m.submitSnapshotFunc != nil {
		return m.submitSnapshotFunc(ctx, userID, req)
	}
	return req.ToSnapshot(userID), nil
}

func (m *MockAdherenceService) Predict(ctx context.Context, userID uuid.UUID, req *domain.PredictRequest) (*domain.Prediction, error) {
	if m.predictFunc != nil {
		return m.predictFunc(ctx, userID, req)
	}
	return &domain.Prediction{UserID: userID, Probability: 0.7, RiskLevel: domain.RiskLow}, nil
}

func (m *MockAdherenceService) Monitor(ctx context.Context, userID uuid.UUID, req *domain.MonitorRequest) (*domain.MonitorResult, error) {
	if m.monitorFunc != nil {
		return m.monitorFunc(ctx, userID, req)
	}
	return &domain.MonitorResult{
		Prediction: domain.Prediction{UserID: userID, Probability: 0.7, RiskLevel: domain.RiskLow},
		RiskChange: domain.RiskChangeUnknown,
	}, nil
}

func (m *MockAdherenceService) CachedPrediction(ctx context.Context, userID uuid.UUID) (*domain.Prediction, error) {
	if m.cachedFunc != nil {
		return m.cachedFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockAdherenceService) MonitoringState(ctx context.Context, userID uuid.UUID) (*domain.MonitoringState, error) {
	if m.monitoringStateFunc != nil {
		return m.monitoringStateFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAdherenceService) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HistoryEntry, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *MockAdherenceService) ListDispatches(ctx context.Context, userID uuid.UUID, filter repository.DispatchFilter) ([]domain.DispatchRecord, error) {
	if m.listDispatchesFunc != nil {
		return m.listDispatchesFunc(ctx, userID, filter)
	}
	return nil, nil
}
