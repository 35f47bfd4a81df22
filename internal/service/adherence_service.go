package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/internal/engine"
	"github.com/habitloop/adherence-engine/internal/repository"
)

// AdherenceService fronts the risk engine for the HTTP surface and the
// monitoring worker: it resolves users and telemetry snapshots, then delegates
// the pipeline to the engine.
type AdherenceService interface {
	SubmitSnapshot(ctx context.Context, userID uuid.UUID, req *domain.SnapshotRequest) (*domain.MetricsSnapshot, error)
	Predict(ctx context.Context, userID uuid.UUID, req *domain.PredictRequest) (*domain.Prediction, error)
	Monitor(ctx context.Context, userID uuid.UUID, req *domain.MonitorRequest) (*domain.MonitorResult, error)
	CachedPrediction(ctx context.Context, userID uuid.UUID) (*domain.Prediction, error)
	MonitoringState(ctx context.Context, userID uuid.UUID) (*domain.MonitoringState, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HistoryEntry, error)
	ListDispatches(ctx context.Context, userID uuid.UUID, filter repository.DispatchFilter) ([]domain.DispatchRecord, error)
}

type adherenceService struct {
	engine     *engine.Engine
	users      repository.UserRepository
	snapshots  repository.SnapshotRepository
	dispatches repository.DispatchRepository
}

func NewAdherenceService(
	eng *engine.Engine,
	users repository.UserRepository,
	snapshots repository.SnapshotRepository,
	dispatches repository.DispatchRepository,
) AdherenceService {
	return &adherenceService{
		engine:     eng,
		users:      users,
		snapshots:  snapshots,
		dispatches: dispatches,
	}
}

func (s *adherenceService) SubmitSnapshot(ctx context.Context, userID uuid.UUID, req *domain.SnapshotRequest) (*domain.MetricsSnapshot, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	snapshot := req.ToSnapshot(userID)
	if err := domain.ValidateSnapshot(snapshot); err != nil {
		return nil, err
	}
	if err := s.snapshots.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *adherenceService) Predict(ctx context.Context, userID uuid.UUID, req *domain.PredictRequest) (*domain.Prediction, error) {
	in, err := s.resolveInput(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return s.engine.Predict(ctx, *in)
}

func (s *adherenceService) Monitor(ctx context.Context, userID uuid.UUID, req *domain.MonitorRequest) (*domain.MonitorResult, error) {
	if req == nil {
		req = &domain.MonitorRequest{}
	}
	in, err := s.resolveInput(ctx, userID, &req.PredictRequest)
	if err != nil {
		return nil, err
	}
	return s.engine.Monitor(ctx, engine.MonitorInput{
		PredictInput:  *in,
		HelpRequested: req.UserRequestedHelp,
	})
}

func (s *adherenceService) CachedPrediction(ctx context.Context, userID uuid.UUID) (*domain.Prediction, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	prediction, err := s.engine.GetCachedPrediction(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prediction == nil {
		return nil, domain.ErrNotFound
	}
	return prediction, nil
}

// MonitoringState returns the per-user scheduling state, or nil when the user
// has never been monitored. The worker treats nil as immediately due.
func (s *adherenceService) MonitoringState(ctx context.Context, userID uuid.UUID) (*domain.MonitoringState, error) {
	return s.engine.GetMonitoringState(ctx, userID)
}

func (s *adherenceService) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HistoryEntry, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.engine.History(ctx, userID, limit)
}

func (s *adherenceService) ListDispatches(ctx context.Context, userID uuid.UUID, filter repository.DispatchFilter) ([]domain.DispatchRecord, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.dispatches.List(ctx, userID, filter)
}

// resolveInput builds the engine input: fresh metrics from the request when
// present (persisted as a telemetry snapshot), otherwise the latest stored
// snapshot.
func (s *adherenceService) resolveInput(ctx context.Context, userID uuid.UUID, req *domain.PredictRequest) (*engine.PredictInput, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if req == nil {
		req = &domain.PredictRequest{}
	}

	var snapshot *domain.MetricsSnapshot
	if req.Metrics != nil {
		snapshot = req.Metrics.ToSnapshot(userID)
		if err := domain.ValidateSnapshot(snapshot); err != nil {
			return nil, err
		}
		if err := s.snapshots.Create(ctx, snapshot); err != nil {
			return nil, fmt.Errorf("store snapshot: %w", err)
		}
	} else {
		var err error
		snapshot, err = s.snapshots.GetLatest(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	return &engine.PredictInput{
		UserID:      userID,
		Snapshot:    snapshot,
		Historical:  req.Historical,
		Situational: req.Situational,
	}, nil
}

func (s *adherenceService) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}
