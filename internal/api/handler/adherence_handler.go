package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/habitloop/adherence-engine/internal/api/validation"
	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/habitloop/adherence-engine/internal/repository"
	"github.com/habitloop/adherence-engine/internal/service"
	"github.com/habitloop/adherence-engine/pkg/pagination"
	"github.com/habitloop/adherence-engine/pkg/problem"
)

type AdherenceHandler struct {
	service service.AdherenceService
}

func NewAdherenceHandler(service service.AdherenceService) *AdherenceHandler {
	return &AdherenceHandler{service: service}
}

// SubmitTelemetry handles POST /v1/users/{userId}/telemetry
// @Summary Submit a telemetry metrics snapshot
// @Description Store a point-in-time engagement metrics snapshot for a user
// @Tags adherence
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.SnapshotRequest true "Metrics snapshot"
// @Success 201 {object} domain.MetricsSnapshot
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /users/{userId}/telemetry [post]
func (h *AdherenceHandler) SubmitTelemetry(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.SnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	snapshot, err := h.service.SubmitSnapshot(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "Failed to store telemetry snapshot")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(snapshot)
}

// Predict handles POST /v1/users/{userId}/adherence/predict
// @Summary Run an on-demand adherence evaluation
// @Description Score the user's disengagement risk and cache the prediction
// @Tags adherence
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.PredictRequest false "Evaluation request"
// @Success 200 {object} domain.Prediction
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /users/{userId}/adherence/predict [post]
func (h *AdherenceHandler) Predict(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	req, ok := decodeOptionalBody[domain.PredictRequest](w, r)
	if !ok {
		return
	}

	prediction, err := h.service.Predict(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err, "Failed to evaluate adherence")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prediction)
}

// Monitor handles POST /v1/users/{userId}/adherence/monitor
// @Summary Run a monitor cycle
// @Description Re-evaluate, detect escalation, and dispatch interventions if warranted
// @Tags adherence
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.MonitorRequest false "Monitor request"
// @Success 200 {object} domain.MonitorResult
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /users/{userId}/adherence/monitor [post]
func (h *AdherenceHandler) Monitor(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	req, ok := decodeOptionalBody[domain.MonitorRequest](w, r)
	if !ok {
		return
	}

	result, err := h.service.Monitor(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err, "Failed to run monitor cycle")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetPrediction handles GET /v1/users/{userId}/adherence/prediction
// @Summary Get the latest cached prediction
// @Tags adherence
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.Prediction
// @Failure 404 {object} problem.Problem
// @Router /users/{userId}/adherence/prediction [get]
func (h *AdherenceHandler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	prediction, err := h.service.CachedPrediction(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No prediction available for user").Write(w)
			return
		}
		problem.InternalError("Failed to get prediction").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prediction)
}

// History handles GET /v1/users/{userId}/adherence/history
// @Summary Get recent prediction history
// @Tags adherence
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} domain.HistoryEntry
// @Failure 404 {object} problem.Problem
// @Router /users/{userId}/adherence/history [get]
func (h *AdherenceHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, err, "Failed to get prediction history")
		return
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// InterventionListResponse is a cursor-paginated page of dispatch records.
type InterventionListResponse struct {
	Data       []domain.DispatchRecord `json:"data"`
	NextCursor string                  `json:"next_cursor,omitempty"`
}

// ListInterventions handles GET /v1/users/{userId}/interventions
// @Summary List intervention dispatch attempts
// @Description Cursor-paginated dispatch audit trail, newest first
// @Tags adherence
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param limit query int false "Page size"
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} InterventionListResponse
// @Failure 404 {object} problem.Problem
// @Router /users/{userId}/interventions [get]
func (h *AdherenceHandler) ListInterventions(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	limit = pagination.NormalizeLimit(limit)

	records, err := h.service.ListDispatches(r.Context(), userID, repository.DispatchFilter{
		Limit:  limit,
		Cursor: r.URL.Query().Get("cursor"),
	})
	if err != nil {
		writeServiceError(w, err, "Failed to list interventions")
		return
	}

	resp := InterventionListResponse{Data: records}
	if len(records) > limit {
		resp.Data = records[:limit]
		last := resp.Data[limit-1]
		cursor := pagination.Cursor{ID: last.ID, CreatedAt: last.CreatedAt}
		resp.NextCursor = cursor.Encode()
	}
	if resp.Data == nil {
		resp.Data = []domain.DispatchRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}
	return userID, true
}

// decodeOptionalBody decodes a JSON body that may legitimately be absent.
func decodeOptionalBody[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	if r.Body == nil || r.ContentLength == 0 {
		return nil, true
	}
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return nil, false
	}
	return &req, true
}

// writeServiceError maps domain errors to problem responses.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrNoSnapshot):
		problem.NotFound("No telemetry snapshot for user; submit metrics first").Write(w)
	case errors.As(err, &validationErr):
		fieldErrors := make([]problem.FieldError, 0, len(validationErr.Violations))
		for _, v := range validationErr.Violations {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: v.Field, Message: v.Message})
		}
		problem.ValidationError("Metrics contain invalid values", fieldErrors).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}
