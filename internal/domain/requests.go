package domain

// PredictRequest is the body of an on-demand evaluation request. Metrics may
// be omitted to evaluate against the latest stored telemetry snapshot.
// @Description On-demand adherence evaluation request.
type PredictRequest struct {
	// Fresh metrics to evaluate; latest stored snapshot is used when omitted
	Metrics *SnapshotRequest `json:"metrics,omitempty"`
	// Optional program history for the bounded historical adjustment
	Historical *HistoricalContext `json:"historical_context,omitempty"`
	// Optional current-situation context for the bounded contextual adjustment
	Situational *SituationalContext `json:"situational_context,omitempty"`
}

// MonitorRequest is the body of a monitor cycle request.
// @Description Monitor cycle request.
type MonitorRequest struct {
	PredictRequest
	// Explicit user help request; forces the intervention gate open
	UserRequestedHelp bool `json:"user_requested_help,omitempty"`
}
