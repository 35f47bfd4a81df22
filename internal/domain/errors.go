package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrNoSnapshot   = errors.New("no telemetry snapshot available")
	ErrInvalidInput = errors.New("invalid input")
)

// FieldViolation describes a single invalid snapshot field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or missing required snapshot fields. It
// aborts only the affected user's cycle and is the one error that Predict and
// Monitor surface to callers.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid metrics snapshot"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s %s", v.Field, v.Message))
	}
	return "invalid metrics snapshot: " + strings.Join(parts, "; ")
}
