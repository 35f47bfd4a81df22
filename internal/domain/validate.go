package domain

import (
	"github.com/go-playground/validator/v10"
)

var snapshotValidator = validator.New()

// ValidateSnapshot checks the snapshot's field ranges and returns a
// *ValidationError listing every violation. The engine calls this before
// scoring so a malformed snapshot fails fast without touching shared state.
func ValidateSnapshot(m *MetricsSnapshot) error {
	if m == nil {
		return &ValidationError{Violations: []FieldViolation{{Field: "snapshot", Message: "is required"}}}
	}

	err := snapshotValidator.Struct(m)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Violations: []FieldViolation{{Field: "snapshot", Message: "is invalid"}}}
	}

	violations := make([]FieldViolation, 0, len(verrs))
	for _, ve := range verrs {
		violations = append(violations, FieldViolation{
			Field:   toSnakeCase(ve.Field()),
			Message: validationMessage(ve),
		})
	}
	return &ValidationError{Violations: violations}
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
