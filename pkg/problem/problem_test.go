package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAndWithErrors(t *testing.T) {
	fieldErrors := []FieldError{{Field: "timezone", Message: "required"}}
	p := New(http.StatusBadRequest, "bad-request", "Bad Request", "details").WithErrors(fieldErrors)

	if got, want := p.Type, BaseURI+"/bad-request"; got != want {
		t.Fatalf("unexpected type: got %q want %q", got, want)
	}
	if p.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", p.Status)
	}
	if len(p.Errors) != 1 || p.Errors[0] != fieldErrors[0] {
		t.Fatalf("errors not set: %+v", p.Errors)
	}
}

func TestProblemWrite(t *testing.T) {
	resp := httptest.NewRecorder()
	p := BadRequest("invalid")
	p.Write(resp)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != ContentType {
		t.Fatalf("missing content type: %s", got)
	}

	var decoded Problem
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded.Title != "Bad Request" || decoded.Detail != "invalid" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}

func TestValidationErrorShape(t *testing.T) {
	fieldErrors := []FieldError{
		{Field: "satisfaction_score", Message: "must be between 1 and 10"},
		{Field: "weekly_active_days", Message: "must be at most 7"},
	}

	resp := httptest.NewRecorder()
	ValidationError("Metrics contain invalid values", fieldErrors).Write(resp)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", resp.Code)
	}

	var decoded Problem
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if got, want := decoded.Type, BaseURI+"/validation-error"; got != want {
		t.Fatalf("unexpected type: got %q want %q", got, want)
	}
	if len(decoded.Errors) != 2 || decoded.Errors[0] != fieldErrors[0] || decoded.Errors[1] != fieldErrors[1] {
		t.Fatalf("field errors not round-tripped: %+v", decoded.Errors)
	}
}

func TestCommonConstructors(t *testing.T) {
	tests := []struct {
		p          *Problem
		wantStatus int
		wantType   string
	}{
		{NotFound("gone"), http.StatusNotFound, BaseURI + "/not-found"},
		{Conflict("exists"), http.StatusConflict, BaseURI + "/conflict"},
		{InternalError("boom"), http.StatusInternalServerError, BaseURI + "/internal-error"},
		{ServiceUnavailable("later"), http.StatusServiceUnavailable, BaseURI + "/service-unavailable"},
	}
	for _, tt := range tests {
		if tt.p.Status != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.p.Title, tt.p.Status, tt.wantStatus)
		}
		if tt.p.Type != tt.wantType {
			t.Errorf("%s: type = %q, want %q", tt.p.Title, tt.p.Type, tt.wantType)
		}
	}
}
