package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "project",
		ID:       "123",
	}

	expected := "project not found: 123"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "email",
		Message: "invalid email format",
	}

	expected := "validation error on field 'email': invalid email format"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestStageErrors_UserMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid url", &InvalidURLError{URL: "ftp://x"}, InvalidURLMessage},
		{"fetch", &FetchError{URL: "https://example.com", Attempts: 3}, FetchFailedMessage},
		{"generation", &GenerationError{Cause: errors.New("timeout")}, GenerationFailedMessage},
		{"credits", &InsufficientCreditsError{UserID: "u1"}, InsufficientCreditsMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerationError_UnwrapsCause(t *testing.T) {
	cause := errors.New("model overloaded")
	err := &GenerationError{Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("GenerationError should unwrap to its cause")
	}
}

func TestPersistenceError_Error(t *testing.T) {
	err := &PersistenceError{Op: "create project", Cause: errors.New("disk full")}

	expected := "persistence error during create project: disk full"
	if err.Error() != expected {
		t.Errorf("PersistenceError.Error() = %v, want %v", err.Error(), expected)
	}

	bare := &PersistenceError{Op: "refresh"}
	if bare.Error() != "persistence error during refresh" {
		t.Errorf("PersistenceError.Error() = %v", bare.Error())
	}
}

func TestUnauthorizedError_Error(t *testing.T) {
	if (&UnauthorizedError{}).Error() != "unauthorized" {
		t.Error("empty reason should render as 'unauthorized'")
	}
	if (&UnauthorizedError{Reason: "api key revoked"}).Error() != "unauthorized: api key revoked" {
		t.Error("reason should be appended")
	}
}

func TestIsHelpers_WrappedErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", &NotFoundError{Resource: "user", ID: "1"}, IsNotFound},
		{"validation", &ValidationError{Field: "url", Message: "required"}, IsValidation},
		{"external api", &ExternalAPIError{StatusCode: 502, API: "relay"}, IsExternalAPI},
		{"invalid url", &InvalidURLError{}, IsInvalidURL},
		{"fetch", &FetchError{}, IsFetch},
		{"generation", &GenerationError{}, IsGeneration},
		{"persistence", &PersistenceError{Op: "update"}, IsPersistence},
		{"credits", &InsufficientCreditsError{}, IsInsufficientCredits},
		{"unauthorized", &UnauthorizedError{}, IsUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.err) {
				t.Error("helper should match the bare error")
			}
			if !tt.check(fmt.Errorf("context: %w", tt.err)) {
				t.Error("helper should match the wrapped error")
			}
			if tt.check(errors.New("some other error")) {
				t.Error("helper should not match an unrelated error")
			}
		})
	}
}

func TestUpstreamStatus(t *testing.T) {
	apiErr := &ExternalAPIError{API: "corsproxy", StatusCode: 429, Message: "slow down"}

	if got := UpstreamStatus(apiErr); got != 429 {
		t.Errorf("UpstreamStatus = %d, want 429", got)
	}
	if got := UpstreamStatus(&GenerationError{Cause: apiErr}); got != 429 {
		t.Errorf("UpstreamStatus through GenerationError = %d, want 429", got)
	}
	if got := UpstreamStatus(errors.New("dial tcp: refused")); got != 0 {
		t.Errorf("UpstreamStatus without an upstream answer = %d, want 0", got)
	}
}
