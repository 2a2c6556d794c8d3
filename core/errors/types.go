// ABOUTME: Custom error types for the conversion pipeline and its collaborators
// ABOUTME: Each pipeline stage fails with its own type so handlers can map it to a response

package errors

import (
	"errors"
	"fmt"
)

// User-facing messages for the pipeline stages
const (
	InvalidURLMessage          = "Invalid URL format. Please include http:// or https://"
	FetchFailedMessage         = "Target site is heavily protected or proxies are down. Please check if the URL is correct and public."
	GenerationFailedMessage    = "The site is too complex or protected. Our engine is attempting to scale its reconstruction—please try again with a different URL."
	InsufficientCreditsMessage = "No credits remaining. Please upgrade your plan."
)

// ErrConversionInProgress is returned when a run is started on an orchestrator that is already running
var ErrConversionInProgress = errors.New("a conversion is already in progress")

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError is a non-2xx answer from a relay or model backend
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// InvalidURLError is returned before any network call when the source URL is unusable
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return InvalidURLMessage
}

// FetchError is returned when no relay produced acceptable HTML
type FetchError struct {
	URL      string
	Attempts int
}

func (e *FetchError) Error() string {
	return FetchFailedMessage
}

// GenerationError is returned when the model backend fails or answers with nothing usable.
// Cause is kept for logging; the message shown to users is fixed.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return GenerationFailedMessage
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// PersistenceError wraps a failure of the project or credit store
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("persistence error during %s", e.Op)
	}
	return fmt.Sprintf("persistence error during %s: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// InsufficientCreditsError is returned at admission when the balance is exhausted
type InsufficientCreditsError struct {
	UserID string
}

func (e *InsufficientCreditsError) Error() string {
	return InsufficientCreditsMessage
}

// UnauthorizedError is returned for missing, unknown or revoked credentials
type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return "unauthorized: " + e.Reason
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsInvalidURL checks if an error is an InvalidURLError
func IsInvalidURL(err error) bool {
	var target *InvalidURLError
	return errors.As(err, &target)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var target *FetchError
	return errors.As(err, &target)
}

// IsGeneration checks if an error is a GenerationError
func IsGeneration(err error) bool {
	var target *GenerationError
	return errors.As(err, &target)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}

// IsInsufficientCredits checks if an error is an InsufficientCreditsError
func IsInsufficientCredits(err error) bool {
	var target *InsufficientCreditsError
	return errors.As(err, &target)
}

// IsUnauthorized checks if an error is an UnauthorizedError
func IsUnauthorized(err error) bool {
	var target *UnauthorizedError
	return errors.As(err, &target)
}

// UpstreamStatus returns the HTTP status of the ExternalAPIError in err's chain, or 0
func UpstreamStatus(err error) int {
	var apiErr *ExternalAPIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
