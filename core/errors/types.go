// ABOUTME: Custom error types for the extraction pipeline
// ABOUTME: Provides structured errors that the API layer maps to status codes

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter is wrapped by the validation error for an absent url parameter
	ErrMissingParameter = errors.New("url parameter is required")

	// ErrInvalidURLFormat is wrapped by the validation error for a non TikTok url
	ErrInvalidURLFormat = errors.New("url is not a TikTok URL")
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error.
// Message is safe to show to API callers.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the sentinel behind the validation error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ExternalAPIError represents an unexpected response from an upstream service
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
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

// AsValidation returns the ValidationError in err's chain, if any
func AsValidation(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
