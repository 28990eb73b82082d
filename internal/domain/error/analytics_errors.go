// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "fmt"

// Analytics domain errors.
var (
	// ErrInvalidDateRange is returned when the end of a reporting range is before its start.
	ErrInvalidDateRange = fmt.Errorf("end date must not be before start date: %w", ErrValidation)

	// ErrMissingDateRange is returned when a reporting range has no bounds.
	ErrMissingDateRange = fmt.Errorf("start and end dates are required: %w", ErrValidation)

	// ErrInvalidGranularity is returned when a series granularity is unknown.
	ErrInvalidGranularity = fmt.Errorf("invalid granularity: %w", ErrValidation)
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange   AnalyticsErrorCode = "ANL-010001"
	ErrCodeMissingDateRange   AnalyticsErrorCode = "ANL-010002"
	ErrCodeInvalidGranularity AnalyticsErrorCode = "ANL-010003"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
