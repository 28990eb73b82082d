// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "fmt"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = fmt.Errorf("category name already exists: %w", ErrDuplicateName)

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = fmt.Errorf("category name too long: %w", ErrValidation)

	// ErrMissingCategoryName is returned when a category has no name.
	ErrMissingCategoryName = fmt.Errorf("category name is required: %w", ErrValidation)

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = fmt.Errorf("invalid category type: %w", ErrValidation)

	// ErrCategoryInUse is returned when deleting a category that transactions or budgets still reference.
	ErrCategoryInUse = fmt.Errorf("category is in use: %w", ErrValidation)
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010001"
	ErrCodeMissingCategoryName   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryInUse         CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-010005"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010007"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010008"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
