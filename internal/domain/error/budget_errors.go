// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "fmt"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = fmt.Errorf("budget %w", ErrNotFound)

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = fmt.Errorf("invalid budget amount: %w", ErrValidation)

	// ErrMissingBudgetName is returned when a budget has no name.
	ErrMissingBudgetName = fmt.Errorf("budget name is required: %w", ErrValidation)

	// ErrBudgetCategoryNotFound is returned when the category for a budget is not found.
	ErrBudgetCategoryNotFound = fmt.Errorf("budget category %w", ErrNotFound)

	// ErrInvalidBudgetType is returned when the budget type is not added_only or all_transactions.
	ErrInvalidBudgetType = fmt.Errorf("invalid budget type: %w", ErrValidation)

	// ErrInvalidBudgetTimeframe is returned when the timeframe is unknown.
	ErrInvalidBudgetTimeframe = fmt.Errorf("invalid budget timeframe: %w", ErrValidation)

	// ErrInvalidBudgetDateRange is returned when the end date is before the start date.
	ErrInvalidBudgetDateRange = fmt.Errorf("end date cannot be earlier than start date: %w", ErrValidation)

	// ErrInvalidNumberOfMonths is returned when a recurring budget asks for fewer than one month.
	ErrInvalidNumberOfMonths = fmt.Errorf("number of months must be at least 1: %w", ErrValidation)

	// ErrEmptyBudgetIDs is returned when a bulk delete receives no ids.
	ErrEmptyBudgetIDs = fmt.Errorf("budget IDs list cannot be empty: %w", ErrValidation)
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound         BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetAmount    BudgetErrorCode = "BGT-010002"
	ErrCodeMissingBudgetName      BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetCategoryNotFound BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidBudgetType      BudgetErrorCode = "BGT-010005"
	ErrCodeInvalidBudgetTimeframe BudgetErrorCode = "BGT-010006"
	ErrCodeInvalidBudgetDateRange BudgetErrorCode = "BGT-010007"
	ErrCodeInvalidNumberOfMonths  BudgetErrorCode = "BGT-010008"
	ErrCodeEmptyBudgetIDs         BudgetErrorCode = "BGT-010009"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BGT-010010"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
