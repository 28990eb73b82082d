// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "fmt"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)

	// ErrMissingAccountName is returned when an account has no name.
	ErrMissingAccountName = fmt.Errorf("account name is required: %w", ErrValidation)

	// ErrInvalidAccountType is returned when the account type is unknown.
	ErrInvalidAccountType = fmt.Errorf("invalid account type: %w", ErrValidation)

	// ErrInvalidCurrency is returned when the currency is not a three-letter code.
	ErrInvalidCurrency = fmt.Errorf("invalid currency: %w", ErrValidation)

	// ErrAccountInUse is returned when deleting an account that transactions still reference.
	ErrAccountInUse = fmt.Errorf("account is referenced by transactions: %w", ErrValidation)
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNotFound     AccountErrorCode = "ACC-010001"
	ErrCodeMissingAccountName  AccountErrorCode = "ACC-010002"
	ErrCodeInvalidAccountType  AccountErrorCode = "ACC-010003"
	ErrCodeAccountInUse        AccountErrorCode = "ACC-010004"
	ErrCodeInvalidCurrency     AccountErrorCode = "ACC-010005"
	ErrCodeMissingAccountField AccountErrorCode = "ACC-010006"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
