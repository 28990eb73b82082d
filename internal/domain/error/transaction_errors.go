// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "fmt"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = fmt.Errorf("invalid transaction type: %w", ErrValidation)

	// ErrInvalidTransactionDate is returned when the transaction date is missing.
	ErrInvalidTransactionDate = fmt.Errorf("invalid transaction date: %w", ErrValidation)

	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = fmt.Errorf("invalid transaction amount: %w", ErrValidation)

	// ErrAccountNotFoundForTransaction is returned when the referenced account does not exist.
	ErrAccountNotFoundForTransaction = fmt.Errorf("account %w", ErrNotFound)

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not exist.
	ErrCategoryNotFoundForTransaction = fmt.Errorf("category %w", ErrNotFound)

	// ErrBudgetNotFoundForTransaction is returned when the referenced budget does not exist.
	ErrBudgetNotFoundForTransaction = fmt.Errorf("budget %w", ErrNotFound)

	// ErrBudgetNotAllowed is returned when a non-expense transaction carries a budget.
	ErrBudgetNotAllowed = fmt.Errorf("only expense transactions may carry a budget: %w", ErrValidation)

	// ErrBudgetDoesNotCover is returned when the chosen budget does not cover the transaction's category or date.
	ErrBudgetDoesNotCover = fmt.Errorf("budget does not cover this transaction: %w", ErrValidation)

	// ErrUnbalancedBreakdown is returned when sub-items do not sum to the transaction amount.
	ErrUnbalancedBreakdown = fmt.Errorf("breakdown does not match amount: %w", ErrValidation)

	// ErrInvalidSubItem is returned when a sub-item has no name or a non-positive amount.
	ErrInvalidSubItem = fmt.Errorf("invalid breakdown item: %w", ErrValidation)

	// ErrInvalidRecurrence is returned when a recurring transaction lacks a valid frequency or end date.
	ErrInvalidRecurrence = fmt.Errorf("invalid recurrence: %w", ErrValidation)

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = fmt.Errorf("description too long: %w", ErrValidation)

	// ErrEmptyTransactionIDs is returned when a bulk operation receives no ids.
	ErrEmptyTransactionIDs = fmt.Errorf("transaction ids list is empty: %w", ErrValidation)
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeTxnAccountNotFound       TransactionErrorCode = "TXN-010005"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeTxnBudgetNotFound        TransactionErrorCode = "TXN-010007"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010008"
	ErrCodeBudgetNotAllowed         TransactionErrorCode = "TXN-010009"
	ErrCodeBudgetDoesNotCover       TransactionErrorCode = "TXN-010010"
	ErrCodeUnbalancedBreakdown      TransactionErrorCode = "TXN-010011"
	ErrCodeInvalidSubItem           TransactionErrorCode = "TXN-010012"
	ErrCodeInvalidRecurrence        TransactionErrorCode = "TXN-010013"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010014"
	ErrCodeEmptyTransactionIDs      TransactionErrorCode = "TXN-010015"

	// Budget errors (02XXXX)
	ErrCodeBudgetExceeded TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
