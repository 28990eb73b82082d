// Package error defines domain-specific errors for the Finance Tracker application.
package error

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error kinds. Every domain error wraps exactly one of these so callers can
// classify failures with errors.Is without knowing the specific error.
var (
	// ErrValidation is returned for missing fields, non-positive amounts and unbalanced breakdowns.
	ErrValidation = errors.New("validation failed")

	// ErrBudgetExceeded is returned when a spend update would push a budget past its amount.
	ErrBudgetExceeded = errors.New("budget exceeded")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when a name must be unique and is not.
	ErrDuplicateName = errors.New("duplicate name")
)

// BudgetExceededError describes an attributed spend that does not fit in a budget.
type BudgetExceededError struct {
	BudgetID   string
	BudgetName string
	Amount     decimal.Decimal
	Spent      decimal.Decimal
	Requested  decimal.Decimal
	Remaining  decimal.Decimal
}

// Available is the remaining headroom, never below zero.
func (e *BudgetExceededError) Available() decimal.Decimal {
	if e.Remaining.IsNegative() {
		return decimal.Zero
	}
	return e.Remaining
}

// Error implements the error interface. The message states the remaining headroom.
func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("budget %q has only %s remaining, cannot add %s",
		e.BudgetName, e.Available().StringFixed(2), e.Requested.StringFixed(2))
}

// Unwrap classifies the error as ErrBudgetExceeded.
func (e *BudgetExceededError) Unwrap() error {
	return ErrBudgetExceeded
}

// Kind returns the error kind wrapped by err, or nil when err is not a domain error.
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrBudgetExceeded, ErrNotFound, ErrDuplicateName} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
