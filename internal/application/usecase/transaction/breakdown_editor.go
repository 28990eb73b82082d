// Package transaction contains transaction-related use cases.
package transaction

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/service"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

var (
	// ErrBreakdownNotEnabled is returned when an operation needs an active breakdown.
	ErrBreakdownNotEnabled = errors.New("breakdown is not enabled")

	// ErrAmountReadOnly is returned when the amount is edited while a breakdown is active.
	ErrAmountReadOnly = errors.New("amount is read-only while a breakdown is active")

	// ErrStaleDisableIntent is returned when a disable confirmation does not match the pending request.
	ErrStaleDisableIntent = errors.New("disable request is no longer pending")

	// ErrEmptyBreakdownUnconfirmed is returned when an empty breakdown is submitted without confirmation.
	ErrEmptyBreakdownUnconfirmed = errors.New("empty breakdown must be confirmed")
)

// DisableIntent is the pending request to remove a breakdown.
// Confirming it clears ItemCount items.
type DisableIntent struct {
	Token     string
	ItemCount int
}

// BreakdownEditor holds the form state of a transaction's breakdown.
// The amount in effect when the breakdown is enabled is the total the items must reach.
type BreakdownEditor struct {
	tolerance decimal.Decimal

	amount  decimal.Decimal
	enabled bool
	items   []entity.SubItem

	emptyConfirmed bool
	pending        *DisableIntent
	requests       int
}

// NewBreakdownEditor creates an editor for a transaction of amount.
// Existing sub-items start the editor with the breakdown enabled.
func NewBreakdownEditor(amount decimal.Decimal, items []entity.SubItem, tolerance decimal.Decimal) *BreakdownEditor {
	if tolerance.IsZero() {
		tolerance = valueobject.DefaultBreakdownTolerance
	}
	e := &BreakdownEditor{tolerance: tolerance, amount: amount}
	if len(items) > 0 {
		e.enabled = true
		e.items = append([]entity.SubItem(nil), items...)
	}
	return e
}

// Enabled reports whether the breakdown is active.
func (e *BreakdownEditor) Enabled() bool {
	return e.enabled
}

// Amount returns the transaction amount.
func (e *BreakdownEditor) Amount() decimal.Decimal {
	return e.amount
}

// SetAmount changes the standalone amount. It fails while the breakdown is active.
func (e *BreakdownEditor) SetAmount(amount decimal.Decimal) error {
	if e.enabled {
		return ErrAmountReadOnly
	}
	e.amount = amount
	return nil
}

// Enable turns the breakdown on. The amount must already be positive.
func (e *BreakdownEditor) Enable() error {
	if !e.amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"enter a transaction amount before adding a breakdown",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	e.enabled = true
	e.emptyConfirmed = false
	return nil
}

// SetItems replaces the breakdown items.
func (e *BreakdownEditor) SetItems(items []entity.SubItem) error {
	if !e.enabled {
		return ErrBreakdownNotEnabled
	}
	e.items = append([]entity.SubItem(nil), items...)
	e.emptyConfirmed = false
	return nil
}

// Items returns a copy of the breakdown items.
func (e *BreakdownEditor) Items() []entity.SubItem {
	return append([]entity.SubItem(nil), e.items...)
}

// Status classifies the current items against the amount.
func (e *BreakdownEditor) Status() valueobject.BreakdownStatus {
	return service.ClassifyBreakdown(e.amount, e.items, e.tolerance)
}

// RequestDisable starts removing the breakdown. Nothing changes until the
// returned intent is confirmed; a newer request invalidates older ones.
func (e *BreakdownEditor) RequestDisable() (DisableIntent, error) {
	if !e.enabled {
		return DisableIntent{}, ErrBreakdownNotEnabled
	}
	e.requests++
	intent := DisableIntent{
		Token:     "disable-" + strconv.Itoa(e.requests),
		ItemCount: len(e.items),
	}
	e.pending = &intent
	return intent, nil
}

// ConfirmDisable clears every item and turns the breakdown off, keeping the
// amount recorded before it was enabled.
func (e *BreakdownEditor) ConfirmDisable(intent DisableIntent) error {
	if e.pending == nil || e.pending.Token != intent.Token {
		return ErrStaleDisableIntent
	}
	e.pending = nil
	e.enabled = false
	e.items = nil
	e.emptyConfirmed = false
	return nil
}

// CancelDisable drops a pending disable request.
func (e *BreakdownEditor) CancelDisable() {
	e.pending = nil
}

// ConfirmEmpty accepts submitting an active breakdown with no items, which is
// treated as no breakdown.
func (e *BreakdownEditor) ConfirmEmpty() {
	e.emptyConfirmed = true
}

// Submission returns the amount and items to submit.
func (e *BreakdownEditor) Submission() (decimal.Decimal, []entity.SubItem, error) {
	if !e.enabled {
		return e.amount, nil, nil
	}
	if len(e.items) == 0 {
		if !e.emptyConfirmed {
			return decimal.Zero, nil, ErrEmptyBreakdownUnconfirmed
		}
		return e.amount, nil, nil
	}
	if err := service.ValidateSubItems(e.amount, e.items, e.tolerance); err != nil {
		return decimal.Zero, nil, err
	}
	return e.amount, e.Items(), nil
}
