// Package service contains the pure domain algorithms of the ledger: breakdown
// validation, budget matching, spend accounting and recurrence expansion.
// Nothing in this package performs I/O or holds state between calls.
package service

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// SumSubItems returns the total of the sub-item amounts.
func SumSubItems(items []entity.SubItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

// ClassifyBreakdown compares amount with the sum of items.
// A difference no larger than tolerance is Balanced.
func ClassifyBreakdown(amount decimal.Decimal, items []entity.SubItem, tolerance decimal.Decimal) valueobject.BreakdownStatus {
	itemsTotal := SumSubItems(items)
	diff := amount.Sub(itemsTotal)

	status := valueobject.BreakdownStatus{
		Total:      amount,
		ItemsTotal: itemsTotal,
	}
	switch {
	case diff.Abs().LessThanOrEqual(tolerance):
		status.State = valueobject.BreakdownBalanced
		status.Difference = decimal.Zero
	case diff.IsPositive():
		status.State = valueobject.BreakdownUnder
		status.Difference = diff
	default:
		status.State = valueobject.BreakdownOver
		status.Difference = diff.Neg()
	}
	return status
}

// ValidateSubItems checks every sub-item and then the breakdown as a whole.
// An empty list is not a breakdown and always passes.
func ValidateSubItems(amount decimal.Decimal, items []entity.SubItem, tolerance decimal.Decimal) error {
	if len(items) == 0 {
		return nil
	}
	for _, item := range items {
		if item.Name == "" {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidSubItem,
				"every breakdown item needs a name",
				domainerror.ErrInvalidSubItem,
			)
		}
		if !item.Amount.IsPositive() {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidSubItem,
				"breakdown item amounts must be greater than zero",
				domainerror.ErrInvalidSubItem,
			)
		}
		if item.Status != "" && item.Status != entity.SubItemStatusPaid && item.Status != entity.SubItemStatusOwed {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidSubItem,
				"breakdown item status must be 'Paid' or 'Owed'",
				domainerror.ErrInvalidSubItem,
			)
		}
	}

	status := ClassifyBreakdown(amount, items, tolerance)
	if !status.IsBalanced() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeUnbalancedBreakdown,
			status.Message(),
			domainerror.ErrUnbalancedBreakdown,
		)
	}
	return nil
}
