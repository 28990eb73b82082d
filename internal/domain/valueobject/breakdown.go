package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BreakdownState classifies a breakdown against its transaction total.
type BreakdownState string

const (
	BreakdownBalanced BreakdownState = "balanced"
	BreakdownUnder    BreakdownState = "under"
	BreakdownOver     BreakdownState = "over"
)

// DefaultBreakdownTolerance is the largest difference still treated as balanced.
var DefaultBreakdownTolerance = decimal.NewFromFloat(0.01)

// BreakdownStatus is the outcome of comparing sub-items with a total.
// Difference is the remaining amount when Under and the excess when Over; zero when Balanced.
type BreakdownStatus struct {
	State      BreakdownState
	Total      decimal.Decimal
	ItemsTotal decimal.Decimal
	Difference decimal.Decimal
}

// IsBalanced reports whether the breakdown may be submitted.
func (s BreakdownStatus) IsBalanced() bool {
	return s.State == BreakdownBalanced
}

// Message returns a user-facing description of an unbalanced breakdown.
func (s BreakdownStatus) Message() string {
	switch s.State {
	case BreakdownOver:
		return fmt.Sprintf("the breakdown total (%s) exceeds the transaction amount (%s) by %s",
			s.ItemsTotal.StringFixed(2), s.Total.StringFixed(2), s.Difference.StringFixed(2))
	case BreakdownUnder:
		return fmt.Sprintf("the breakdown total (%s) is less than the transaction amount (%s), %s remaining",
			s.ItemsTotal.StringFixed(2), s.Total.StringFixed(2), s.Difference.StringFixed(2))
	default:
		return "breakdown total has reached the transaction amount"
	}
}
