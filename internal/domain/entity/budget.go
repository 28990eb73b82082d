// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetCategoryAll is the category value of a budget that covers every category.
const BudgetCategoryAll = "all"

// BudgetType decides which transactions a budget accounts for.
type BudgetType string

const (
	// BudgetTypeAddedOnly counts only transactions explicitly attributed to the budget.
	BudgetTypeAddedOnly BudgetType = "added_only"
	// BudgetTypeAllTransactions counts every matching transaction regardless of attribution.
	BudgetTypeAllTransactions BudgetType = "all_transactions"
)

// BudgetTimeframe selects how a new budget's window is derived.
type BudgetTimeframe string

const (
	BudgetTimeframeWeekly  BudgetTimeframe = "weekly"
	BudgetTimeframeMonthly BudgetTimeframe = "monthly"
	BudgetTimeframeYearly  BudgetTimeframe = "yearly"
	BudgetTimeframeCustom  BudgetTimeframe = "custom"
)

// Budget represents a spending limit over a category and an optional date window.
// Category holds a category id or BudgetCategoryAll, never a category name.
type Budget struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Spent          decimal.Decimal `json:"spent"`
	StartDate      *time.Time      `json:"startDate,omitempty"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	BudgetType     BudgetType      `json:"budgetType"`
	IsRecurring    bool            `json:"isRecurring,omitempty"`
	ParentBudgetID *string         `json:"parentBudgetId,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CoversAllCategories reports whether the budget is not restricted to one category.
func (b *Budget) CoversAllCategories() bool {
	return b.Category == BudgetCategoryAll
}

// Headroom returns amount - spent. It is negative when the budget is already overspent.
func (b *Budget) Headroom() decimal.Decimal {
	return b.Amount.Sub(b.Spent)
}

// Effective returns the budget type, treating an unset value as added_only.
func (b *Budget) Effective() BudgetType {
	if b.BudgetType == "" {
		return BudgetTypeAddedOnly
	}
	return b.BudgetType
}

// Clone returns a deep copy of the budget.
func (b *Budget) Clone() *Budget {
	c := *b
	if b.StartDate != nil {
		d := *b.StartDate
		c.StartDate = &d
	}
	if b.EndDate != nil {
		d := *b.EndDate
		c.EndDate = &d
	}
	if b.ParentBudgetID != nil {
		p := *b.ParentBudgetID
		c.ParentBudgetID = &p
	}
	return &c
}

// BudgetProgress contains spending vs budget data for a budget.
type BudgetProgress struct {
	BudgetID   string
	Amount     decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal
}

// Progress computes the budget's progress figures.
func (b *Budget) Progress() BudgetProgress {
	percentage := decimal.Zero
	if b.Amount.IsPositive() {
		percentage = b.Spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return BudgetProgress{
		BudgetID:   b.ID,
		Amount:     b.Amount,
		Spent:      b.Spent,
		Remaining:  b.Headroom(),
		Percentage: percentage,
	}
}
