package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// SavingsCategoryName is the category whose transactions count as savings.
const SavingsCategoryName = "Savings"

// MonthSummary holds one calendar month's totals.
type MonthSummary struct {
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
	Net      decimal.Decimal `json:"net"`
}

// SpendingInsightsOutput compares the current month with the previous one.
// Changes are percentages rounded to one decimal, zero when the previous value is zero.
type SpendingInsightsOutput struct {
	Current        MonthSummary    `json:"current"`
	Previous       MonthSummary    `json:"previous"`
	IncomeChange   decimal.Decimal `json:"incomeChange"`
	ExpensesChange decimal.Decimal `json:"expensesChange"`
	SavingsChange  decimal.Decimal `json:"savingsChange"`
	// NetShare is the current net as a percentage of the previous month's income.
	NetShare decimal.Decimal `json:"netShare"`
}

// GetSpendingInsightsUseCase computes month-over-month insights.
type GetSpendingInsightsUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
}

// NewGetSpendingInsightsUseCase creates a new GetSpendingInsightsUseCase instance.
func NewGetSpendingInsightsUseCase(store adapter.EntityStore, clock adapter.Clock) *GetSpendingInsightsUseCase {
	return &GetSpendingInsightsUseCase{
		store: store,
		clock: clock,
	}
}

// Execute compares the month containing now with the month before it.
func (uc *GetSpendingInsightsUseCase) Execute(ctx context.Context) (*SpendingInsightsOutput, error) {
	now := uc.clock.Now()
	currentStart := valueobject.StartOfMonth(now)
	previousStart := currentStart.AddDate(0, -1, 0)

	var current, previous MonthSummary
	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		current = summarize(c, currentStart)
		previous = summarize(c, previousStart)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &SpendingInsightsOutput{
		Current:        current,
		Previous:       previous,
		IncomeChange:   percentChange(current.Income, previous.Income),
		ExpensesChange: percentChange(current.Expenses, previous.Expenses),
		SavingsChange:  percentChange(current.Savings, previous.Savings),
		NetShare:       decimal.Zero,
	}
	if previous.Income.IsPositive() {
		out.NetShare = current.Net.Mul(decimal.NewFromInt(100)).Div(previous.Income).Round(1)
	}
	return out, nil
}

func summarize(c *entity.Collections, monthStart time.Time) MonthSummary {
	start, end := monthStart, valueobject.EndOfMonth(monthStart)
	s := MonthSummary{
		Label:    GeneratePeriodLabel(monthStart, GranularityMonthly),
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Savings:  decimal.Zero,
	}
	for _, t := range c.Transactions {
		if !inRange(t, start, end) {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			s.Income = s.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			s.Expenses = s.Expenses.Add(t.Amount)
		}
		if cat := c.Category(t.CategoryID); cat != nil && strings.EqualFold(cat.Name, SavingsCategoryName) {
			s.Savings = s.Savings.Add(t.Amount)
		}
	}
	s.Net = s.Income.Sub(s.Expenses)
	return s
}

func percentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Mul(decimal.NewFromInt(100)).Div(previous).Round(1)
}
