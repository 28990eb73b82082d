package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

func expense(id string, amount string, date time.Time, categoryID string, budgetID *string) *entity.Transaction {
	return &entity.Transaction{
		ID:         id,
		Date:       date,
		AccountID:  "acc-1",
		Type:       entity.TransactionTypeExpense,
		CategoryID: categoryID,
		Amount:     dec(amount),
		BudgetID:   budgetID,
	}
}

func monthlyBudget(id, category, amount, spent string, budgetType entity.BudgetType) *entity.Budget {
	return &entity.Budget{
		ID:         id,
		Name:       id,
		Category:   category,
		Amount:     dec(amount),
		Spent:      dec(spent),
		StartDate:  dayPtr(2025, time.January, 1),
		EndDate:    dayPtr(2025, time.January, 31),
		BudgetType: budgetType,
	}
}
