// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "Income"
	TransactionTypeExpense  TransactionType = "Expense"
	TransactionTypeTransfer TransactionType = "Transfer"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// RecurrenceFrequency is the step between two occurrences of a recurring transaction.
type RecurrenceFrequency string

const (
	RecurrenceDaily   RecurrenceFrequency = "Daily"
	RecurrenceWeekly  RecurrenceFrequency = "Weekly"
	RecurrenceMonthly RecurrenceFrequency = "Monthly"
	RecurrenceYearly  RecurrenceFrequency = "Yearly"
)

// SubItemStatus tells whether a breakdown line has been settled.
type SubItemStatus string

const (
	SubItemStatusPaid SubItemStatus = "Paid"
	SubItemStatusOwed SubItemStatus = "Owed"
)

// SubItem is one line of a transaction breakdown. It has no lifecycle of its own.
type SubItem struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Status SubItemStatus   `json:"status"`
}

// Transaction represents a financial transaction in the Finance Tracker system.
// Amount is always positive; Type decides the direction of the balance change.
type Transaction struct {
	ID                  string               `json:"id"`
	Date                time.Time            `json:"date"`
	AccountID           string               `json:"accountId"`
	Type                TransactionType      `json:"type"`
	CategoryID          string               `json:"categoryId"`
	Description         string               `json:"description,omitempty"`
	Amount              decimal.Decimal      `json:"amount"`
	BudgetID            *string              `json:"budgetId,omitempty"`
	IsRecurring         bool                 `json:"isRecurring,omitempty"`
	RecurrenceFrequency *RecurrenceFrequency `json:"recurrenceFrequency,omitempty"`
	RecurrenceEndDate   *time.Time           `json:"recurrenceEndDate,omitempty"`
	SubItems            []SubItem            `json:"subItems,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// HasBudget reports whether the transaction is attributed to a budget.
func (t *Transaction) HasBudget() bool {
	return t.BudgetID != nil && *t.BudgetID != ""
}

// BalanceDelta returns the signed change this transaction applies to its account.
// Transfers carry a single account reference and leave it unchanged.
func (t *Transaction) BalanceDelta() decimal.Decimal {
	switch t.Type {
	case TransactionTypeIncome:
		return t.Amount
	case TransactionTypeExpense:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// Clone returns a deep copy of the transaction.
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.BudgetID != nil {
		id := *t.BudgetID
		c.BudgetID = &id
	}
	if t.RecurrenceFrequency != nil {
		f := *t.RecurrenceFrequency
		c.RecurrenceFrequency = &f
	}
	if t.RecurrenceEndDate != nil {
		d := *t.RecurrenceEndDate
		c.RecurrenceEndDate = &d
	}
	if t.SubItems != nil {
		c.SubItems = make([]SubItem, len(t.SubItems))
		copy(c.SubItems, t.SubItems)
	}
	return &c
}

// TransactionFilter narrows a transaction listing. Nil fields do not filter.
type TransactionFilter struct {
	AccountID  *string
	CategoryID *string
	BudgetID   *string
	Type       *TransactionType
	StartDate  *time.Time
	EndDate    *time.Time
}

// Matches reports whether the transaction passes every set criterion.
// Date bounds are inclusive and compared by calendar day.
func (f TransactionFilter) Matches(t *Transaction) bool {
	if f.AccountID != nil && t.AccountID != *f.AccountID {
		return false
	}
	if f.CategoryID != nil && t.CategoryID != *f.CategoryID {
		return false
	}
	if f.BudgetID != nil && (t.BudgetID == nil || *t.BudgetID != *f.BudgetID) {
		return false
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.StartDate != nil && valueobject.DayOf(t.Date).Before(valueobject.DayOf(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && valueobject.DayOf(t.Date).After(valueobject.DayOf(*f.EndDate)) {
		return false
	}
	return true
}
