// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account.
type AccountType string

const (
	AccountTypeBank       AccountType = "Bank"
	AccountTypeCash       AccountType = "Cash"
	AccountTypeCreditCard AccountType = "Credit Card"
	AccountTypeInvestment AccountType = "Investment"
	AccountTypeOther      AccountType = "Other"
)

// DefaultCurrency is used when an account is created without a currency.
const DefaultCurrency = "USD"

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeBank, AccountTypeCash, AccountTypeCreditCard, AccountTypeInvestment, AccountTypeOther:
		return true
	}
	return false
}

// Account represents a financial account. Balance is a running total that only the
// transaction mutator changes after creation.
type Account struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Clone returns a copy of the account.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}
