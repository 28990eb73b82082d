// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "Income"
	CategoryTypeExpense CategoryType = "Expense"
)

// IsValid reports whether t is one of the known category types.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category represents a transaction category. Name is unique within a type.
type Category struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// SameName reports whether name equals the category name, ignoring case and surrounding spaces.
func (c *Category) SameName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name))
}

// Clone returns a copy of the category.
func (c *Category) Clone() *Category {
	cp := *c
	return &cp
}
