// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
// Category accepts a category id, a category name, or "all".
type CreateBudgetRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=100"`
	Category       string          `json:"category" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Timeframe      string          `json:"timeframe,omitempty" binding:"omitempty,budget_timeframe"`
	StartDate      *string         `json:"start_date,omitempty"`
	EndDate        *string         `json:"end_date,omitempty"`
	BudgetType     string          `json:"budget_type,omitempty" binding:"omitempty,budget_type"`
	IsRecurring    bool            `json:"is_recurring,omitempty"`
	NumberOfMonths int             `json:"number_of_months,omitempty" binding:"omitempty,min=1,max=120"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name       *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Category   *string          `json:"category,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	StartDate  *string          `json:"start_date,omitempty"`
	EndDate    *string          `json:"end_date,omitempty"`
	BudgetType *string          `json:"budget_type,omitempty" binding:"omitempty,budget_type"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Amount         string    `json:"amount"`
	Spent          string    `json:"spent"`
	Remaining      string    `json:"remaining"`
	Percentage     string    `json:"percentage"`
	StartDate      *string   `json:"start_date,omitempty"`
	EndDate        *string   `json:"end_date,omitempty"`
	BudgetType     string    `json:"budget_type"`
	IsRecurring    bool      `json:"is_recurring"`
	ParentBudgetID *string   `json:"parent_budget_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BudgetListResponse represents a list of budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// UpdateBudgetResponse represents the response for budget update.
type UpdateBudgetResponse struct {
	Budget        BudgetResponse `json:"budget"`
	DetachedCount int            `json:"detached_count"`
}

// DeleteBudgetsResponse represents the response for budget deletion.
type DeleteBudgetsResponse struct {
	DeletedCount  int `json:"deleted_count"`
	DetachedCount int `json:"detached_count"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	progress := b.Progress()
	return BudgetResponse{
		ID:             b.ID,
		Name:           b.Name,
		Category:       b.Category,
		Amount:         money(b.Amount),
		Spent:          money(b.Spent),
		Remaining:      money(progress.Remaining),
		Percentage:     progress.Percentage.StringFixed(2),
		StartDate:      formatOptionalDate(b.StartDate),
		EndDate:        formatOptionalDate(b.EndDate),
		BudgetType:     string(b.Effective()),
		IsRecurring:    b.IsRecurring,
		ParentBudgetID: b.ParentBudgetID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// ToBudgetListResponse converts budgets to a BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	out := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		out[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{Budgets: out}
}

// ToBudgetOutputListResponse converts listed budgets to a BudgetListResponse.
func ToBudgetOutputListResponse(outputs []*budget.BudgetOutput) BudgetListResponse {
	out := make([]BudgetResponse, len(outputs))
	for i, o := range outputs {
		out[i] = ToBudgetResponse(o.Budget)
	}
	return BudgetListResponse{Budgets: out}
}
