// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// SubItemRequest represents one breakdown line.
type SubItemRequest struct {
	ID     string          `json:"id,omitempty"`
	Name   string          `json:"name" binding:"required,min=1,max=100"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status,omitempty" binding:"omitempty,oneof=Paid Owed"`
}

// TransactionRequest represents the request body for transaction creation and full update.
type TransactionRequest struct {
	Date                string           `json:"date" binding:"required"`
	AccountID           string           `json:"account_id" binding:"required"`
	Type                string           `json:"type" binding:"required,transaction_type"`
	CategoryID          string           `json:"category_id" binding:"required"`
	Description         string           `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount              decimal.Decimal  `json:"amount"`
	BudgetID            *string          `json:"budget_id,omitempty"`
	BudgetMode          string           `json:"budget_mode,omitempty" binding:"omitempty,oneof=none auto"`
	AutoCreateBudget    *bool            `json:"auto_create_budget,omitempty"`
	IsRecurring         bool             `json:"is_recurring,omitempty"`
	RecurrenceFrequency *string          `json:"recurrence_frequency,omitempty" binding:"omitempty,recurrence_frequency"`
	RecurrenceEndDate   *string          `json:"recurrence_end_date,omitempty"`
	SubItems            []SubItemRequest `json:"sub_items,omitempty" binding:"omitempty,dive"`
}

// BulkCategorizeTransactionsRequest represents the request body for bulk transaction categorization.
type BulkCategorizeTransactionsRequest struct {
	IDs        []string `json:"ids" binding:"required,min=1"`
	CategoryID string   `json:"category_id" binding:"required"`
}

// SubItemResponse represents one breakdown line in API responses.
type SubItemResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Status string `json:"status,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                  string            `json:"id"`
	Date                string            `json:"date"`
	AccountID           string            `json:"account_id"`
	Type                string            `json:"type"`
	CategoryID          string            `json:"category_id"`
	Description         string            `json:"description"`
	Amount              string            `json:"amount"`
	BudgetID            *string           `json:"budget_id,omitempty"`
	IsRecurring         bool              `json:"is_recurring"`
	RecurrenceFrequency *string           `json:"recurrence_frequency,omitempty"`
	RecurrenceEndDate   *string           `json:"recurrence_end_date,omitempty"`
	SubItems            []SubItemResponse `json:"sub_items,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// EffectsResponse lists the accounts and budgets a mutation changed.
type EffectsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Budgets  []BudgetResponse  `json:"budgets"`
}

// TransactionMutationResponse represents the response for create, update and delete.
type TransactionMutationResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Effects      EffectsResponse       `json:"effects"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
	Totals       TransactionTotalsResponse     `json:"totals"`
}

// BulkDeleteTransactionsResponse represents the response for bulk transaction deletion.
type BulkDeleteTransactionsResponse struct {
	DeletedCount int             `json:"deleted_count"`
	Effects      EffectsResponse `json:"effects"`
}

// BulkCategorizeTransactionsResponse represents the response for bulk transaction categorization.
type BulkCategorizeTransactionsResponse struct {
	UpdatedCount  int             `json:"updated_count"`
	DetachedCount int             `json:"detached_count"`
	Effects       EffectsResponse `json:"effects"`
}

// ToPayload converts the request into a mutator payload.
func (r TransactionRequest) ToPayload() (transaction.TransactionPayload, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return transaction.TransactionPayload{}, err
	}
	endDate, err := ParseOptionalDate(r.RecurrenceEndDate)
	if err != nil {
		return transaction.TransactionPayload{}, err
	}

	payload := transaction.TransactionPayload{
		Date:              date,
		AccountID:         r.AccountID,
		Type:              entity.TransactionType(r.Type),
		CategoryID:        r.CategoryID,
		Description:       r.Description,
		Amount:            r.Amount,
		BudgetID:          r.BudgetID,
		BudgetMode:        transaction.BudgetMode(r.BudgetMode),
		AutoCreateBudget:  r.AutoCreateBudget,
		IsRecurring:       r.IsRecurring,
		RecurrenceEndDate: endDate,
	}
	if r.RecurrenceFrequency != nil {
		freq := entity.RecurrenceFrequency(*r.RecurrenceFrequency)
		payload.RecurrenceFrequency = &freq
	}
	for _, item := range r.SubItems {
		payload.SubItems = append(payload.SubItems, entity.SubItem{
			ID:     item.ID,
			Name:   item.Name,
			Amount: item.Amount,
			Status: entity.SubItemStatus(item.Status),
		})
	}
	return payload, nil
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:                t.ID,
		Date:              formatDate(t.Date),
		AccountID:         t.AccountID,
		Type:              string(t.Type),
		CategoryID:        t.CategoryID,
		Description:       t.Description,
		Amount:            money(t.Amount),
		BudgetID:          t.BudgetID,
		IsRecurring:       t.IsRecurring,
		RecurrenceEndDate: formatOptionalDate(t.RecurrenceEndDate),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
	if t.RecurrenceFrequency != nil {
		freq := string(*t.RecurrenceFrequency)
		response.RecurrenceFrequency = &freq
	}
	for _, item := range t.SubItems {
		response.SubItems = append(response.SubItems, SubItemResponse{
			ID:     item.ID,
			Name:   item.Name,
			Amount: money(item.Amount),
			Status: string(item.Status),
		})
	}
	return response
}

// ToTransactionResponses converts a list of transactions.
func ToTransactionResponses(txs []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		out[i] = ToTransactionResponse(t)
	}
	return out
}

// ToEffectsResponse converts mutation effects.
func ToEffectsResponse(e transaction.Effects) EffectsResponse {
	return EffectsResponse{
		Accounts: ToAccountResponses(e.Accounts),
		Budgets:  ToBudgetListResponse(e.Budgets).Budgets,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Pagination: TransactionPaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Totals: TransactionTotalsResponse{
			IncomeTotal:  money(output.Totals.IncomeTotal),
			ExpenseTotal: money(output.Totals.ExpenseTotal),
			NetTotal:     money(output.Totals.NetTotal),
		},
	}
}
