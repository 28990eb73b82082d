// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// MaxPageLimit caps the page size of a paginated listing.
const MaxPageLimit = 100

// ListTransactionsInput represents the input for listing transactions.
// Page and Limit are optional; without them every match is returned.
type ListTransactionsInput struct {
	Filter entity.TransactionFilter
	Search string
	Page   int
	Limit  int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// TotalsOutput represents aggregated totals over every match.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Pagination   PaginationOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	store adapter.EntityStore
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(store adapter.EntityStore) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		store: store,
	}
}

// Execute performs the transaction listing in insertion order.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	search := strings.ToLower(strings.TrimSpace(input.Search))

	var matches []*entity.Transaction
	totals := TotalsOutput{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		for _, t := range c.Transactions {
			if !input.Filter.Matches(t) {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(t.Description), search) {
				continue
			}
			switch t.Type {
			case entity.TransactionTypeIncome:
				totals.IncomeTotal = totals.IncomeTotal.Add(t.Amount)
			case entity.TransactionTypeExpense:
				totals.ExpenseTotal = totals.ExpenseTotal.Add(t.Amount)
			}
			matches = append(matches, t.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	totals.NetTotal = totals.IncomeTotal.Sub(totals.ExpenseTotal)

	output := &ListTransactionsOutput{
		Transactions: matches,
		Totals:       totals,
		Pagination: PaginationOutput{
			Page:       1,
			Limit:      len(matches),
			Total:      len(matches),
			TotalPages: 1,
		},
	}
	if input.Page < 1 && input.Limit < 1 {
		return output, nil
	}

	// Set default pagination values
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	start := (page - 1) * limit
	if start > len(matches) {
		start = len(matches)
	}
	end := start + limit
	if end > len(matches) {
		end = len(matches)
	}

	output.Transactions = matches[start:end]
	output.Pagination = PaginationOutput{
		Page:       page,
		Limit:      limit,
		Total:      len(matches),
		TotalPages: (len(matches) + limit - 1) / limit,
	}
	return output, nil
}
