// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/service"
)

// FindCandidatesInput represents the input for finding budgets a transaction may use.
type FindCandidatesInput struct {
	Date       time.Time
	CategoryID string
}

// FindCandidatesOutput lists the candidate budgets in collection order.
type FindCandidatesOutput struct {
	Budgets []*entity.Budget
}

// FindCandidatesUseCase exposes budget matching to the UI.
type FindCandidatesUseCase struct {
	store adapter.EntityStore
}

// NewFindCandidatesUseCase creates a new FindCandidatesUseCase instance.
func NewFindCandidatesUseCase(store adapter.EntityStore) *FindCandidatesUseCase {
	return &FindCandidatesUseCase{store: store}
}

// Execute returns the budgets covering the date and category that still have headroom.
func (uc *FindCandidatesUseCase) Execute(ctx context.Context, input FindCandidatesInput) (*FindCandidatesOutput, error) {
	output := &FindCandidatesOutput{Budgets: []*entity.Budget{}}
	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		output.Budgets = cloneBudgets(service.FindCandidates(c.Budgets, input.Date, input.CategoryID, c.Categories))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
