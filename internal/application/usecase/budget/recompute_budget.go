// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/service"
)

// RecomputeBudgetInput represents the input for recomputing budget spend.
// An empty BudgetID recomputes every budget.
type RecomputeBudgetInput struct {
	BudgetID string
}

// RecomputeBudgetOutput lists the budgets whose spent was corrected.
type RecomputeBudgetOutput struct {
	Changed []*entity.Budget
}

// RecomputeBudgetUseCase rebuilds spent totals from the transactions.
type RecomputeBudgetUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
}

// NewRecomputeBudgetUseCase creates a new RecomputeBudgetUseCase instance.
func NewRecomputeBudgetUseCase(store adapter.EntityStore, clock adapter.Clock) *RecomputeBudgetUseCase {
	return &RecomputeBudgetUseCase{
		store: store,
		clock: clock,
	}
}

// Execute recomputes one budget, or all of them.
func (uc *RecomputeBudgetUseCase) Execute(ctx context.Context, input RecomputeBudgetInput) (*RecomputeBudgetOutput, error) {
	now := uc.clock.Now()
	output := &RecomputeBudgetOutput{}

	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		targets := c.Budgets
		if input.BudgetID != "" {
			b := c.Budget(input.BudgetID)
			if b == nil {
				return budgetNotFound()
			}
			targets = []*entity.Budget{b}
		}

		changed := service.RepairSpent(targets, c.Transactions)
		for _, b := range changed {
			b.UpdatedAt = now
		}
		output.Changed = cloneBudgets(changed)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(output.Changed) > 0 {
		slog.Warn("Budget spent totals repaired", "count", len(output.Changed))
	}
	return output, nil
}
