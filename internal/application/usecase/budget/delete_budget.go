// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteBudgetsInput represents the input for deleting one or more budgets.
type DeleteBudgetsInput struct {
	BudgetIDs []string
}

// DeleteBudgetsOutput represents the output of budget deletion.
type DeleteBudgetsOutput struct {
	Deleted []*entity.Budget
	// DetachedCount counts transactions whose budget reference was cleared.
	DetachedCount int
}

// DeleteBudgetsUseCase handles budget deletion logic.
type DeleteBudgetsUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
}

// NewDeleteBudgetsUseCase creates a new DeleteBudgetsUseCase instance.
func NewDeleteBudgetsUseCase(store adapter.EntityStore, clock adapter.Clock) *DeleteBudgetsUseCase {
	return &DeleteBudgetsUseCase{
		store: store,
		clock: clock,
	}
}

// Execute removes every listed budget and clears references to them in the same unit of work.
// An unknown id aborts the deletion.
func (uc *DeleteBudgetsUseCase) Execute(ctx context.Context, input DeleteBudgetsInput) (*DeleteBudgetsOutput, error) {
	if len(input.BudgetIDs) == 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetIDs,
			"budget IDs list cannot be empty",
			domainerror.ErrEmptyBudgetIDs,
		)
	}

	now := uc.clock.Now()
	output := &DeleteBudgetsOutput{}

	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		ids := make(map[string]struct{}, len(input.BudgetIDs))
		for _, id := range input.BudgetIDs {
			if c.Budget(id) == nil {
				return budgetNotFound()
			}
			ids[id] = struct{}{}
		}
		removed := c.RemoveBudgets(ids)
		output.DetachedCount = detachBudgets(c, ids, now)
		output.Deleted = cloneBudgets(removed)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Budgets deleted", "count", len(output.Deleted), "detached", output.DetachedCount)
	return output, nil
}

// DeleteBudgetSeriesInput represents the input for deleting a recurring budget series.
type DeleteBudgetSeriesInput struct {
	ParentBudgetID string
}

// DeleteBudgetSeriesUseCase deletes every sibling of a recurring budget.
type DeleteBudgetSeriesUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
}

// NewDeleteBudgetSeriesUseCase creates a new DeleteBudgetSeriesUseCase instance.
func NewDeleteBudgetSeriesUseCase(store adapter.EntityStore, clock adapter.Clock) *DeleteBudgetSeriesUseCase {
	return &DeleteBudgetSeriesUseCase{
		store: store,
		clock: clock,
	}
}

// Execute removes every budget sharing the parent id.
func (uc *DeleteBudgetSeriesUseCase) Execute(ctx context.Context, input DeleteBudgetSeriesInput) (*DeleteBudgetsOutput, error) {
	now := uc.clock.Now()
	output := &DeleteBudgetsOutput{}

	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		ids := map[string]struct{}{}
		for _, b := range c.Budgets {
			if b.ParentBudgetID != nil && *b.ParentBudgetID == input.ParentBudgetID {
				ids[b.ID] = struct{}{}
			}
		}
		if len(ids) == 0 {
			return budgetNotFound()
		}
		removed := c.RemoveBudgets(ids)
		output.DetachedCount = detachBudgets(c, ids, now)
		output.Deleted = cloneBudgets(removed)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Budget series deleted", "parent_id", input.ParentBudgetID, "count", len(output.Deleted))
	return output, nil
}
