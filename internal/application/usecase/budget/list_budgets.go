// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/service"
)

// ListBudgetsInput represents the input for listing budgets. Zero fields do not filter.
type ListBudgetsInput struct {
	CategoryID     string
	ActiveOn       *time.Time
	ParentBudgetID string
}

// BudgetOutput is a budget together with its progress figures.
type BudgetOutput struct {
	*entity.Budget
	Progress entity.BudgetProgress
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetOutput
}

// ListBudgetsUseCase handles listing budgets logic.
type ListBudgetsUseCase struct {
	store adapter.EntityStore
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(store adapter.EntityStore) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{store: store}
}

// Execute lists budgets in insertion order.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	output := &ListBudgetsOutput{Budgets: []*BudgetOutput{}}
	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		for _, b := range c.Budgets {
			if input.CategoryID != "" && !service.CoversCategory(b, input.CategoryID) {
				continue
			}
			if input.ActiveOn != nil && !service.CoversWindow(b, *input.ActiveOn) {
				continue
			}
			if input.ParentBudgetID != "" && (b.ParentBudgetID == nil || *b.ParentBudgetID != input.ParentBudgetID) {
				continue
			}
			output.Budgets = append(output.Budgets, &BudgetOutput{Budget: b.Clone(), Progress: b.Progress()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// GetBudgetProgressInput represents the input for a budget's progress.
type GetBudgetProgressInput struct {
	BudgetID string
}

// GetBudgetProgressUseCase reports amount, spent, remaining and percentage of one budget.
type GetBudgetProgressUseCase struct {
	store adapter.EntityStore
}

// NewGetBudgetProgressUseCase creates a new GetBudgetProgressUseCase instance.
func NewGetBudgetProgressUseCase(store adapter.EntityStore) *GetBudgetProgressUseCase {
	return &GetBudgetProgressUseCase{store: store}
}

// Execute returns the budget with its progress.
func (uc *GetBudgetProgressUseCase) Execute(ctx context.Context, input GetBudgetProgressInput) (*BudgetOutput, error) {
	var output *BudgetOutput
	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		b := c.Budget(input.BudgetID)
		if b == nil {
			return budgetNotFound()
		}
		output = &BudgetOutput{Budget: b.Clone(), Progress: b.Progress()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
