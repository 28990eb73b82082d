// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/service"
)

// UpdateBudgetInput represents the input for budget update. Nil fields are left unchanged.
type UpdateBudgetInput struct {
	ID         string
	Name       *string
	Category   *string
	Amount     *decimal.Decimal
	StartDate  *time.Time
	EndDate    *time.Time
	BudgetType *entity.BudgetType
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
	// DetachedCount counts attributed transactions the new window or category no longer covers.
	DetachedCount int
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(store adapter.EntityStore, clock adapter.Clock) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		store: store,
		clock: clock,
	}
}

// Execute performs the budget update and recomputes spent from the transactions.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	now := uc.clock.Now()
	output := &UpdateBudgetOutput{}

	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		b := c.Budget(input.ID)
		if b == nil {
			return budgetNotFound()
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return domainerror.NewBudgetError(
					domainerror.ErrCodeMissingBudgetName,
					"budget name is required",
					domainerror.ErrMissingBudgetName,
				)
			}
			b.Name = name
		}
		if input.Amount != nil {
			if input.Amount.IsNegative() {
				return domainerror.NewBudgetError(
					domainerror.ErrCodeInvalidBudgetAmount,
					"budget amount cannot be negative",
					domainerror.ErrInvalidBudgetAmount,
				)
			}
			b.Amount = *input.Amount
		}
		if input.Category != nil {
			category, err := resolveCategory(c, *input.Category)
			if err != nil {
				return err
			}
			b.Category = category
		}
		if input.BudgetType != nil {
			budgetType, err := checkBudgetType(*input.BudgetType)
			if err != nil {
				return err
			}
			b.BudgetType = budgetType
		}
		if input.StartDate != nil {
			b.StartDate = input.StartDate
		}
		if input.EndDate != nil {
			b.EndDate = input.EndDate
		}
		if err := checkDateRange(b.StartDate, b.EndDate); err != nil {
			return err
		}

		for _, t := range c.Transactions {
			if t.HasBudget() && *t.BudgetID == b.ID && !service.Covers(b, t.Date, t.CategoryID) {
				t.BudgetID = nil
				t.UpdatedAt = now
				output.DetachedCount++
			}
		}

		b.Spent = service.Recompute(b, c.Transactions)
		b.UpdatedAt = now
		output.Budget = b.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Budget updated", "id", input.ID, "detached", output.DetachedCount)
	return output, nil
}
