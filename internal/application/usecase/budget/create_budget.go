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

// CreateBudgetInput represents the input for budget creation.
// Category may be a category id, a category name, or "all".
type CreateBudgetInput struct {
	Name           string
	Category       string
	Amount         decimal.Decimal
	Timeframe      entity.BudgetTimeframe
	StartDate      *time.Time
	EndDate        *time.Time
	BudgetType     entity.BudgetType
	IsRecurring    bool
	NumberOfMonths int
}

// CreateBudgetOutput represents the output of budget creation.
// A recurring budget yields one sibling per month.
type CreateBudgetOutput struct {
	Budgets []*entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
	ids   adapter.IDGenerator
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(store adapter.EntityStore, clock adapter.Clock, ids adapter.IDGenerator) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		store: store,
		clock: clock,
		ids:   ids,
	}
}

// Execute performs the budget creation. Each created budget starts with the spent
// total its existing matching transactions imply.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetName,
			"budget name is required",
			domainerror.ErrMissingBudgetName,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	budgetType, err := checkBudgetType(input.BudgetType)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	output := &CreateBudgetOutput{}

	err = uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		category, err := resolveCategory(c, input.Category)
		if err != nil {
			return err
		}

		template := &entity.Budget{
			Name:       name,
			Category:   category,
			Amount:     input.Amount,
			Spent:      decimal.Zero,
			BudgetType: budgetType,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		var created []*entity.Budget
		if input.IsRecurring {
			anchor := now
			if input.StartDate != nil {
				anchor = *input.StartDate
			}
			created, err = service.ExpandBudgets(template, anchor, input.NumberOfMonths, uc.ids.NewID(), uc.ids.NewID)
			if err != nil {
				return err
			}
		} else {
			start, end, err := timeframeWindow(input.Timeframe, now, input.StartDate, input.EndDate)
			if err != nil {
				return err
			}
			template.ID = uc.ids.NewID()
			template.StartDate = start
			template.EndDate = end
			created = []*entity.Budget{template}
		}

		for _, b := range created {
			b.Spent = service.Recompute(b, c.Transactions)
			c.Budgets = append(c.Budgets, b)
		}
		output.Budgets = cloneBudgets(created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Budget created",
		"id", output.Budgets[0].ID,
		"category", output.Budgets[0].Category,
		"count", len(output.Budgets),
	)
	return output, nil
}
