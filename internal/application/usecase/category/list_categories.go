// Package category contains category-related use cases.
package category

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	CategoryType *entity.CategoryType // Optional filter by category type
	StartDate    *time.Time           // Optional start date for statistics
	EndDate      *time.Time           // Optional end date for statistics
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	*entity.Category
	TransactionCount int
	PeriodTotal      decimal.Decimal
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	store adapter.EntityStore
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(store adapter.EntityStore) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		store: store,
	}
}

// Execute performs the category listing. Statistics are only computed when both
// dates are given.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	output := &ListCategoriesOutput{Categories: []*CategoryOutput{}}
	withStats := input.StartDate != nil && input.EndDate != nil

	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		index := make(map[string]*CategoryOutput, len(c.Categories))
		for _, cat := range c.Categories {
			if input.CategoryType != nil && cat.Type != *input.CategoryType {
				continue
			}
			out := &CategoryOutput{Category: cat.Clone(), PeriodTotal: decimal.Zero}
			index[cat.ID] = out
			output.Categories = append(output.Categories, out)
		}
		if !withStats {
			return nil
		}
		for _, t := range c.Transactions {
			out, ok := index[t.CategoryID]
			if !ok || !valueobject.WithinDays(t.Date, input.StartDate, input.EndDate) {
				continue
			}
			out.TransactionCount++
			out.PeriodTotal = out.PeriodTotal.Add(t.Amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
