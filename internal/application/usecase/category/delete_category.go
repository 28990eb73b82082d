// Package category contains category-related use cases.
package category

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID string
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	store adapter.EntityStore
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(store adapter.EntityStore) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		store: store,
	}
}

// Execute performs the category deletion. A category still referenced by a
// transaction or a budget cannot be deleted.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		idx := -1
		for i, cat := range c.Categories {
			if cat.ID == input.CategoryID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return categoryNotFound()
		}
		if inUse(c, input.CategoryID) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				"category is used by transactions or budgets",
				domainerror.ErrCategoryInUse,
			)
		}
		c.Categories = append(c.Categories[:idx], c.Categories[idx+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Category deleted", "id", input.CategoryID)
	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}

func inUse(c *entity.Collections, id string) bool {
	for _, t := range c.Transactions {
		if t.CategoryID == id {
			return true
		}
	}
	for _, b := range c.Budgets {
		if b.Category == id {
			return true
		}
	}
	return false
}
