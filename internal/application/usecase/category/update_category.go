// Package category contains category-related use cases.
package category

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID string
	Name       *string // Optional
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(store adapter.EntityStore, clock adapter.Clock) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		store: store,
		clock: clock,
	}
}

// Execute performs the category update. The type of a category never changes.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	var name string
	if input.Name != nil {
		var err error
		if name, err = validateName(*input.Name); err != nil {
			return nil, err
		}
	}

	output := &UpdateCategoryOutput{}
	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		category := c.Category(input.CategoryID)
		if category == nil {
			return categoryNotFound()
		}
		if input.Name != nil {
			if err := ensureUniqueName(c, name, category.Type, category.ID); err != nil {
				return err
			}
			category.Name = name
		}
		category.UpdatedAt = uc.clock.Now()
		output.Category = category.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Category updated", "id", input.CategoryID)
	return output, nil
}
