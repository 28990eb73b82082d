// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
	Type entity.CategoryType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
	ids   adapter.IDGenerator
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(store adapter.EntityStore, clock adapter.Clock, ids adapter.IDGenerator) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		store: store,
		clock: clock,
		ids:   ids,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	// Validate category type
	if !input.Type.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'Expense' or 'Income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	now := uc.clock.Now()
	category := &entity.Category{
		ID:        uc.ids.NewID(),
		Name:      name,
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		if err := ensureUniqueName(c, name, input.Type, ""); err != nil {
			return err
		}
		c.Categories = append(c.Categories, category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Category created", "id", category.ID, "type", category.Type)
	return &CreateCategoryOutput{
		Category: category.Clone(),
	}, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryName,
			"category name is required",
			domainerror.ErrMissingCategoryName,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

// ensureUniqueName rejects a name already used by another category of the same type.
func ensureUniqueName(c *entity.Collections, name string, categoryType entity.CategoryType, selfID string) error {
	if existing := c.CategoryByName(name, &categoryType); existing != nil && existing.ID != selfID {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}
	return nil
}

func categoryNotFound() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}
