package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/blobstore"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

type fixture struct {
	store  adapter.EntityStore
	clock  *adapters.FixedClock
	create *CreateCategoryUseCase
}

func newFixture() *fixture {
	store := persistence.NewEntityStore(blobstore.NewMemoryStore(), "finance-tracker-")
	clock := &adapters.FixedClock{T: time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)}
	return &fixture{
		store:  store,
		clock:  clock,
		create: NewCreateCategoryUseCase(store, clock, &adapters.SequentialIDs{Prefix: "cat"}),
	}
}

func (f *fixture) mustCreate(t *testing.T, name string, typ entity.CategoryType) *entity.Category {
	t.Helper()
	out, err := f.create.Execute(context.Background(), CreateCategoryInput{Name: name, Type: typ})
	if err != nil {
		t.Fatalf("create %q failed: %v", name, err)
	}
	return out.Category
}

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateCategoryInput
		expectedErr error
	}{
		{name: "new name", input: CreateCategoryInput{Name: "Travel", Type: entity.CategoryTypeExpense}},
		{name: "same name other type", input: CreateCategoryInput{Name: "food", Type: entity.CategoryTypeIncome}},
		{name: "duplicate ignoring case and spaces", input: CreateCategoryInput{Name: "  FOOD ", Type: entity.CategoryTypeExpense}, expectedErr: domainerror.ErrDuplicateName},
		{name: "empty name", input: CreateCategoryInput{Name: " ", Type: entity.CategoryTypeExpense}, expectedErr: domainerror.ErrMissingCategoryName},
		{name: "name too long", input: CreateCategoryInput{Name: string(make([]byte, MaxCategoryNameLength+1)), Type: entity.CategoryTypeExpense}, expectedErr: domainerror.ErrCategoryNameTooLong},
		{name: "bad type", input: CreateCategoryInput{Name: "Gifts", Type: "Transfer"}, expectedErr: domainerror.ErrInvalidCategoryType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.mustCreate(t, "Food", entity.CategoryTypeExpense)

			_, err := f.create.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("error = %v, want %v", err, tt.expectedErr)
			}
		})
	}
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	food := f.mustCreate(t, "Food", entity.CategoryTypeExpense)
	f.mustCreate(t, "Rent", entity.CategoryTypeExpense)
	uc := NewUpdateCategoryUseCase(f.store, f.clock)

	name := "rent"
	if _, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: food.ID, Name: &name}); !errors.Is(err, domainerror.ErrCategoryNameExists) {
		t.Fatalf("error = %v, want duplicate", err)
	}

	name = "FOOD"
	out, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: food.ID, Name: &name})
	if err != nil {
		t.Fatalf("renaming to own name with other case: %v", err)
	}
	if out.Category.Name != "FOOD" {
		t.Errorf("name = %q", out.Category.Name)
	}

	if _, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: "nope", Name: &name}); !errors.Is(err, domainerror.ErrNotFound) {
		t.Errorf("unknown category: %v", err)
	}
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	byTx := f.mustCreate(t, "Food", entity.CategoryTypeExpense)
	byBudget := f.mustCreate(t, "Rent", entity.CategoryTypeExpense)
	free := f.mustCreate(t, "Gifts", entity.CategoryTypeExpense)

	if err := f.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		c.Transactions = append(c.Transactions, &entity.Transaction{ID: "t1", CategoryID: byTx.ID, Amount: decimal.NewFromInt(5)})
		c.Budgets = append(c.Budgets, &entity.Budget{ID: "b1", Category: byBudget.ID, Amount: decimal.NewFromInt(5)})
		return nil
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := NewDeleteCategoryUseCase(f.store)
	tests := []struct {
		name        string
		id          string
		expectedErr error
	}{
		{name: "referenced by transaction", id: byTx.ID, expectedErr: domainerror.ErrCategoryInUse},
		{name: "referenced by budget", id: byBudget.ID, expectedErr: domainerror.ErrCategoryInUse},
		{name: "unused", id: free.ID},
		{name: "already deleted", id: free.ID, expectedErr: domainerror.ErrCategoryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: tt.id})
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("error = %v, want %v", err, tt.expectedErr)
			}
		})
	}
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	food := f.mustCreate(t, "Food", entity.CategoryTypeExpense)
	f.mustCreate(t, "Salary", entity.CategoryTypeIncome)

	if err := f.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		c.Transactions = append(c.Transactions,
			&entity.Transaction{ID: "t1", CategoryID: food.ID, Amount: decimal.NewFromInt(10), Date: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)},
			&entity.Transaction{ID: "t2", CategoryID: food.ID, Amount: decimal.NewFromInt(7), Date: time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)},
			&entity.Transaction{ID: "t3", CategoryID: food.ID, Amount: decimal.NewFromInt(100), Date: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)},
		)
		return nil
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	expense := entity.CategoryTypeExpense
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	out, err := NewListCategoriesUseCase(f.store).Execute(ctx, ListCategoriesInput{CategoryType: &expense, StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Categories) != 1 {
		t.Fatalf("got %d categories, want 1", len(out.Categories))
	}
	got := out.Categories[0]
	if got.TransactionCount != 2 || !got.PeriodTotal.Equal(decimal.NewFromInt(17)) {
		t.Errorf("stats = %d / %s, want 2 / 17", got.TransactionCount, got.PeriodTotal)
	}

	all, err := NewListCategoriesUseCase(f.store).Execute(ctx, ListCategoriesInput{})
	if err != nil || len(all.Categories) != 2 {
		t.Fatalf("list all = %v, %v", all, err)
	}
}
