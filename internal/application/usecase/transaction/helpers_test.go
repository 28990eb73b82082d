package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/blobstore"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

var testNow = time.Date(2025, time.January, 20, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store  adapter.EntityStore
	clock  *adapters.FixedClock
	ids    *adapters.SequentialIDs
	create *CreateTransactionUseCase
	update *UpdateTransactionUseCase
	delete *DeleteTransactionUseCase
	list   *ListTransactionsUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := persistence.NewEntityStore(blobstore.NewMemoryStore(), "finance-tracker-")
	clock := &adapters.FixedClock{T: testNow}
	ids := &adapters.SequentialIDs{Prefix: "id"}
	settings := DefaultSettings()

	f := &fixture{
		store:  store,
		clock:  clock,
		ids:    ids,
		create: NewCreateTransactionUseCase(store, clock, ids, settings),
		update: NewUpdateTransactionUseCase(store, clock, ids, settings),
		delete: NewDeleteTransactionUseCase(store, clock),
		list:   NewListTransactionsUseCase(store),
	}
	f.seed(t, func(c *entity.Collections) {
		c.Accounts = append(c.Accounts,
			&entity.Account{ID: "acc-1", Name: "Checking", Type: entity.AccountTypeBank, Balance: dec("1000"), Currency: "USD"},
			&entity.Account{ID: "acc-2", Name: "Wallet", Type: entity.AccountTypeCash, Balance: dec("50"), Currency: "USD"},
		)
		c.Categories = append(c.Categories,
			&entity.Category{ID: "cat-food", Name: "Food", Type: entity.CategoryTypeExpense},
			&entity.Category{ID: "cat-rent", Name: "Rent", Type: entity.CategoryTypeExpense},
			&entity.Category{ID: "cat-salary", Name: "Salary", Type: entity.CategoryTypeIncome},
		)
	})
	return f
}

func (f *fixture) seed(t *testing.T, fn func(c *entity.Collections)) {
	t.Helper()
	err := f.store.Mutate(context.Background(), func(_ context.Context, c *entity.Collections) error {
		fn(c)
		return nil
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func (f *fixture) addBudget(t *testing.T, id, category, amount, spent string, budgetType entity.BudgetType) {
	t.Helper()
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	f.seed(t, func(c *entity.Collections) {
		c.Budgets = append(c.Budgets, &entity.Budget{
			ID: id, Name: id, Category: category,
			Amount: dec(amount), Spent: dec(spent),
			StartDate: &start, EndDate: &end,
			BudgetType: budgetType,
		})
	})
}

func (f *fixture) snapshot(t *testing.T) *entity.Collections {
	t.Helper()
	var out *entity.Collections
	if err := f.store.Read(context.Background(), func(c *entity.Collections) error {
		out = c.Clone()
		return nil
	}); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return out
}

func (f *fixture) balance(t *testing.T, accountID string) decimal.Decimal {
	t.Helper()
	return f.snapshot(t).Account(accountID).Balance
}

func (f *fixture) spent(t *testing.T, budgetID string) decimal.Decimal {
	t.Helper()
	return f.snapshot(t).Budget(budgetID).Spent
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

func jan(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func expensePayload(amount string, budgetID *string) TransactionPayload {
	return TransactionPayload{
		Date:        jan(10),
		AccountID:   "acc-1",
		Type:        entity.TransactionTypeExpense,
		CategoryID:  "cat-food",
		Description: "groceries",
		Amount:      dec(amount),
		BudgetID:    budgetID,
	}
}

func assertDecimal(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", what, got, want)
	}
}
