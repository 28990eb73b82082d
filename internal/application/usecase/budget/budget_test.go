package budget

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

var testNow = time.Date(2025, time.January, 20, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	store adapter.EntityStore
	clock *adapters.FixedClock
	ids   *adapters.SequentialIDs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: persistence.NewEntityStore(blobstore.NewMemoryStore(), "finance-tracker-"),
		clock: &adapters.FixedClock{T: testNow},
		ids:   &adapters.SequentialIDs{Prefix: "b"},
	}
	f.seed(t, func(c *entity.Collections) {
		c.Accounts = append(c.Accounts, &entity.Account{ID: "acc-1", Name: "Checking", Type: entity.AccountTypeBank, Balance: dec("1000"), Currency: "USD"})
		c.Categories = append(c.Categories,
			&entity.Category{ID: "cat-food", Name: "Food", Type: entity.CategoryTypeExpense},
			&entity.Category{ID: "cat-rent", Name: "Rent", Type: entity.CategoryTypeExpense},
		)
	})
	return f
}

func (f *fixture) seed(t *testing.T, fn func(c *entity.Collections)) {
	t.Helper()
	if err := f.store.Mutate(context.Background(), func(_ context.Context, c *entity.Collections) error {
		fn(c)
		return nil
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func (f *fixture) snapshot(t *testing.T) *entity.Collections {
	t.Helper()
	var out *entity.Collections
	_ = f.store.Read(context.Background(), func(c *entity.Collections) error {
		out = c.Clone()
		return nil
	})
	return out
}

func (f *fixture) addExpense(t *testing.T, id, category, amount string, date time.Time, budgetID *string) {
	t.Helper()
	f.seed(t, func(c *entity.Collections) {
		c.Transactions = append(c.Transactions, &entity.Transaction{
			ID: id, Date: date, AccountID: "acc-1", Type: entity.TransactionTypeExpense,
			CategoryID: category, Amount: dec(amount), BudgetID: budgetID,
		})
	})
}

func TestCreateBudget(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		input         CreateBudgetInput
		expectedStart time.Time
		expectedEnd   time.Time
		expectedCat   string
		expectedSpent string
	}{
		{
			name:          "monthly by category name",
			input:         CreateBudgetInput{Name: "Groceries", Category: "food", Amount: dec("300"), Timeframe: entity.BudgetTimeframeMonthly},
			expectedStart: day(time.January, 1), expectedEnd: day(time.February, 1).Add(-time.Nanosecond),
			expectedCat: "cat-food", expectedSpent: "0",
		},
		{
			name:          "weekly from today",
			input:         CreateBudgetInput{Name: "Week", Category: "cat-food", Amount: dec("50"), Timeframe: entity.BudgetTimeframeWeekly},
			expectedStart: day(time.January, 20), expectedEnd: day(time.January, 27),
			expectedCat: "cat-food", expectedSpent: "0",
		},
		{
			name:          "yearly all categories counts history",
			input:         CreateBudgetInput{Name: "Year", Category: "all", Amount: dec("5000"), Timeframe: entity.BudgetTimeframeYearly, BudgetType: entity.BudgetTypeAllTransactions},
			expectedStart: day(time.January, 1), expectedEnd: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
			expectedCat: entity.BudgetCategoryAll, expectedSpent: "70",
		},
		{
			name:          "custom all_transactions counts matching history",
			input:         CreateBudgetInput{Name: "Custom", Category: "Food", Amount: dec("100"), Timeframe: entity.BudgetTimeframeCustom, StartDate: ptr(day(time.January, 5)), EndDate: ptr(day(time.January, 10)), BudgetType: entity.BudgetTypeAllTransactions},
			expectedStart: day(time.January, 5), expectedEnd: day(time.January, 10),
			expectedCat: "cat-food", expectedSpent: "30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.addExpense(t, "t1", "cat-food", "30", day(time.January, 10), nil)
			f.addExpense(t, "t2", "cat-rent", "40", day(time.January, 12), nil)

			out, err := NewCreateBudgetUseCase(f.store, f.clock, f.ids).Execute(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			b := out.Budgets[0]
			if !b.StartDate.Equal(tt.expectedStart) || !b.EndDate.Equal(tt.expectedEnd) {
				t.Errorf("window = %s..%s, want %s..%s", b.StartDate, b.EndDate, tt.expectedStart, tt.expectedEnd)
			}
			if b.Category != tt.expectedCat {
				t.Errorf("category = %q, want %q", b.Category, tt.expectedCat)
			}
			if !b.Spent.Equal(dec(tt.expectedSpent)) {
				t.Errorf("spent = %s, want %s", b.Spent, tt.expectedSpent)
			}
		})
	}
}

func TestCreateBudgetRejections(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateBudgetInput
		expectedErr error
	}{
		{name: "missing name", input: CreateBudgetInput{Category: "all", Amount: dec("10")}, expectedErr: domainerror.ErrMissingBudgetName},
		{name: "zero amount", input: CreateBudgetInput{Name: "x", Category: "all", Amount: dec("0")}, expectedErr: domainerror.ErrInvalidBudgetAmount},
		{name: "unknown category", input: CreateBudgetInput{Name: "x", Category: "Travel", Amount: dec("10")}, expectedErr: domainerror.ErrBudgetCategoryNotFound},
		{name: "bad type", input: CreateBudgetInput{Name: "x", Category: "all", Amount: dec("10"), BudgetType: "some"}, expectedErr: domainerror.ErrInvalidBudgetType},
		{name: "bad timeframe", input: CreateBudgetInput{Name: "x", Category: "all", Amount: dec("10"), Timeframe: "daily"}, expectedErr: domainerror.ErrInvalidBudgetTimeframe},
		{name: "inverted range", input: CreateBudgetInput{Name: "x", Category: "all", Amount: dec("10"), Timeframe: entity.BudgetTimeframeCustom, StartDate: ptr(day(time.March, 1)), EndDate: ptr(day(time.February, 1))}, expectedErr: domainerror.ErrInvalidBudgetDateRange},
		{name: "recurring without months", input: CreateBudgetInput{Name: "x", Category: "all", Amount: dec("10"), IsRecurring: true}, expectedErr: domainerror.ErrInvalidNumberOfMonths},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := NewCreateBudgetUseCase(f.store, f.clock, f.ids).Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("error = %v, want %v", err, tt.expectedErr)
			}
			if len(f.snapshot(t).Budgets) != 0 {
				t.Error("rejected create stored a budget")
			}
		})
	}
}

func TestCreateRecurringBudget(t *testing.T) {
	f := newFixture(t)
	out, err := NewCreateBudgetUseCase(f.store, f.clock, f.ids).Execute(context.Background(), CreateBudgetInput{
		Name: "Groceries", Category: "cat-food", Amount: dec("300"),
		IsRecurring: true, NumberOfMonths: 3, StartDate: ptr(day(time.January, 1)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Budgets) != 3 {
		t.Fatalf("created %d budgets, want 3", len(out.Budgets))
	}

	parent := out.Budgets[0].ParentBudgetID
	months := []time.Month{time.January, time.February, time.March}
	for i, b := range out.Budgets {
		if b.ParentBudgetID == nil || *b.ParentBudgetID != *parent {
			t.Errorf("budget %d does not share the parent id", i)
		}
		if b.StartDate.Month() != months[i] || b.EndDate.Month() != months[i] {
			t.Errorf("budget %d window = %s..%s", i, b.StartDate, b.EndDate)
		}
		if !b.Spent.IsZero() {
			t.Errorf("budget %d spent = %s", i, b.Spent)
		}
	}

	series, err := NewDeleteBudgetSeriesUseCase(f.store, f.clock).Execute(context.Background(), DeleteBudgetSeriesInput{ParentBudgetID: *parent})
	if err != nil {
		t.Fatalf("delete series failed: %v", err)
	}
	if len(series.Deleted) != 3 || len(f.snapshot(t).Budgets) != 0 {
		t.Errorf("series delete removed %d budgets", len(series.Deleted))
	}
}

func TestUpdateBudget(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, func(c *entity.Collections) {
		c.Budgets = append(c.Budgets, &entity.Budget{
			ID: "b-food", Name: "Food", Category: "cat-food", Amount: dec("200"), Spent: dec("50"),
			StartDate: ptr(day(time.January, 1)), EndDate: ptr(day(time.January, 31)), BudgetType: entity.BudgetTypeAddedOnly,
		})
	})
	f.addExpense(t, "t1", "cat-food", "20", day(time.January, 5), ptr("b-food"))
	f.addExpense(t, "t2", "cat-food", "30", day(time.January, 25), ptr("b-food"))
	f.addExpense(t, "t3", "cat-food", "15", day(time.January, 26), nil)

	uc := NewUpdateBudgetUseCase(f.store, f.clock)
	out, err := uc.Execute(ctx, UpdateBudgetInput{ID: "b-food", Name: ptr("Food Jan"), EndDate: ptr(day(time.January, 20))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DetachedCount != 1 {
		t.Errorf("detached = %d, want 1", out.DetachedCount)
	}
	if !out.Budget.Spent.Equal(dec("20")) || out.Budget.Name != "Food Jan" {
		t.Errorf("budget = %s spent %s", out.Budget.Name, out.Budget.Spent)
	}
	if f.snapshot(t).Transaction("t2").HasBudget() {
		t.Error("t2 should have been detached")
	}

	allTx := entity.BudgetTypeAllTransactions
	out, err = uc.Execute(ctx, UpdateBudgetInput{ID: "b-food", EndDate: ptr(day(time.January, 31)), BudgetType: &allTx})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Budget.Spent.Equal(dec("65")) {
		t.Errorf("spent after switching type = %s, want 65", out.Budget.Spent)
	}

	if _, err := uc.Execute(ctx, UpdateBudgetInput{ID: "b-food", Amount: ptr(dec("-1"))}); !errors.Is(err, domainerror.ErrInvalidBudgetAmount) {
		t.Errorf("negative amount: %v", err)
	}
	if _, err := uc.Execute(ctx, UpdateBudgetInput{ID: "missing"}); !errors.Is(err, domainerror.ErrNotFound) {
		t.Errorf("unknown budget: %v", err)
	}
}

func TestDeleteBudgetsClearsReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, func(c *entity.Collections) {
		c.Budgets = append(c.Budgets,
			&entity.Budget{ID: "b1", Name: "One", Category: "cat-food", Amount: dec("100"), Spent: dec("10")},
			&entity.Budget{ID: "b2", Name: "Two", Category: "cat-rent", Amount: dec("100")},
		)
	})
	f.addExpense(t, "t1", "cat-food", "10", day(time.January, 5), ptr("b1"))

	uc := NewDeleteBudgetsUseCase(f.store, f.clock)
	if _, err := uc.Execute(ctx, DeleteBudgetsInput{BudgetIDs: []string{"b1", "nope"}}); !errors.Is(err, domainerror.ErrNotFound) {
		t.Fatalf("error = %v, want not found", err)
	}
	if len(f.snapshot(t).Budgets) != 2 {
		t.Fatal("failed delete removed budgets")
	}

	out, err := uc.Execute(ctx, DeleteBudgetsInput{BudgetIDs: []string{"b1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Deleted) != 1 || out.DetachedCount != 1 {
		t.Errorf("deleted %d, detached %d", len(out.Deleted), out.DetachedCount)
	}
	snap := f.snapshot(t)
	if snap.Transaction("t1").HasBudget() {
		t.Error("transaction still references the deleted budget")
	}
	if !snap.Account("acc-1").Balance.Equal(dec("1000")) {
		t.Error("deleting a budget must not move balances")
	}
}

func TestRecomputeBudget(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, func(c *entity.Collections) {
		c.Budgets = append(c.Budgets,
			&entity.Budget{ID: "b1", Name: "One", Category: "cat-food", Amount: dec("100"), Spent: dec("99"), BudgetType: entity.BudgetTypeAddedOnly},
			&entity.Budget{ID: "b2", Name: "Two", Category: "all", Amount: dec("100"), Spent: dec("25"), BudgetType: entity.BudgetTypeAllTransactions},
		)
	})
	f.addExpense(t, "t1", "cat-food", "25", day(time.January, 5), ptr("b1"))

	uc := NewRecomputeBudgetUseCase(f.store, f.clock)
	out, err := uc.Execute(ctx, RecomputeBudgetInput{BudgetID: "b1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Changed) != 1 || !out.Changed[0].Spent.Equal(dec("25")) {
		t.Fatalf("changed = %+v", out.Changed)
	}

	out, err = uc.Execute(ctx, RecomputeBudgetInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Changed) != 0 {
		t.Errorf("second pass changed %d budgets", len(out.Changed))
	}

	if _, err := uc.Execute(ctx, RecomputeBudgetInput{BudgetID: "nope"}); !errors.Is(err, domainerror.ErrNotFound) {
		t.Errorf("unknown budget: %v", err)
	}
}

func TestBudgetQueries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, func(c *entity.Collections) {
		c.Budgets = append(c.Budgets,
			&entity.Budget{ID: "b1", Name: "Food", Category: "cat-food", Amount: dec("200"), Spent: dec("50"), StartDate: ptr(day(time.January, 1)), EndDate: ptr(day(time.January, 31))},
			&entity.Budget{ID: "b2", Name: "Full", Category: "cat-food", Amount: dec("50"), Spent: dec("50")},
			&entity.Budget{ID: "b3", Name: "Feb", Category: "all", Amount: dec("50"), StartDate: ptr(day(time.February, 1))},
		)
	})

	candidates, err := NewFindCandidatesUseCase(f.store).Execute(ctx, FindCandidatesInput{Date: day(time.January, 15), CategoryID: "cat-food"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates.Budgets) != 1 || candidates.Budgets[0].ID != "b1" {
		t.Errorf("candidates = %v", candidates.Budgets)
	}

	listed, err := NewListBudgetsUseCase(f.store).Execute(ctx, ListBudgetsInput{ActiveOn: ptr(day(time.February, 3))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed.Budgets) != 2 {
		t.Errorf("active in february: %d budgets, want 2", len(listed.Budgets))
	}

	progress, err := NewGetBudgetProgressUseCase(f.store).Execute(ctx, GetBudgetProgressInput{BudgetID: "b1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !progress.Progress.Remaining.Equal(dec("150")) || !progress.Progress.Percentage.Equal(dec("25")) {
		t.Errorf("progress = %+v", progress.Progress)
	}
}
