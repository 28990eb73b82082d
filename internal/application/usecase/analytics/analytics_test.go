package analytics

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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seededStore(t *testing.T) adapter.EntityStore {
	t.Helper()
	store := persistence.NewEntityStore(blobstore.NewMemoryStore(), "finance-tracker-")
	tx := func(id string, typ entity.TransactionType, cat, amount string, d time.Time) *entity.Transaction {
		return &entity.Transaction{ID: id, AccountID: "acc-1", Type: typ, CategoryID: cat, Amount: dec(amount), Date: d}
	}
	err := store.Mutate(context.Background(), func(_ context.Context, c *entity.Collections) error {
		c.Categories = append(c.Categories,
			&entity.Category{ID: "food", Name: "Food", Type: entity.CategoryTypeExpense},
			&entity.Category{ID: "rent", Name: "Rent", Type: entity.CategoryTypeExpense},
			&entity.Category{ID: "salary", Name: "Salary", Type: entity.CategoryTypeIncome},
			&entity.Category{ID: "savings", Name: "Savings", Type: entity.CategoryTypeExpense},
		)
		c.Transactions = append(c.Transactions,
			tx("t1", entity.TransactionTypeIncome, "salary", "2000", date(2025, time.January, 1)),
			tx("t2", entity.TransactionTypeExpense, "food", "150", date(2025, time.January, 10)),
			tx("t3", entity.TransactionTypeExpense, "rent", "800", date(2025, time.January, 31)),
			tx("t4", entity.TransactionTypeTransfer, "food", "99", date(2025, time.January, 15)),
			tx("t5", entity.TransactionTypeIncome, "salary", "2500", date(2025, time.March, 1)),
			tx("t6", entity.TransactionTypeExpense, "food", "50", date(2025, time.March, 2)),
			tx("t7", entity.TransactionTypeExpense, "gone", "25", date(2025, time.March, 3)),
			tx("t8", entity.TransactionTypeExpense, "savings", "200", date(2025, time.February, 5)),
			tx("t9", entity.TransactionTypeExpense, "savings", "300", date(2025, time.March, 5)),
		)
		return nil
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return store
}

func TestGeneratePeriodSeries(t *testing.T) {
	tests := []struct {
		name           string
		start, end     time.Time
		granularity    Granularity
		expectedLabels []string
	}{
		{
			name: "monthly across year end", start: date(2024, time.November, 15), end: date(2025, time.January, 2),
			granularity: GranularityMonthly, expectedLabels: []string{"Nov 2024", "Dec 2024", "Jan 2025"},
		},
		{
			name: "weekly starts on monday", start: date(2025, time.March, 5), end: date(2025, time.March, 17),
			granularity: GranularityWeekly, expectedLabels: []string{"W10 2025", "W11 2025", "W12 2025"},
		},
		{
			name: "quarterly", start: date(2025, time.February, 1), end: date(2025, time.July, 1),
			granularity: GranularityQuarterly, expectedLabels: []string{"Q1 2025", "Q2 2025", "Q3 2025"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := GeneratePeriodSeries(tt.start, tt.end, tt.granularity)
			if len(periods) != len(tt.expectedLabels) {
				t.Fatalf("got %d periods, want %d", len(periods), len(tt.expectedLabels))
			}
			for i, p := range periods {
				if p.PeriodLabel != tt.expectedLabels[i] {
					t.Errorf("period %d label = %q, want %q", i, p.PeriodLabel, tt.expectedLabels[i])
				}
				if i > 0 && !p.PeriodStart.Equal(periods[i-1].PeriodEnd.AddDate(0, 0, 1)) {
					t.Errorf("gap between period %d and %d", i-1, i)
				}
			}
		})
	}
}

func TestGetTrendsMonthly(t *testing.T) {
	store := seededStore(t)
	out, err := NewGetTrendsUseCase(store).Execute(context.Background(), GetTrendsInput{
		StartDate: date(2025, time.January, 1), EndDate: date(2025, time.March, 31),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Trends) != 3 {
		t.Fatalf("got %d points, want 3", len(out.Trends))
	}

	expected := []struct{ income, expenses, net string }{
		{"2000", "950", "1050"},
		{"0", "200", "-200"},
		{"2500", "375", "2125"},
	}
	for i, want := range expected {
		p := out.Trends[i]
		if !p.Income.Equal(dec(want.income)) || !p.Expenses.Equal(dec(want.expenses)) || !p.Net.Equal(dec(want.net)) {
			t.Errorf("%s = %s/%s/%s, want %s/%s/%s", p.PeriodLabel, p.Income, p.Expenses, p.Net, want.income, want.expenses, want.net)
		}
	}
	if out.Trends[0].TransactionCount != 4 {
		t.Errorf("january count = %d, want 4", out.Trends[0].TransactionCount)
	}
}

func TestGetTrendsValidation(t *testing.T) {
	uc := NewGetTrendsUseCase(seededStore(t))
	tests := []struct {
		name        string
		input       GetTrendsInput
		expectedErr error
	}{
		{name: "missing dates", input: GetTrendsInput{}, expectedErr: domainerror.ErrMissingDateRange},
		{name: "inverted", input: GetTrendsInput{StartDate: date(2025, time.March, 1), EndDate: date(2025, time.January, 1)}, expectedErr: domainerror.ErrInvalidDateRange},
		{name: "bad granularity", input: GetTrendsInput{StartDate: date(2025, time.January, 1), EndDate: date(2025, time.March, 1), Granularity: "daily"}, expectedErr: domainerror.ErrInvalidGranularity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("error = %v, want %v", err, tt.expectedErr)
			}
		})
	}
}

func TestGetCategoryBreakdown(t *testing.T) {
	store := seededStore(t)
	out, err := NewGetCategoryBreakdownUseCase(store).Execute(context.Background(), GetCategoryBreakdownInput{
		StartDate: date(2025, time.March, 1), EndDate: date(2025, time.March, 31),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.PeriodLabel != "Mar 2025" || !out.Total.Equal(dec("375")) {
		t.Errorf("label %q total %s", out.PeriodLabel, out.Total)
	}

	expected := []struct {
		id, amount, percentage string
	}{
		{"savings", "300", "80"},
		{"food", "50", "13.33"},
		{UncategorizedID, "25", "6.67"},
	}
	if len(out.Categories) != len(expected) {
		t.Fatalf("got %d categories, want %d", len(out.Categories), len(expected))
	}
	for i, want := range expected {
		got := out.Categories[i]
		if got.CategoryID != want.id || !got.Amount.Equal(dec(want.amount)) || !got.Percentage.Equal(dec(want.percentage)) {
			t.Errorf("item %d = %s %s %s%%, want %s %s %s%%", i, got.CategoryID, got.Amount, got.Percentage, want.id, want.amount, want.percentage)
		}
	}

	income, err := NewGetCategoryBreakdownUseCase(store).Execute(context.Background(), GetCategoryBreakdownInput{
		StartDate: date(2025, time.January, 1), EndDate: date(2025, time.March, 31), Type: entity.TransactionTypeIncome,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(income.Categories) != 1 || !income.Categories[0].Percentage.Equal(dec("100")) {
		t.Errorf("income breakdown = %+v", income.Categories)
	}
	if income.PeriodLabel != "Q1 2025" {
		t.Errorf("label = %q", income.PeriodLabel)
	}
}

func TestGetSpendingInsights(t *testing.T) {
	store := seededStore(t)
	clock := &adapters.FixedClock{T: time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)}

	out, err := NewGetSpendingInsightsUseCase(store, clock).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Current.Label != "Mar 2025" || out.Previous.Label != "Feb 2025" {
		t.Errorf("labels = %s / %s", out.Current.Label, out.Previous.Label)
	}
	if !out.ExpensesChange.Equal(dec("87.5")) {
		t.Errorf("expenses change = %s, want 87.5", out.ExpensesChange)
	}
	if !out.IncomeChange.IsZero() {
		t.Errorf("income change with no previous income = %s, want 0", out.IncomeChange)
	}
	if !out.SavingsChange.Equal(dec("50")) {
		t.Errorf("savings change = %s, want 50", out.SavingsChange)
	}
	if !out.Current.Net.Equal(dec("2125")) {
		t.Errorf("net = %s", out.Current.Net)
	}
}

func TestGetDataRange(t *testing.T) {
	output, err := NewGetDataRangeUseCase(seededStore(t)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !output.HasData || output.TotalTransactions != 9 {
		t.Fatalf("output = %+v", output)
	}
	if !output.OldestDate.Equal(date(2025, time.January, 1)) || !output.NewestDate.Equal(date(2025, time.March, 5)) {
		t.Errorf("range = %s..%s", output.OldestDate, output.NewestDate)
	}

	empty := persistence.NewEntityStore(blobstore.NewMemoryStore(), "finance-tracker-")
	output, err = NewGetDataRangeUseCase(empty).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.HasData || output.OldestDate != nil {
		t.Errorf("empty store output = %+v", output)
	}
}
