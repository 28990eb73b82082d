package transaction

import (
	"context"
	"testing"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for i, amount := range []string{"10", "20", "30", "40", "50"} {
		p := expensePayload(amount, nil)
		p.Date = jan(i + 1)
		if i%2 == 1 {
			p.CategoryID = "cat-rent"
			p.Description = "Rent payment"
		}
		if _, err := f.create.Execute(ctx, CreateTransactionInput{p}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	income := expensePayload("500", nil)
	income.Type = entity.TransactionTypeIncome
	income.CategoryID = "cat-salary"
	if _, err := f.create.Execute(ctx, CreateTransactionInput{income}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	tests := []struct {
		name          string
		input         ListTransactionsInput
		expectedCount int
		expectedTotal int
		expectedNet   string
	}{
		{name: "everything", input: ListTransactionsInput{}, expectedCount: 6, expectedTotal: 6, expectedNet: "350"},
		{name: "by category", input: ListTransactionsInput{Filter: entity.TransactionFilter{CategoryID: strPtr("cat-rent")}}, expectedCount: 2, expectedTotal: 2, expectedNet: "-60"},
		{name: "by date range", input: ListTransactionsInput{Filter: entity.TransactionFilter{StartDate: ptr(jan(2)), EndDate: ptr(jan(3))}}, expectedCount: 2, expectedTotal: 2, expectedNet: "-50"},
		{name: "search", input: ListTransactionsInput{Search: "rent"}, expectedCount: 2, expectedTotal: 2, expectedNet: "-60"},
		{name: "second page", input: ListTransactionsInput{Page: 2, Limit: 4}, expectedCount: 2, expectedTotal: 6, expectedNet: "350"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.list.Execute(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Transactions) != tt.expectedCount {
				t.Errorf("got %d transactions, want %d", len(out.Transactions), tt.expectedCount)
			}
			if out.Pagination.Total != tt.expectedTotal {
				t.Errorf("total = %d, want %d", out.Pagination.Total, tt.expectedTotal)
			}
			assertDecimal(t, "net", out.Totals.NetTotal, tt.expectedNet)
		})
	}
}
