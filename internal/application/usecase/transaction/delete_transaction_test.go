package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addBudget(t, "b-food", "cat-food", "100", "0", entity.BudgetTypeAddedOnly)

	created, err := f.create.Execute(ctx, CreateTransactionInput{expensePayload("35", strPtr("b-food"))})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	out, err := f.delete.Execute(ctx, DeleteTransactionInput{TransactionID: created.Transactions[0].ID})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if out.Transaction.ID != created.Transactions[0].ID {
		t.Errorf("deleted %s", out.Transaction.ID)
	}
	assertDecimal(t, "balance", f.balance(t, "acc-1"), "1000")
	assertDecimal(t, "spent", f.spent(t, "b-food"), "0")
	if len(f.snapshot(t).Transactions) != 0 {
		t.Error("transaction still listed")
	}

	if _, err := f.delete.Execute(ctx, DeleteTransactionInput{TransactionID: created.Transactions[0].ID}); !errors.Is(err, domainerror.ErrNotFound) {
		t.Errorf("second delete: error = %v, want not found", err)
	}
}

func TestDeleteThenRecreateRestoresState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addBudget(t, "b-food", "cat-food", "100", "0", entity.BudgetTypeAddedOnly)
	f.addBudget(t, "b-all", entity.BudgetCategoryAll, "1000", "0", entity.BudgetTypeAllTransactions)

	payload := expensePayload("42.10", strPtr("b-food"))
	created, err := f.create.Execute(ctx, CreateTransactionInput{payload})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	before := f.snapshot(t)

	if _, err := f.delete.Execute(ctx, DeleteTransactionInput{TransactionID: created.Transactions[0].ID}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	recreated, err := f.create.Execute(ctx, CreateTransactionInput{payload})
	if err != nil {
		t.Fatalf("recreate failed: %v", err)
	}
	if recreated.Transactions[0].ID == created.Transactions[0].ID {
		t.Error("recreated transaction reused the old id")
	}

	after := f.snapshot(t)
	if !after.Account("acc-1").Balance.Equal(before.Account("acc-1").Balance) {
		t.Errorf("balance %s, want %s", after.Account("acc-1").Balance, before.Account("acc-1").Balance)
	}
	for _, b := range before.Budgets {
		if !after.Budget(b.ID).Spent.Equal(b.Spent) {
			t.Errorf("budget %s spent %s, want %s", b.ID, after.Budget(b.ID).Spent, b.Spent)
		}
	}
}

func TestBulkTransactions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addBudget(t, "b-food", "cat-food", "500", "0", entity.BudgetTypeAddedOnly)
	f.addBudget(t, "b-rent", "cat-rent", "500", "0", entity.BudgetTypeAllTransactions)

	var ids []string
	for _, amount := range []string{"10", "20", "30"} {
		out, err := f.create.Execute(ctx, CreateTransactionInput{expensePayload(amount, strPtr("b-food"))})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		ids = append(ids, out.Transactions[0].ID)
	}

	categorize := NewBulkCategorizeTransactionsUseCase(f.store, f.clock)
	out, err := categorize.Execute(ctx, BulkCategorizeTransactionsInput{TransactionIDs: ids[:2], CategoryID: "cat-rent"})
	if err != nil {
		t.Fatalf("categorize failed: %v", err)
	}
	if out.UpdatedCount != 2 || out.DetachedCount != 2 {
		t.Errorf("updated %d, detached %d", out.UpdatedCount, out.DetachedCount)
	}
	assertDecimal(t, "food spent", f.spent(t, "b-food"), "30")
	assertDecimal(t, "rent spent", f.spent(t, "b-rent"), "30")

	bulkDelete := NewBulkDeleteTransactionsUseCase(f.store, f.clock)
	if _, err := bulkDelete.Execute(ctx, BulkDeleteTransactionsInput{TransactionIDs: []string{ids[0], "missing"}}); !errors.Is(err, domainerror.ErrNotFound) {
		t.Fatalf("error = %v, want not found", err)
	}
	if len(f.snapshot(t).Transactions) != 3 {
		t.Fatal("failed bulk delete removed transactions")
	}

	deleted, err := bulkDelete.Execute(ctx, BulkDeleteTransactionsInput{TransactionIDs: ids})
	if err != nil {
		t.Fatalf("bulk delete failed: %v", err)
	}
	if deleted.DeletedCount != 3 {
		t.Errorf("deleted %d", deleted.DeletedCount)
	}
	assertDecimal(t, "balance", f.balance(t, "acc-1"), "1000")
	assertDecimal(t, "food spent", f.spent(t, "b-food"), "0")
	assertDecimal(t, "rent spent", f.spent(t, "b-rent"), "0")

	if _, err := bulkDelete.Execute(ctx, BulkDeleteTransactionsInput{}); !errors.Is(err, domainerror.ErrValidation) {
		t.Errorf("empty ids: error = %v", err)
	}
}
