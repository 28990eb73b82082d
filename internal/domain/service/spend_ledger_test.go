package service

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestCounts(t *testing.T) {
	added := monthlyBudget("b1", "cat-food", "100", "0", entity.BudgetTypeAddedOnly)
	allTx := monthlyBudget("b2", "cat-food", "100", "0", entity.BudgetTypeAllTransactions)
	inJan := day(2025, time.January, 10)

	income := expense("t", "10", inJan, "cat-food", strPtr("b1"))
	income.Type = entity.TransactionTypeIncome

	tests := []struct {
		name     string
		budget   *entity.Budget
		tx       *entity.Transaction
		expected bool
	}{
		{name: "added_only attributed", budget: added, tx: expense("t", "10", inJan, "cat-food", strPtr("b1")), expected: true},
		{name: "added_only unattributed", budget: added, tx: expense("t", "10", inJan, "cat-food", nil), expected: false},
		{name: "added_only other budget", budget: added, tx: expense("t", "10", inJan, "cat-food", strPtr("b9")), expected: false},
		{name: "all_transactions unattributed", budget: allTx, tx: expense("t", "10", inJan, "cat-food", nil), expected: true},
		{name: "all_transactions wrong category", budget: allTx, tx: expense("t", "10", inJan, "cat-rent", nil), expected: false},
		{name: "outside window", budget: allTx, tx: expense("t", "10", day(2025, time.March, 1), "cat-food", nil), expected: false},
		{name: "income never counts", budget: added, tx: income, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Counts(tt.budget, tt.tx); got != tt.expected {
				t.Errorf("Counts() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCheckHeadroom(t *testing.T) {
	b := monthlyBudget("b1", "cat-food", "100", "90", entity.BudgetTypeAddedOnly)
	baseline := b.Spent

	tx := expense("t1", "20", day(2025, time.January, 5), "cat-food", strPtr("b1"))
	ApplySpend([]*entity.Budget{b}, tx, 1)

	err := CheckHeadroom(b, baseline, baseline, tx.Amount)
	var exceeded *domainerror.BudgetExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("expected BudgetExceededError, got %v", err)
	}
	if !exceeded.Remaining.Equal(dec("10")) {
		t.Errorf("remaining = %s, want 10", exceeded.Remaining)
	}
	if !errors.Is(err, domainerror.ErrBudgetExceeded) {
		t.Errorf("error should be classified as budget exceeded")
	}

	overspent := monthlyBudget("b2", "cat-food", "100", "120", entity.BudgetTypeAddedOnly)
	if err := CheckHeadroom(overspent, dec("120"), dec("100"), dec("20")); err != nil {
		t.Errorf("neutral edit on an overspent budget should pass, got %v", err)
	}
}

// The incremental path must always agree with a full recompute.
func TestApplySpendMatchesRecompute(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	budgets := []*entity.Budget{
		monthlyBudget("b1", "cat-food", "1000000", "0", entity.BudgetTypeAddedOnly),
		monthlyBudget("b2", entity.BudgetCategoryAll, "1000000", "0", entity.BudgetTypeAllTransactions),
		monthlyBudget("b3", "cat-rent", "1000000", "0", entity.BudgetTypeAllTransactions),
	}
	cats := []string{"cat-food", "cat-rent", "cat-misc"}
	budgetIDs := []*string{nil, strPtr("b1"), strPtr("b2"), strPtr("b3")}

	var live []*entity.Transaction
	for i := 0; i < 500; i++ {
		if len(live) > 0 && rng.Intn(3) == 0 {
			idx := rng.Intn(len(live))
			ApplySpend(budgets, live[idx], -1)
			live = append(live[:idx], live[idx+1:]...)
			continue
		}
		tx := expense("t", "1", day(2025, time.January, 1+rng.Intn(45)), cats[rng.Intn(len(cats))], budgetIDs[rng.Intn(len(budgetIDs))])
		tx.Amount = decimal.New(int64(1+rng.Intn(5000)), -2)
		if rng.Intn(5) == 0 {
			tx.Type = entity.TransactionTypeIncome
		}
		ApplySpend(budgets, tx, 1)
		live = append(live, tx)
	}

	for _, b := range budgets {
		if want := Recompute(b, live); !b.Spent.Equal(want) {
			t.Errorf("budget %s spent = %s, recompute = %s", b.ID, b.Spent, want)
		}
	}
	if changed := RepairSpent(budgets, live); len(changed) != 0 {
		t.Errorf("repair changed %d budgets, want 0", len(changed))
	}
}
