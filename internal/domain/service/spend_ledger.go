package service

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Counts reports whether t contributes to b's spent total.
// Only expenses inside the budget's category and window count; added_only budgets
// further require the transaction to be attributed to them.
func Counts(b *entity.Budget, t *entity.Transaction) bool {
	if !t.IsExpense() {
		return false
	}
	if !Covers(b, t.Date, t.CategoryID) {
		return false
	}
	if b.Effective() == entity.BudgetTypeAddedOnly {
		return t.HasBudget() && *t.BudgetID == b.ID
	}
	return true
}

// Recompute returns the spent total of b derived from scratch from transactions.
// This is the ground truth the incremental path must agree with.
func Recompute(b *entity.Budget, transactions []*entity.Transaction) decimal.Decimal {
	spent := decimal.Zero
	for _, t := range transactions {
		if Counts(b, t) {
			spent = spent.Add(t.Amount)
		}
	}
	return spent
}

// ApplySpend adds t's amount to every budget it counts toward when sign is positive,
// or removes it when sign is negative. It returns the budgets it changed.
func ApplySpend(budgets []*entity.Budget, t *entity.Transaction, sign int) []*entity.Budget {
	var touched []*entity.Budget
	delta := t.Amount
	if sign < 0 {
		delta = delta.Neg()
	}
	for _, b := range budgets {
		if Counts(b, t) {
			b.Spent = b.Spent.Add(delta)
			touched = append(touched, b)
		}
	}
	return touched
}

// CheckHeadroom rejects an attributed spend that leaves b over its amount.
// baseline is b's spent before the whole operation started; a budget that was
// already over and did not get worse is accepted so that neutral edits never fail.
// requested is the amount the operation added on top of before.
func CheckHeadroom(b *entity.Budget, baseline, before, requested decimal.Decimal) error {
	if !b.Spent.GreaterThan(b.Amount) {
		return nil
	}
	if !b.Spent.GreaterThan(baseline) {
		return nil
	}
	return &domainerror.BudgetExceededError{
		BudgetID:   b.ID,
		BudgetName: b.Name,
		Amount:     b.Amount,
		Spent:      before,
		Requested:  requested,
		Remaining:  b.Amount.Sub(before),
	}
}

// RepairSpent recomputes every budget in budgets and returns those whose spent changed.
func RepairSpent(budgets []*entity.Budget, transactions []*entity.Transaction) []*entity.Budget {
	var changed []*entity.Budget
	for _, b := range budgets {
		spent := Recompute(b, transactions)
		if !spent.Equal(b.Spent) {
			b.Spent = spent
			changed = append(changed, b)
		}
	}
	return changed
}
