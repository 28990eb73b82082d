// Package budget contains budget-related use cases.
package budget

import (
	"strings"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// resolveCategory turns a category reference from a payload into the stored form.
// ref may be a category id, a category name, or "all".
func resolveCategory(c *entity.Collections, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"budget category is required",
			domainerror.ErrValidation,
		)
	}
	if strings.EqualFold(ref, entity.BudgetCategoryAll) {
		return entity.BudgetCategoryAll, nil
	}
	if cat := c.Category(ref); cat != nil {
		return cat.ID, nil
	}
	expense := entity.CategoryTypeExpense
	if cat := c.CategoryByName(ref, &expense); cat != nil {
		return cat.ID, nil
	}
	if cat := c.CategoryByName(ref, nil); cat != nil {
		return cat.ID, nil
	}
	return "", domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetCategoryNotFound,
		"category not found",
		domainerror.ErrBudgetCategoryNotFound,
	)
}

// timeframeWindow derives a budget window from a timeframe relative to now.
func timeframeWindow(tf entity.BudgetTimeframe, now time.Time, start, end *time.Time) (*time.Time, *time.Time, error) {
	switch tf {
	case entity.BudgetTimeframeWeekly:
		s := valueobject.DayOf(now)
		e := s.AddDate(0, 0, 7)
		return &s, &e, nil
	case entity.BudgetTimeframeMonthly, "":
		s, e := valueobject.StartOfMonth(now), valueobject.EndOfMonth(now)
		return &s, &e, nil
	case entity.BudgetTimeframeYearly:
		s, e := valueobject.StartOfYear(now), valueobject.EndOfYear(now)
		return &s, &e, nil
	case entity.BudgetTimeframeCustom:
		if err := checkDateRange(start, end); err != nil {
			return nil, nil, err
		}
		return start, end, nil
	default:
		return nil, nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetTimeframe,
			"timeframe must be 'weekly', 'monthly', 'yearly' or 'custom'",
			domainerror.ErrInvalidBudgetTimeframe,
		)
	}
}

func checkDateRange(start, end *time.Time) error {
	if start != nil && end != nil && valueobject.DayOf(*end).Before(valueobject.DayOf(*start)) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDateRange,
			"end date cannot be earlier than start date",
			domainerror.ErrInvalidBudgetDateRange,
		)
	}
	return nil
}

func checkBudgetType(t entity.BudgetType) (entity.BudgetType, error) {
	switch t {
	case "":
		return entity.BudgetTypeAddedOnly, nil
	case entity.BudgetTypeAddedOnly, entity.BudgetTypeAllTransactions:
		return t, nil
	default:
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetType,
			"budget type must be 'added_only' or 'all_transactions'",
			domainerror.ErrInvalidBudgetType,
		)
	}
}

func budgetNotFound() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}

// detachBudgets clears the budget reference of every transaction pointing at a budget in ids.
func detachBudgets(c *entity.Collections, ids map[string]struct{}, now time.Time) int {
	detached := 0
	for _, t := range c.Transactions {
		if !t.HasBudget() {
			continue
		}
		if _, ok := ids[*t.BudgetID]; ok {
			t.BudgetID = nil
			t.UpdatedAt = now
			detached++
		}
	}
	return detached
}

func cloneBudgets(budgets []*entity.Budget) []*entity.Budget {
	out := make([]*entity.Budget, len(budgets))
	for i, b := range budgets {
		out[i] = b.Clone()
	}
	return out
}
