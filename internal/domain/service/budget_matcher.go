package service

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CoversWindow reports whether date lies inside the budget's inclusive window.
// A missing bound is unbounded on that side.
func CoversWindow(b *entity.Budget, date time.Time) bool {
	return valueobject.WithinDays(date, b.StartDate, b.EndDate)
}

// CoversCategory reports whether the budget applies to the given category id.
func CoversCategory(b *entity.Budget, categoryID string) bool {
	return b.CoversAllCategories() || b.Category == categoryID
}

// Covers reports whether the budget's category and window include the transaction date and category.
func Covers(b *entity.Budget, date time.Time, categoryID string) bool {
	return CoversCategory(b, categoryID) && CoversWindow(b, date)
}

// FindCandidates returns the budgets a transaction on date in categoryID may be attributed to.
// The category is resolved through categories first; an unknown category only matches
// budgets that cover all categories. Only budgets with headroom left are returned,
// in collection order.
func FindCandidates(budgets []*entity.Budget, date time.Time, categoryID string, categories []*entity.Category) []*entity.Budget {
	resolved := ""
	for _, c := range categories {
		if c.ID == categoryID {
			resolved = c.ID
			break
		}
	}

	var candidates []*entity.Budget
	for _, b := range budgets {
		if !CoversWindow(b, date) {
			continue
		}
		if !b.CoversAllCategories() && (resolved == "" || b.Category != resolved) {
			continue
		}
		if !b.Amount.GreaterThan(b.Spent) {
			continue
		}
		candidates = append(candidates, b)
	}
	return candidates
}
