package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// encodeCollection serializes one collection. Empty collections encode as [].
func encodeCollection(c *entity.Collections, name entity.Collection) ([]byte, error) {
	var v any
	switch name {
	case entity.CollectionAccounts:
		v = nonNil(c.Accounts)
	case entity.CollectionCategories:
		v = nonNil(c.Categories)
	case entity.CollectionBudgets:
		v = nonNil(c.Budgets)
	case entity.CollectionTransactions:
		v = nonNil(c.Transactions)
	default:
		return nil, fmt.Errorf("unknown collection %q", name)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return data, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// decodeCollection fills the named collection of c from data. Empty data leaves it empty.
func decodeCollection(c *entity.Collections, name entity.Collection, data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	var err error
	switch name {
	case entity.CollectionAccounts:
		err = json.Unmarshal(data, &c.Accounts)
	case entity.CollectionCategories:
		err = json.Unmarshal(data, &c.Categories)
	case entity.CollectionBudgets:
		err = json.Unmarshal(data, &c.Budgets)
	case entity.CollectionTransactions:
		err = json.Unmarshal(data, &c.Transactions)
	default:
		return fmt.Errorf("unknown collection %q", name)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// normalize rewrites legacy data into the canonical form: budget categories stored
// by name become category ids and budgets without a type become added_only.
// It returns the number of budgets it rewrote.
func normalize(c *entity.Collections) int {
	expense := entity.CategoryTypeExpense
	rewritten := 0
	for _, b := range c.Budgets {
		changed := false
		if b.BudgetType == "" {
			b.BudgetType = entity.BudgetTypeAddedOnly
			changed = true
		}
		if b.Category != "" && !b.CoversAllCategories() && c.Category(b.Category) == nil {
			cat := c.CategoryByName(b.Category, &expense)
			if cat == nil {
				cat = c.CategoryByName(b.Category, nil)
			}
			if cat != nil {
				b.Category = cat.ID
				changed = true
			} else {
				slog.Warn("Budget references an unknown category", "budget_id", b.ID, "category", b.Category)
			}
		}
		if changed {
			rewritten++
		}
	}
	return rewritten
}
