// Package entity defines the core business entities for the domain layer.
package entity

// Collection names the four persisted collections.
type Collection string

const (
	CollectionAccounts     Collection = "accounts"
	CollectionCategories   Collection = "categories"
	CollectionBudgets      Collection = "budgets"
	CollectionTransactions Collection = "transactions"
)

// AllCollections lists every collection in load order.
var AllCollections = []Collection{
	CollectionAccounts,
	CollectionCategories,
	CollectionBudgets,
	CollectionTransactions,
}

// Collections holds every entity of the tracker. Slices keep insertion order.
// Entities reference each other by id only.
type Collections struct {
	Accounts     []*Account
	Categories   []*Category
	Budgets      []*Budget
	Transactions []*Transaction
}

// Clone returns a deep copy so that a unit of work can be discarded without side effects.
func (c *Collections) Clone() *Collections {
	out := &Collections{
		Accounts:     make([]*Account, len(c.Accounts)),
		Categories:   make([]*Category, len(c.Categories)),
		Budgets:      make([]*Budget, len(c.Budgets)),
		Transactions: make([]*Transaction, len(c.Transactions)),
	}
	for i, a := range c.Accounts {
		out.Accounts[i] = a.Clone()
	}
	for i, cat := range c.Categories {
		out.Categories[i] = cat.Clone()
	}
	for i, b := range c.Budgets {
		out.Budgets[i] = b.Clone()
	}
	for i, t := range c.Transactions {
		out.Transactions[i] = t.Clone()
	}
	return out
}

// Account returns the account with the given id, or nil.
func (c *Collections) Account(id string) *Account {
	for _, a := range c.Accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Category returns the category with the given id, or nil.
func (c *Collections) Category(id string) *Category {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat
		}
	}
	return nil
}

// CategoryByName returns the first category with the given name, optionally restricted to a type.
func (c *Collections) CategoryByName(name string, categoryType *CategoryType) *Category {
	for _, cat := range c.Categories {
		if categoryType != nil && cat.Type != *categoryType {
			continue
		}
		if cat.SameName(name) {
			return cat
		}
	}
	return nil
}

// Budget returns the budget with the given id, or nil.
func (c *Collections) Budget(id string) *Budget {
	for _, b := range c.Budgets {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Transaction returns the transaction with the given id, or nil.
func (c *Collections) Transaction(id string) *Transaction {
	for _, t := range c.Transactions {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RemoveTransaction deletes the transaction with the given id and reports whether it existed.
func (c *Collections) RemoveTransaction(id string) bool {
	for i, t := range c.Transactions {
		if t.ID == id {
			c.Transactions = append(c.Transactions[:i], c.Transactions[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveBudgets deletes every budget whose id is in ids and returns the removed budgets.
func (c *Collections) RemoveBudgets(ids map[string]struct{}) []*Budget {
	var removed []*Budget
	kept := c.Budgets[:0]
	for _, b := range c.Budgets {
		if _, ok := ids[b.ID]; ok {
			removed = append(removed, b)
			continue
		}
		kept = append(kept, b)
	}
	c.Budgets = kept
	return removed
}
