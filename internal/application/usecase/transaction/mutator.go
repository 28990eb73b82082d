// Package transaction contains transaction-related use cases.
package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/service"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// BudgetMode selects how a budget is attached when the payload names none.
type BudgetMode string

const (
	// BudgetModeNone leaves the transaction without a budget.
	BudgetModeNone BudgetMode = "none"
	// BudgetModeAuto attaches the first matching budget, or auto-creates one when enabled.
	BudgetModeAuto BudgetMode = "auto"
)

// Settings holds the mutator's tunables.
type Settings struct {
	// AutoCreateBudget is used when a payload does not say whether to auto-create.
	AutoCreateBudget bool
	// AutoBudgetMultiplier sizes an auto-created budget relative to the transaction amount.
	AutoBudgetMultiplier decimal.Decimal
	// BreakdownTolerance is the largest accepted gap between sub-items and amount.
	BreakdownTolerance decimal.Decimal
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		AutoBudgetMultiplier: decimal.NewFromInt(2),
		BreakdownTolerance:   valueobject.DefaultBreakdownTolerance,
	}
}

// TransactionPayload is the user-submitted form of a transaction.
type TransactionPayload struct {
	Date                time.Time
	AccountID           string
	Type                entity.TransactionType
	CategoryID          string
	Description         string
	Amount              decimal.Decimal
	BudgetID            *string
	BudgetMode          BudgetMode
	AutoCreateBudget    *bool
	IsRecurring         bool
	RecurrenceFrequency *entity.RecurrenceFrequency
	RecurrenceEndDate   *time.Time
	SubItems            []entity.SubItem
}

// Effects lists the entities a mutation touched, as committed.
type Effects struct {
	Accounts []*entity.Account
	Budgets  []*entity.Budget
}

// mutation tracks one unit of work over the working collections.
type mutation struct {
	c        *entity.Collections
	ids      adapter.IDGenerator
	now      time.Time
	settings Settings

	// baseline is every budget's spent before the unit of work started.
	baseline map[string]decimal.Decimal
	accounts map[string]struct{}
	budgets  map[string]struct{}
}

func newMutation(c *entity.Collections, ids adapter.IDGenerator, now time.Time, settings Settings) *mutation {
	baseline := make(map[string]decimal.Decimal, len(c.Budgets))
	for _, b := range c.Budgets {
		baseline[b.ID] = b.Spent
	}
	return &mutation{
		c:        c,
		ids:      ids,
		now:      now,
		settings: settings,
		baseline: baseline,
		accounts: map[string]struct{}{},
		budgets:  map[string]struct{}{},
	}
}

// effects returns copies of the touched entities in collection order.
func (m *mutation) effects() Effects {
	var out Effects
	for _, a := range m.c.Accounts {
		if _, ok := m.accounts[a.ID]; ok {
			out.Accounts = append(out.Accounts, a.Clone())
		}
	}
	for _, b := range m.c.Budgets {
		if _, ok := m.budgets[b.ID]; ok {
			out.Budgets = append(out.Budgets, b.Clone())
		}
	}
	return out
}

// build turns a payload into an entity without id or timestamps.
func (p TransactionPayload) build() *entity.Transaction {
	t := &entity.Transaction{
		Date:                p.Date,
		AccountID:           p.AccountID,
		Type:                p.Type,
		CategoryID:          p.CategoryID,
		Description:         strings.TrimSpace(p.Description),
		Amount:              p.Amount,
		IsRecurring:         p.IsRecurring,
		RecurrenceFrequency: p.RecurrenceFrequency,
		RecurrenceEndDate:   p.RecurrenceEndDate,
	}
	if p.BudgetID != nil && *p.BudgetID != "" {
		id := *p.BudgetID
		t.BudgetID = &id
	}
	if len(p.SubItems) > 0 {
		t.SubItems = append([]entity.SubItem(nil), p.SubItems...)
	}
	return t
}

// validate checks the payload fields and references that do not depend on budgets.
func (m *mutation) validate(t *entity.Transaction) error {
	if t.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	if !t.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'Income', 'Expense' or 'Transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !t.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if len(t.Description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	if t.AccountID == "" || t.CategoryID == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"account and category are required",
			domainerror.ErrValidation,
		)
	}
	if err := service.ValidateSubItems(t.Amount, t.SubItems, m.settings.BreakdownTolerance); err != nil {
		return err
	}
	if m.c.Account(t.AccountID) == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFoundForTransaction,
		)
	}
	if m.c.Category(t.CategoryID) == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}
	if t.HasBudget() && !t.IsExpense() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeBudgetNotAllowed,
			"only expense transactions may carry a budget",
			domainerror.ErrBudgetNotAllowed,
		)
	}
	return nil
}

// checkAttachment verifies that an attached budget exists and covers t.
func (m *mutation) checkAttachment(t *entity.Transaction) error {
	if !t.HasBudget() {
		return nil
	}
	b := m.c.Budget(*t.BudgetID)
	if b == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFoundForTransaction,
		)
	}
	if !service.Covers(b, t.Date, t.CategoryID) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeBudgetDoesNotCover,
			fmt.Sprintf("budget %q does not cover this transaction's category and date", b.Name),
			domainerror.ErrBudgetDoesNotCover,
		)
	}
	return nil
}

// resolveBudget attaches a budget to an expense that names none when mode is auto.
// The first candidate able to absorb the amount wins. When no candidate has room the
// first one is attached anyway and the overflow check decides. A budget is
// auto-created, when enabled, only if nothing covers the expense.
func (m *mutation) resolveBudget(t *entity.Transaction, mode BudgetMode, autoCreate *bool) {
	if !t.IsExpense() || t.HasBudget() || mode != BudgetModeAuto {
		return
	}
	candidates := service.FindCandidates(m.c.Budgets, t.Date, t.CategoryID, m.c.Categories)
	if len(candidates) > 0 {
		chosen := candidates[0]
		for _, b := range candidates {
			if b.Headroom().GreaterThanOrEqual(t.Amount) {
				chosen = b
				break
			}
		}
		id := chosen.ID
		t.BudgetID = &id
		return
	}

	enabled := m.settings.AutoCreateBudget
	if autoCreate != nil {
		enabled = *autoCreate
	}
	if !enabled {
		return
	}
	b := m.autoBudget(t)
	m.c.Budgets = append(m.c.Budgets, b)
	m.baseline[b.ID] = b.Spent
	id := b.ID
	t.BudgetID = &id
}

// autoBudget creates the default monthly budget for t's category. The window is the
// current month, or the transaction's month when t falls outside the current one.
func (m *mutation) autoBudget(t *entity.Transaction) *entity.Budget {
	anchor := m.now
	if !valueobject.WithinDays(t.Date, ptr(valueobject.StartOfMonth(m.now)), ptr(valueobject.EndOfMonth(m.now))) {
		anchor = t.Date
	}
	start := valueobject.StartOfMonth(anchor)
	end := valueobject.EndOfMonth(anchor)

	name := "Budget"
	if cat := m.c.Category(t.CategoryID); cat != nil {
		name = cat.Name + " Budget"
	}
	return &entity.Budget{
		ID:         m.ids.NewID(),
		Name:       name,
		Category:   t.CategoryID,
		Amount:     t.Amount.Mul(m.settings.AutoBudgetMultiplier),
		Spent:      decimal.Zero,
		StartDate:  &start,
		EndDate:    &end,
		BudgetType: entity.BudgetTypeAddedOnly,
		CreatedAt:  m.now,
		UpdatedAt:  m.now,
	}
}

// apply adds t's effects to its account and every budget it counts toward,
// rejecting an attributed spend that overflows the attached budget.
func (m *mutation) apply(t *entity.Transaction) error {
	acc := m.c.Account(t.AccountID)
	acc.Balance = acc.Balance.Add(t.BalanceDelta())
	acc.UpdatedAt = m.now
	m.accounts[acc.ID] = struct{}{}

	var attached *entity.Budget
	before := decimal.Zero
	if t.HasBudget() {
		attached = m.c.Budget(*t.BudgetID)
		before = attached.Spent
	}

	for _, b := range service.ApplySpend(m.c.Budgets, t, 1) {
		b.UpdatedAt = m.now
		m.budgets[b.ID] = struct{}{}
	}

	if attached != nil {
		if err := service.CheckHeadroom(attached, m.baseline[attached.ID], before, t.Amount); err != nil {
			return domainerror.NewTransactionError(domainerror.ErrCodeBudgetExceeded, "budget exceeded", err)
		}
	}
	return nil
}

// reverse removes t's effects from its account and budgets.
func (m *mutation) reverse(t *entity.Transaction) {
	if acc := m.c.Account(t.AccountID); acc != nil {
		acc.Balance = acc.Balance.Sub(t.BalanceDelta())
		acc.UpdatedAt = m.now
		m.accounts[acc.ID] = struct{}{}
	}
	for _, b := range service.ApplySpend(m.c.Budgets, t, -1) {
		b.UpdatedAt = m.now
		m.budgets[b.ID] = struct{}{}
	}
}

// assignSubItemIDs gives every sub-item without an id a fresh one.
func (m *mutation) assignSubItemIDs(t *entity.Transaction) {
	for i := range t.SubItems {
		if t.SubItems[i].ID == "" {
			t.SubItems[i].ID = m.ids.NewID()
		}
		if t.SubItems[i].Status == "" {
			t.SubItems[i].Status = entity.SubItemStatusPaid
		}
	}
}

func transactionNotFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}

func ptr[T any](v T) *T {
	return &v
}
