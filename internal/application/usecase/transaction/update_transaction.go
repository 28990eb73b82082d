// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UpdateTransactionInput represents the input for transaction update.
// The payload replaces every editable field; id and createdAt are preserved.
type UpdateTransactionInput struct {
	ID string
	TransactionPayload
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
	Effects
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	store    adapter.EntityStore
	clock    adapter.Clock
	ids      adapter.IDGenerator
	settings Settings
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	store adapter.EntityStore,
	clock adapter.Clock,
	ids adapter.IDGenerator,
	settings Settings,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		store:    store,
		clock:    clock,
		ids:      ids,
		settings: settings,
	}
}

// Execute reverses the stored transaction's effects and applies the new payload in
// one unit of work. A recurring flag on the payload does not expand again.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	now := uc.clock.Now()
	output := &UpdateTransactionOutput{}

	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		original := c.Transaction(input.ID)
		if original == nil {
			return transactionNotFound()
		}

		m := newMutation(c, uc.ids, now, uc.settings)

		updated := input.build()
		if err := m.validate(updated); err != nil {
			return err
		}
		updated.ID = original.ID
		updated.CreatedAt = original.CreatedAt
		updated.UpdatedAt = now
		m.assignSubItemIDs(updated)

		m.reverse(original)
		m.resolveBudget(updated, input.BudgetMode, input.AutoCreateBudget)
		if err := m.checkAttachment(updated); err != nil {
			return err
		}
		if err := m.apply(updated); err != nil {
			return err
		}

		for i, t := range c.Transactions {
			if t.ID == updated.ID {
				c.Transactions[i] = updated
				break
			}
		}

		output.Transaction = updated.Clone()
		output.Effects = m.effects()
		return nil
	})
	if err != nil {
		slog.Debug("Transaction update rejected", "id", input.ID, "error", err)
		return nil, err
	}

	slog.Info("Transaction updated", "id", input.ID)
	return output, nil
}
