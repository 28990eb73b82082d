// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID string
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Transaction *entity.Transaction
	Effects
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(store adapter.EntityStore, clock adapter.Clock) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		store: store,
		clock: clock,
	}
}

// Execute reverses the transaction's balance and spend effects and removes it.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	now := uc.clock.Now()
	output := &DeleteTransactionOutput{}

	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		existing := c.Transaction(input.TransactionID)
		if existing == nil {
			return transactionNotFound()
		}

		m := newMutation(c, nil, now, Settings{})
		m.reverse(existing)
		c.RemoveTransaction(existing.ID)

		output.Transaction = existing.Clone()
		output.Effects = m.effects()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transaction deleted", "id", input.TransactionID)
	return output, nil
}
