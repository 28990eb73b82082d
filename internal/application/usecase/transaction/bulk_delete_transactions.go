// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// BulkDeleteTransactionsInput represents the input for bulk transaction deletion.
type BulkDeleteTransactionsInput struct {
	TransactionIDs []string
}

// BulkDeleteTransactionsOutput represents the output of bulk transaction deletion.
type BulkDeleteTransactionsOutput struct {
	DeletedCount int
	Effects
}

// BulkDeleteTransactionsUseCase handles bulk transaction deletion logic.
type BulkDeleteTransactionsUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
}

// NewBulkDeleteTransactionsUseCase creates a new BulkDeleteTransactionsUseCase instance.
func NewBulkDeleteTransactionsUseCase(store adapter.EntityStore, clock adapter.Clock) *BulkDeleteTransactionsUseCase {
	return &BulkDeleteTransactionsUseCase{
		store: store,
		clock: clock,
	}
}

// Execute deletes every listed transaction in one unit of work.
// An unknown id aborts the whole deletion.
func (uc *BulkDeleteTransactionsUseCase) Execute(ctx context.Context, input BulkDeleteTransactionsInput) (*BulkDeleteTransactionsOutput, error) {
	if len(input.TransactionIDs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionIDs,
			"transaction IDs list cannot be empty",
			domainerror.ErrEmptyTransactionIDs,
		)
	}

	now := uc.clock.Now()
	output := &BulkDeleteTransactionsOutput{}

	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		m := newMutation(c, nil, now, Settings{})
		seen := map[string]struct{}{}
		for _, id := range input.TransactionIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			existing := c.Transaction(id)
			if existing == nil {
				return transactionNotFound()
			}
			m.reverse(existing)
			c.RemoveTransaction(id)
			output.DeletedCount++
		}
		output.Effects = m.effects()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transactions deleted", "count", output.DeletedCount)
	return output, nil
}
