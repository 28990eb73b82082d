// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/service"
)

// BulkCategorizeTransactionsInput represents the input for bulk transaction categorization.
type BulkCategorizeTransactionsInput struct {
	TransactionIDs []string
	CategoryID     string
}

// BulkCategorizeTransactionsOutput represents the output of bulk transaction categorization.
type BulkCategorizeTransactionsOutput struct {
	UpdatedCount int
	// DetachedCount counts transactions whose budget stopped covering them and was cleared.
	DetachedCount int
	Effects
}

// BulkCategorizeTransactionsUseCase handles bulk transaction categorization logic.
type BulkCategorizeTransactionsUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
}

// NewBulkCategorizeTransactionsUseCase creates a new BulkCategorizeTransactionsUseCase instance.
func NewBulkCategorizeTransactionsUseCase(store adapter.EntityStore, clock adapter.Clock) *BulkCategorizeTransactionsUseCase {
	return &BulkCategorizeTransactionsUseCase{
		store: store,
		clock: clock,
	}
}

// Execute moves every listed transaction to the category. Each move is an edit:
// its old spend is reversed and the new one applied. A budget that no longer covers
// the transaction is detached rather than failing the batch.
func (uc *BulkCategorizeTransactionsUseCase) Execute(ctx context.Context, input BulkCategorizeTransactionsInput) (*BulkCategorizeTransactionsOutput, error) {
	if len(input.TransactionIDs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionIDs,
			"transaction IDs list cannot be empty",
			domainerror.ErrEmptyTransactionIDs,
		)
	}

	now := uc.clock.Now()
	output := &BulkCategorizeTransactionsOutput{}

	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		if c.Category(input.CategoryID) == nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}

		m := newMutation(c, nil, now, Settings{})
		for _, id := range input.TransactionIDs {
			t := c.Transaction(id)
			if t == nil {
				return transactionNotFound()
			}
			if t.CategoryID == input.CategoryID {
				continue
			}

			m.reverse(t)
			t.CategoryID = input.CategoryID
			t.UpdatedAt = now
			if t.HasBudget() {
				if b := c.Budget(*t.BudgetID); b == nil || !service.Covers(b, t.Date, t.CategoryID) {
					t.BudgetID = nil
					output.DetachedCount++
				}
			}
			if err := m.apply(t); err != nil {
				return err
			}
			output.UpdatedCount++
		}
		output.Effects = m.effects()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transactions recategorized",
		"category_id", input.CategoryID,
		"updated", output.UpdatedCount,
		"detached", output.DetachedCount,
	)
	return output, nil
}
