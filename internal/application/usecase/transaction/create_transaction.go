// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/service"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	TransactionPayload
}

// CreateTransactionOutput represents the output of transaction creation.
// A recurring payload yields one transaction per occurrence.
type CreateTransactionOutput struct {
	Transactions []*entity.Transaction
	Effects
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	store    adapter.EntityStore
	clock    adapter.Clock
	ids      adapter.IDGenerator
	settings Settings
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	store adapter.EntityStore,
	clock adapter.Clock,
	ids adapter.IDGenerator,
	settings Settings,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		store:    store,
		clock:    clock,
		ids:      ids,
		settings: settings,
	}
}

// Execute performs the transaction creation.
// A recurring template is expanded first and every occurrence is created in the same
// unit of work: when one occurrence fails nothing is created.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	now := uc.clock.Now()
	output := &CreateTransactionOutput{}

	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		m := newMutation(c, uc.ids, now, uc.settings)

		template := input.build()
		if err := m.validate(template); err != nil {
			return err
		}
		m.assignSubItemIDs(template)

		instances := []*entity.Transaction{template}
		if template.IsRecurring {
			expanded, err := service.ExpandTransaction(template, uc.ids.NewID)
			if err != nil {
				return err
			}
			instances = expanded
		} else {
			template.ID = uc.ids.NewID()
		}

		for i, t := range instances {
			t.CreatedAt = now
			t.UpdatedAt = now

			m.resolveBudget(t, input.BudgetMode, input.AutoCreateBudget)
			err := m.checkAttachment(t)
			if err == nil {
				err = m.apply(t)
			}
			if err != nil {
				if len(instances) > 1 {
					return fmt.Errorf("occurrence %d of %d on %s: %w", i+1, len(instances), t.Date.Format("2006-01-02"), err)
				}
				return err
			}
			c.Transactions = append(c.Transactions, t)
		}

		for _, t := range instances {
			output.Transactions = append(output.Transactions, t.Clone())
		}
		output.Effects = m.effects()
		return nil
	})
	if err != nil {
		slog.Debug("Transaction rejected", "error", err)
		return nil, err
	}

	slog.Info("Transaction created",
		"id", output.Transactions[0].ID,
		"type", output.Transactions[0].Type,
		"occurrences", len(output.Transactions),
	)
	return output, nil
}
