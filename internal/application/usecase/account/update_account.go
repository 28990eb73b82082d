package account

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UpdateAccountInput represents the input for account update. Nil fields are left unchanged.
// The balance is not editable here.
type UpdateAccountInput struct {
	ID       string
	Name     *string
	Type     *entity.AccountType
	Currency *string
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(store adapter.EntityStore, clock adapter.Clock) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		store: store,
		clock: clock,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	var name, currency string
	var err error
	if input.Name != nil {
		if name, err = checkName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Type != nil {
		if err := checkType(*input.Type); err != nil {
			return nil, err
		}
	}
	if input.Currency != nil {
		if currency, err = normalizeCurrency(*input.Currency); err != nil {
			return nil, err
		}
	}

	output := &UpdateAccountOutput{}
	err = uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		a := c.Account(input.ID)
		if a == nil {
			return accountNotFound()
		}
		if input.Name != nil {
			a.Name = name
		}
		if input.Type != nil {
			a.Type = *input.Type
		}
		if input.Currency != nil {
			a.Currency = currency
		}
		a.UpdatedAt = uc.clock.Now()
		output.Account = a.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Account updated", "id", input.ID)
	return output, nil
}
