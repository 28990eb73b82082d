package account

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	ID string
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	store adapter.EntityStore
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(store adapter.EntityStore) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{store: store}
}

// Execute deletes the account. It is rejected while any transaction references the account.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	err := uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		idx := -1
		for i, a := range c.Accounts {
			if a.ID == input.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return accountNotFound()
		}
		for _, t := range c.Transactions {
			if t.AccountID == input.ID {
				return domainerror.NewAccountError(
					domainerror.ErrCodeAccountInUse,
					"account is referenced by transactions",
					domainerror.ErrAccountInUse,
				)
			}
		}
		c.Accounts = append(c.Accounts[:idx], c.Accounts[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Account deleted", "id", input.ID)
	return nil
}
