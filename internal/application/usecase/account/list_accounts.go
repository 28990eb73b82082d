package account

import (
	"context"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*entity.Account
}

// ListAccountsUseCase lists accounts in insertion order.
type ListAccountsUseCase struct {
	store adapter.EntityStore
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(store adapter.EntityStore) *ListAccountsUseCase {
	return &ListAccountsUseCase{store: store}
}

// Execute lists every account.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) (*ListAccountsOutput, error) {
	output := &ListAccountsOutput{Accounts: []*entity.Account{}}
	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		for _, a := range c.Accounts {
			output.Accounts = append(output.Accounts, a.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// GetAccountInput represents the input for fetching one account.
type GetAccountInput struct {
	ID string
}

// GetAccountUseCase fetches a single account.
type GetAccountUseCase struct {
	store adapter.EntityStore
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(store adapter.EntityStore) *GetAccountUseCase {
	return &GetAccountUseCase{store: store}
}

// Execute returns the account or a not-found error.
func (uc *GetAccountUseCase) Execute(ctx context.Context, input GetAccountInput) (*entity.Account, error) {
	var out *entity.Account
	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		a := c.Account(input.ID)
		if a == nil {
			return accountNotFound()
		}
		out = a.Clone()
		return nil
	})
	return out, err
}
