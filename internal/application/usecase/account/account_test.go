package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/blobstore"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

func newStore() (adapter.EntityStore, *adapters.FixedClock, *adapters.SequentialIDs) {
	store := persistence.NewEntityStore(blobstore.NewMemoryStore(), "finance-tracker-")
	clock := &adapters.FixedClock{T: time.Date(2025, time.March, 2, 8, 0, 0, 0, time.UTC)}
	return store, clock, &adapters.SequentialIDs{Prefix: "acc"}
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateAccount(t *testing.T) {
	tests := []struct {
		name             string
		input            CreateAccountInput
		expectedCurrency string
		expectedErr      error
	}{
		{
			name:             "defaults currency",
			input:            CreateAccountInput{Name: "Checking", Type: entity.AccountTypeBank, Balance: decimal.NewFromInt(500)},
			expectedCurrency: "USD",
		},
		{
			name:             "normalizes currency",
			input:            CreateAccountInput{Name: " Wallet ", Type: entity.AccountTypeCash, Currency: "eur"},
			expectedCurrency: "EUR",
		},
		{
			name:        "missing name",
			input:       CreateAccountInput{Name: "  ", Type: entity.AccountTypeBank},
			expectedErr: domainerror.ErrMissingAccountName,
		},
		{
			name:        "unknown type",
			input:       CreateAccountInput{Name: "Savings", Type: "Savings"},
			expectedErr: domainerror.ErrInvalidAccountType,
		},
		{
			name:        "bad currency",
			input:       CreateAccountInput{Name: "Savings", Type: entity.AccountTypeOther, Currency: "EURO"},
			expectedErr: domainerror.ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, clock, ids := newStore()
			out, err := NewCreateAccountUseCase(store, clock, ids).Execute(context.Background(), tt.input)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("error = %v, want %v", err, tt.expectedErr)
				}
				if !errors.Is(err, domainerror.ErrValidation) {
					t.Errorf("error %v is not a validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Account.Currency != tt.expectedCurrency {
				t.Errorf("currency = %s, want %s", out.Account.Currency, tt.expectedCurrency)
			}
			if !out.Account.Balance.Equal(tt.input.Balance) {
				t.Errorf("balance = %s, want %s", out.Account.Balance, tt.input.Balance)
			}

			listed, err := NewListAccountsUseCase(store).Execute(context.Background())
			if err != nil || len(listed.Accounts) != 1 {
				t.Fatalf("list = %v, %v", listed, err)
			}
		})
	}
}

func TestUpdateAccountKeepsBalance(t *testing.T) {
	ctx := context.Background()
	store, clock, ids := newStore()
	created, err := NewCreateAccountUseCase(store, clock, ids).Execute(ctx, CreateAccountInput{
		Name: "Checking", Type: entity.AccountTypeBank, Balance: decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	clock.Advance(time.Hour)
	out, err := NewUpdateAccountUseCase(store, clock).Execute(ctx, UpdateAccountInput{
		ID: created.Account.ID, Name: ptr("Main"), Type: ptr(entity.AccountTypeCreditCard), Currency: ptr("gbp"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if out.Account.Name != "Main" || out.Account.Type != entity.AccountTypeCreditCard || out.Account.Currency != "GBP" {
		t.Errorf("account = %+v", out.Account)
	}
	if !out.Account.Balance.Equal(decimal.NewFromInt(250)) {
		t.Errorf("balance changed to %s", out.Account.Balance)
	}
	if !out.Account.UpdatedAt.After(out.Account.CreatedAt) {
		t.Error("updatedAt was not advanced")
	}

	if _, err := NewUpdateAccountUseCase(store, clock).Execute(ctx, UpdateAccountInput{ID: "missing"}); !errors.Is(err, domainerror.ErrNotFound) {
		t.Errorf("unknown account: %v", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	store, clock, ids := newStore()
	uc := NewCreateAccountUseCase(store, clock, ids)
	used, _ := uc.Execute(ctx, CreateAccountInput{Name: "Used", Type: entity.AccountTypeBank})
	free, _ := uc.Execute(ctx, CreateAccountInput{Name: "Free", Type: entity.AccountTypeCash})

	if err := store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		c.Transactions = append(c.Transactions, &entity.Transaction{
			ID: "t1", AccountID: used.Account.ID, Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(1),
		})
		return nil
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	del := NewDeleteAccountUseCase(store)
	var accErr *domainerror.AccountError
	err := del.Execute(ctx, DeleteAccountInput{ID: used.Account.ID})
	if !errors.As(err, &accErr) || accErr.Code != domainerror.ErrCodeAccountInUse {
		t.Fatalf("error = %v, want account in use", err)
	}
	if err := del.Execute(ctx, DeleteAccountInput{ID: free.Account.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := del.Execute(ctx, DeleteAccountInput{ID: free.Account.ID}); !errors.Is(err, domainerror.ErrNotFound) {
		t.Errorf("second delete: %v", err)
	}

	if _, err := NewGetAccountUseCase(store).Execute(ctx, GetAccountInput{ID: used.Account.ID}); err != nil {
		t.Errorf("used account should remain: %v", err)
	}
}
