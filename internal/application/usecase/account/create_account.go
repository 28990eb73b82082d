// Package account contains account-related use cases.
package account

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// CreateAccountInput represents the input for account creation.
// Balance is the opening balance; Currency defaults to USD.
type CreateAccountInput struct {
	Name     string
	Type     entity.AccountType
	Balance  decimal.Decimal
	Currency string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	store adapter.EntityStore
	clock adapter.Clock
	ids   adapter.IDGenerator
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(store adapter.EntityStore, clock adapter.Clock, ids adapter.IDGenerator) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		store: store,
		clock: clock,
		ids:   ids,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name, err := checkName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := checkType(input.Type); err != nil {
		return nil, err
	}
	currency, err := normalizeCurrency(input.Currency)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	account := &entity.Account{
		ID:        uc.ids.NewID(),
		Name:      name,
		Type:      input.Type,
		Balance:   input.Balance,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.store.Mutate(ctx, func(_ context.Context, c *entity.Collections) error {
		c.Accounts = append(c.Accounts, account)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Account created", "id", account.ID, "type", account.Type)
	return &CreateAccountOutput{Account: account.Clone()}, nil
}

func checkName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountName,
			"account name is required",
			domainerror.ErrMissingAccountName,
		)
	}
	if len(name) > MaxAccountNameLength {
		return "", domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountField,
			"account name is too long",
			domainerror.ErrValidation,
		)
	}
	return name, nil
}

func checkType(t entity.AccountType) error {
	if !t.IsValid() {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be one of Bank, Cash, Credit Card, Investment, Other",
			domainerror.ErrInvalidAccountType,
		)
	}
	return nil
}

// normalizeCurrency upper-cases an ISO 4217 code, defaulting an empty one.
func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return entity.DefaultCurrency, nil
	}
	if !currencyRegex.MatchString(code) {
		return "", domainerror.NewAccountError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be a three-letter ISO 4217 code",
			domainerror.ErrInvalidCurrency,
		)
	}
	return code, nil
}

func accountNotFound() error {
	return domainerror.NewAccountError(
		domainerror.ErrCodeAccountNotFound,
		"account not found",
		domainerror.ErrAccountNotFound,
	)
}
