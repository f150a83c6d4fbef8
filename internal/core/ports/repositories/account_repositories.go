package repositories

import (
	"context"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	// It returns apperrors.ErrNotFound when no such account exists.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves every account ordered by id.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns the storage-assigned id.
	SaveAccount(ctx context.Context, account domain.Account) (int64, error)
}

// AccountLedger defines the balance primitives the transfer engine runs inside a transaction.
type AccountLedger interface {
	// GetAccountCurrency returns the currency code of an account, or apperrors.ErrNotFound.
	GetAccountCurrency(ctx context.Context, tx Tx, accountID int64) (string, error)

	// DebitAccount subtracts amount from the account's balance only if the account has the
	// given currency and the resulting balance stays non-negative. It returns the number of
	// rows updated.
	DebitAccount(ctx context.Context, tx Tx, accountID int64, amount decimal.Decimal, currency string) (int64, error)

	// CreditAccount adds amount to the account's balance if the account has the given
	// currency. It returns the number of rows updated.
	CreditAccount(ctx context.Context, tx Tx, accountID int64, amount decimal.Decimal, currency string) (int64, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountLedger
}
