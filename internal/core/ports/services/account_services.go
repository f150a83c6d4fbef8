package services

import (
	"context"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves a specific account by its unique identifier.
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account with a non-negative opening balance.
	CreateAccount(ctx context.Context, owner string, balance domain.Money) (*domain.Account, error)
}
