package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
)

// AccountService opens new accounts.
type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountWriter
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo portsrepo.AccountWriter) *AccountService {
	return &AccountService{accountRepo: repo}
}

var _ portssvc.AccountWriterSvc = (*AccountService)(nil)

// CreateAccount validates and persists a new account with its opening balance.
func (s *AccountService) CreateAccount(ctx context.Context, owner string, balance domain.Money) (*domain.Account, error) {
	logger := s.GetLogger(ctx).With(slog.String("currency", balance.Currency()))

	account, err := domain.NewAccount(owner, balance)
	if err != nil {
		logger.Warn("Account rejected", slog.String("error", err.Error()))
		return nil, err
	}

	id, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()))
		return nil, err
	}

	account = account.WithID(id)
	logger.Info("Account created successfully", slog.Int64("account_id", id))
	return &account, nil
}
