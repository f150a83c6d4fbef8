package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
)

// QueryService serves read-only views of accounts and the transfer ledger.
// Reads run outside any transfer transaction and see committed state only.
type QueryService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	transferRepo portsrepo.TransferReader
}

// NewQueryService creates a new QueryService.
func NewQueryService(accounts portsrepo.AccountReader, transfers portsrepo.TransferReader) *QueryService {
	return &QueryService{
		accountRepo:  accounts,
		transferRepo: transfers,
	}
}

var _ portssvc.QuerySvcFacade = (*QueryService)(nil)

// GetAccount retrieves an account by id.
func (s *QueryService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID in repository", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves all accounts.
func (s *QueryService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository")
		return nil, err
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

// ListTransfersForAccount lists the transfers an account sent or received in insertion order.
// An unknown account yields an empty list.
func (s *QueryService) ListTransfersForAccount(ctx context.Context, accountID int64) ([]domain.Transfer, error) {
	transfers, err := s.transferRepo.ListTransfersByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers from repository", slog.Int64("account_id", accountID))
		return nil, err
	}
	return transfers, nil
}

// GetTransfer retrieves a transfer only if the account took part in it.
func (s *QueryService) GetTransfer(ctx context.Context, transferID int64, accountID int64) (*domain.Transfer, error) {
	transfer, err := s.transferRepo.FindTransferForAccount(ctx, transferID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transfer in repository",
				slog.Int64("transfer_id", transferID), slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return transfer, nil
}
