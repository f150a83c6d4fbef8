package services

import (
	"context"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// TransferExecutorSvc moves money between two accounts atomically.
type TransferExecutorSvc interface {
	// Execute runs a candidate transfer and returns it with its id and timestamp set.
	// Failures are *apperrors.TransferError values, or a generic error for infrastructure problems.
	Execute(ctx context.Context, candidate domain.Transfer) (*domain.Transfer, error)
}

// TransferReaderSvc defines read operations for the transfer ledger
type TransferReaderSvc interface {
	// ListTransfersForAccount retrieves the transfers an account sent or received.
	ListTransfersForAccount(ctx context.Context, accountID int64) ([]domain.Transfer, error)

	// GetTransfer retrieves a transfer visible to the given account.
	GetTransfer(ctx context.Context, transferID int64, accountID int64) (*domain.Transfer, error)
}

// QuerySvcFacade is the read-only view over accounts and transfers.
type QuerySvcFacade interface {
	AccountReaderSvc
	TransferReaderSvc
}
