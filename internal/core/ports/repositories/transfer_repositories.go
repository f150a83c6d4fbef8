package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// TransferReader defines read operations for the transfer ledger
type TransferReader interface {
	// ListTransfersByAccountID retrieves the transfers an account took part in, as source or
	// destination, in insertion order.
	ListTransfersByAccountID(ctx context.Context, accountID int64) ([]domain.Transfer, error)

	// FindTransferForAccount retrieves a transfer only if the account took part in it.
	// It returns apperrors.ErrNotFound otherwise.
	FindTransferForAccount(ctx context.Context, transferID int64, accountID int64) (*domain.Transfer, error)
}

// TransferWriter defines the append-only write of the transfer ledger
type TransferWriter interface {
	// InsertTransfer appends a transfer row inside tx and returns the generated id.
	InsertTransfer(ctx context.Context, tx Tx, transfer domain.Transfer, timestamp time.Time) (int64, error)
}

// TransferRepositoryFacade combines all transfer-related repository interfaces
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
