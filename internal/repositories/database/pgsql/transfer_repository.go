package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_transfer_app/internal/models"
	"github.com/SscSPs/money_transfer_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransferRepository struct {
	BaseRepository
}

func newPgxTransferRepository(pool *pgxpool.Pool) *PgxTransferRepository {
	return &PgxTransferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const transferColumns = `id, from_account, to_account, currency, amount, created_at`

// InsertTransfer appends a transfer row inside tx and returns its id.
func (r *PgxTransferRepository) InsertTransfer(ctx context.Context, tx portsrepo.Tx, transfer domain.Transfer, timestamp time.Time) (int64, error) {
	pgxTx, err := asPgxTx(tx)
	if err != nil {
		return 0, err
	}
	modelTr := mapping.ToModelTransfer(transfer)

	query := `
		INSERT INTO transfers (from_account, to_account, currency, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err = pgxTx.QueryRow(ctx, query,
		modelTr.FromAccount,
		modelTr.ToAccount,
		modelTr.Currency,
		modelTr.Amount,
		timestamp,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transfer: %w", mapPgError(err))
	}
	return id, nil
}

// ListTransfersByAccountID lists the transfers an account sent or received in insertion order.
func (r *PgxTransferRepository) ListTransfersByAccountID(ctx context.Context, accountID int64) ([]domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE from_account = $1 OR to_account = $1
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers of account %d: %w", accountID, mapPgError(err))
	}
	modelTrs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transfer])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transfers: %w", err)
	}
	return mapping.ToDomainTransferSlice(modelTrs)
}

// FindTransferForAccount retrieves a transfer only if the account is its source or destination.
func (r *PgxTransferRepository) FindTransferForAccount(ctx context.Context, transferID int64, accountID int64) (*domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE id = $1 AND (from_account = $2 OR to_account = $2);
	`
	rows, err := r.Pool.Query(ctx, query, transferID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfer %d: %w", transferID, mapPgError(err))
	}
	modelTr, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transfer])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transfer %d for account %d", apperrors.ErrNotFound, transferID, accountID)
		}
		return nil, fmt.Errorf("failed to scan transfer %d: %w", transferID, err)
	}

	transfer, err := mapping.ToDomainTransfer(modelTr)
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}
