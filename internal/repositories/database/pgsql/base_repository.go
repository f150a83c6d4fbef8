package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// PgxTransactionManager opens pgx transactions for the transfer engine.
type PgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) *PgxTransactionManager {
	return &PgxTransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// Begin starts a new database transaction
func (r *PgxTransactionManager) Begin(ctx context.Context, isolation portsrepo.IsolationLevel) (portsrepo.Tx, error) {
	level, err := toPgxIsoLevel(isolation)
	if err != nil {
		return nil, err
	}
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: level})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", mapPgError(err))
	}
	return tx, nil
}

// Commit commits a transaction
func (r *PgxTransactionManager) Commit(ctx context.Context, tx portsrepo.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", mapPgError(err))
	}
	return nil
}

// Rollback rolls back a transaction
func (r *PgxTransactionManager) Rollback(ctx context.Context, tx portsrepo.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

func toPgxIsoLevel(isolation portsrepo.IsolationLevel) (pgx.TxIsoLevel, error) {
	switch isolation {
	case portsrepo.ReadCommitted:
		return pgx.ReadCommitted, nil
	case portsrepo.RepeatableRead:
		return pgx.RepeatableRead, nil
	case portsrepo.Serializable:
		return pgx.Serializable, nil
	default:
		return "", fmt.Errorf("unsupported isolation level %q", isolation)
	}
}

// asPgxTx recovers the pgx transaction behind a ports Tx.
func asPgxTx(tx portsrepo.Tx) (pgx.Tx, error) {
	pgxTx, ok := tx.(pgx.Tx)
	if !ok {
		return nil, fmt.Errorf("expected a pgx transaction, got %T", tx)
	}
	return pgxTx, nil
}
