package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories translate.
const (
	pgForeignKeyViolation  = "23503"
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// balanceCheckConstraint is the name of the non-negative balance CHECK on accounts.
const balanceCheckConstraint = "accounts_balance_non_negative"

// mapPgError tags Postgres errors with the application sentinel they stand for.
// The original error stays in the chain. Anything unrecognised is returned as is.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgCheckViolation:
		if pgErr.ConstraintName == balanceCheckConstraint {
			return fmt.Errorf("%w: %w", apperrors.ErrInsufficientFunds, err)
		}
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return fmt.Errorf("%w: %w", apperrors.ErrConcurrentConflict, err)
	case pgUniqueViolation:
		return fmt.Errorf("%w: %w", apperrors.ErrDuplicate, err)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %w", apperrors.ErrNotFound, err)
	default:
		return err
	}
}
