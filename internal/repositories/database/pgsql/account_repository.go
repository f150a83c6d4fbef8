package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_transfer_app/internal/models"
	"github.com/SscSPs/money_transfer_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `id, owner, currency, balance`

// SaveAccount inserts a new account and returns its generated id.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (owner, currency, balance)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, modelAcc.Owner, modelAcc.Currency, modelAcc.Balance).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to save account for owner %q: %w", modelAcc.Owner, mapPgError(err))
	}
	return id, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1;`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account %d: %w", accountID, mapPgError(err))
	}
	modelAcc, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to scan account %d: %w", accountID, err)
	}

	account, err := mapping.ToDomainAccount(modelAcc)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAccounts retrieves every account ordered by id.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", mapPgError(err))
	}
	modelAccs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(modelAccs)
}

// GetAccountCurrency reads the currency of an account inside tx without locking the row.
func (r *PgxAccountRepository) GetAccountCurrency(ctx context.Context, tx portsrepo.Tx, accountID int64) (string, error) {
	pgxTx, err := asPgxTx(tx)
	if err != nil {
		return "", err
	}

	var currency string
	err = pgxTx.QueryRow(ctx, `SELECT currency FROM accounts WHERE id = $1;`, accountID).Scan(&currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
		}
		return "", fmt.Errorf("failed to read currency of account %d: %w", accountID, mapPgError(err))
	}
	return currency, nil
}

// DebitAccount subtracts amount under the balance guard. Zero rows affected means the
// account is missing, holds another currency, or has less than amount.
func (r *PgxAccountRepository) DebitAccount(ctx context.Context, tx portsrepo.Tx, accountID int64, amount decimal.Decimal, currency string) (int64, error) {
	query := `
		UPDATE accounts
		SET balance = balance - $1
		WHERE id = $2 AND currency = $3 AND balance >= $1;
	`
	return r.updateBalance(ctx, tx, query, accountID, amount, currency)
}

// CreditAccount adds amount to an account holding currency.
func (r *PgxAccountRepository) CreditAccount(ctx context.Context, tx portsrepo.Tx, accountID int64, amount decimal.Decimal, currency string) (int64, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2 AND currency = $3;
	`
	return r.updateBalance(ctx, tx, query, accountID, amount, currency)
}

func (r *PgxAccountRepository) updateBalance(ctx context.Context, tx portsrepo.Tx, query string, accountID int64, amount decimal.Decimal, currency string) (int64, error) {
	pgxTx, err := asPgxTx(tx)
	if err != nil {
		return 0, err
	}
	tag, err := pgxTx.Exec(ctx, query, amount, accountID, currency)
	if err != nil {
		return 0, fmt.Errorf("failed to update balance of account %d: %w", accountID, mapPgError(err))
	}
	return tag.RowsAffected(), nil
}
