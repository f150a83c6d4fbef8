package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
)

// TransferEngine moves money between two accounts inside one storage transaction.
//
// It holds no locks and no balances of its own. Serialisation of concurrent transfers
// touching the same account is left to the storage row locks, which the engine always
// acquires in ascending account id order.
type TransferEngine struct {
	BaseService
	txManager portsrepo.TransactionManager
	ledger    portsrepo.AccountLedger
	transfers portsrepo.TransferWriter
	now       func() time.Time
}

// TransferEngineOption configures a TransferEngine.
type TransferEngineOption func(*TransferEngine)

// WithClock replaces the wall clock used to timestamp transfers.
func WithClock(now func() time.Time) TransferEngineOption {
	return func(e *TransferEngine) {
		e.now = now
	}
}

// NewTransferEngine creates a TransferEngine over the given storage ports.
func NewTransferEngine(
	txManager portsrepo.TransactionManager,
	ledger portsrepo.AccountLedger,
	transfers portsrepo.TransferWriter,
	opts ...TransferEngineOption,
) *TransferEngine {
	e := &TransferEngine{
		txManager: txManager,
		ledger:    ledger,
		transfers: transfers,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ portssvc.TransferExecutorSvc = (*TransferEngine)(nil)

// Execute validates the candidate, then debits the source, credits the destination and
// appends the transfer row atomically. On any failure nothing is left applied.
// The engine never retries; resubmitting is the caller's decision.
func (e *TransferEngine) Execute(ctx context.Context, candidate domain.Transfer) (*domain.Transfer, error) {
	logger := e.GetLogger(ctx).With(
		slog.Int64("from_account_id", candidate.FromAccountID),
		slog.Int64("to_account_id", candidate.ToAccountID),
		slog.String("amount", candidate.Amount.String()),
		slog.String("currency", candidate.Currency()),
	)

	if err := candidate.Validate(); err != nil {
		logger.Warn("Transfer rejected", slog.String("error", err.Error()))
		return nil, err
	}

	transfer, err := e.execute(ctx, candidate)
	if err != nil {
		if kind, ok := apperrors.KindOf(err); ok {
			logger.Warn("Transfer failed", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		} else {
			logger.Error("Transfer failed", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Transfer executed", slog.Int64("transfer_id", transfer.ID))
	return transfer, nil
}

func (e *TransferEngine) execute(ctx context.Context, candidate domain.Transfer) (*domain.Transfer, error) {
	tx, err := e.txManager.Begin(ctx, portsrepo.ReadCommitted)
	if err != nil {
		return nil, classifyStorageError("begin transfer transaction", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		// Rollback must happen even when ctx was cancelled.
		if rbErr := e.txManager.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
			e.LogError(ctx, rbErr, "Failed to roll back transfer transaction")
		}
	}()

	if err := e.checkCurrencies(ctx, tx, candidate); err != nil {
		return nil, err
	}

	for _, step := range lockOrder(candidate) {
		if err := e.applyBalanceChange(ctx, tx, step, candidate.Amount); err != nil {
			return nil, err
		}
	}

	// One clock sample per transfer. TIMESTAMPTZ keeps microseconds.
	timestamp := e.now().UTC().Truncate(time.Microsecond)

	id, err := e.transfers.InsertTransfer(ctx, tx, candidate, timestamp)
	if err != nil {
		return nil, classifyStorageError("record transfer", err)
	}

	if err := e.txManager.Commit(ctx, tx); err != nil {
		return nil, classifyStorageError("commit transfer", err)
	}
	committed = true

	transfer := candidate.Persisted(id, timestamp)
	return &transfer, nil
}

// checkCurrencies requires both accounts to exist and hold the transfer currency.
func (e *TransferEngine) checkCurrencies(ctx context.Context, tx portsrepo.Tx, candidate domain.Transfer) error {
	fromCurrency, err := e.accountCurrency(ctx, tx, candidate.FromAccountID)
	if err != nil {
		return err
	}
	toCurrency, err := e.accountCurrency(ctx, tx, candidate.ToAccountID)
	if err != nil {
		return err
	}

	for _, acc := range []struct {
		id       int64
		currency string
	}{{candidate.FromAccountID, fromCurrency}, {candidate.ToAccountID, toCurrency}} {
		if acc.currency != candidate.Currency() {
			return apperrors.NewTransferError(apperrors.KindCurrencyMismatch,
				fmt.Sprintf("Invalid currency: account %d holds %s, transfer is in %s", acc.id, acc.currency, candidate.Currency()), nil)
		}
	}
	return nil
}

func (e *TransferEngine) accountCurrency(ctx context.Context, tx portsrepo.Tx, accountID int64) (string, error) {
	currency, err := e.ledger.GetAccountCurrency(ctx, tx, accountID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", accountNotFound(accountID)
	}
	if err != nil {
		return "", classifyStorageError(fmt.Sprintf("read currency of account %d", accountID), err)
	}
	return currency, nil
}

// balanceStep is one of the two row updates of a transfer.
type balanceStep struct {
	accountID int64
	debit     bool
}

// lockOrder returns the debit and the credit of t sorted by ascending account id.
// Every transfer touching the same pair of rows therefore locks them in the same order,
// whichever direction it goes, so A->B and B->A can never wait on each other in a cycle.
func lockOrder(t domain.Transfer) [2]balanceStep {
	debit := balanceStep{accountID: t.FromAccountID, debit: true}
	credit := balanceStep{accountID: t.ToAccountID}
	if credit.accountID < debit.accountID {
		return [2]balanceStep{credit, debit}
	}
	return [2]balanceStep{debit, credit}
}

func (e *TransferEngine) applyBalanceChange(ctx context.Context, tx portsrepo.Tx, step balanceStep, amount domain.Money) error {
	if step.debit {
		rows, err := e.ledger.DebitAccount(ctx, tx, step.accountID, amount.Amount(), amount.Currency())
		if err != nil {
			return classifyStorageError(fmt.Sprintf("debit account %d", step.accountID), err)
		}
		// Existence and currency were checked in this transaction, so a miss means the
		// balance guard refused the debit.
		if rows == 0 {
			return insufficientFunds(nil)
		}
		return nil
	}

	rows, err := e.ledger.CreditAccount(ctx, tx, step.accountID, amount.Amount(), amount.Currency())
	if err != nil {
		return classifyStorageError(fmt.Sprintf("credit account %d", step.accountID), err)
	}
	if rows == 0 {
		return accountNotFound(step.accountID)
	}
	return nil
}

func accountNotFound(accountID int64) error {
	return apperrors.NewTransferError(apperrors.KindAccountNotFound,
		fmt.Sprintf("Account with id %d not found", accountID), nil)
}

func insufficientFunds(cause error) error {
	return apperrors.NewTransferError(apperrors.KindInsufficientFunds, "Insufficient funds", cause)
}

// classifyStorageError turns the storage failures the engine knows about into transfer
// kinds and wraps everything else as a generic failure.
func classifyStorageError(op string, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return insufficientFunds(err)
	case errors.Is(err, apperrors.ErrConcurrentConflict):
		return apperrors.NewTransferError(apperrors.KindConcurrentConflict,
			"Transfer aborted by a concurrent update", err)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
