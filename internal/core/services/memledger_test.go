package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// memLedger is an in-memory store with row-level write locks. A row locked by a debit or
// credit stays locked until its transaction commits or rolls back, like a Postgres UPDATE.
// Currency reads take no row lock.
type memLedger struct {
	mu        sync.Mutex
	rows      map[int64]*memRow
	transfers []domain.Transfer
	nextID    int64
}

type memRow struct {
	lock     sync.Mutex
	currency string
	balance  decimal.Decimal
}

type memTx struct {
	ledger  *memLedger
	held    map[int64]*memRow
	undo    []func()
	pending []domain.Transfer
	done    bool
}

var errMemTxDone = errors.New("transaction already closed")

func newMemLedger() *memLedger {
	return &memLedger{rows: make(map[int64]*memRow)}
}

func (l *memLedger) open(id int64, balance domain.Money) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows[id] = &memRow{currency: balance.Currency(), balance: balance.Amount()}
}

func (l *memLedger) balance(id int64) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rows[id].balance
}

func (l *memLedger) total() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum := decimal.Zero
	for _, row := range l.rows {
		sum = sum.Add(row.balance)
	}
	return sum
}

func (l *memLedger) recorded() []domain.Transfer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Transfer(nil), l.transfers...)
}

// TransactionManager

func (l *memLedger) Begin(_ context.Context, _ portsrepo.IsolationLevel) (portsrepo.Tx, error) {
	return &memTx{ledger: l, held: make(map[int64]*memRow)}, nil
}

func (l *memLedger) Commit(ctx context.Context, tx portsrepo.Tx) error {
	return tx.Commit(ctx)
}

func (l *memLedger) Rollback(ctx context.Context, tx portsrepo.Tx) error {
	return tx.Rollback(ctx)
}

func (t *memTx) Commit(context.Context) error {
	if t.done {
		return errMemTxDone
	}
	t.ledger.mu.Lock()
	t.ledger.transfers = append(t.ledger.transfers, t.pending...)
	t.ledger.mu.Unlock()
	t.release()
	return nil
}

func (t *memTx) Rollback(context.Context) error {
	if t.done {
		return nil
	}
	t.ledger.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.ledger.mu.Unlock()
	t.release()
	return nil
}

func (t *memTx) release() {
	t.done = true
	for _, row := range t.held {
		row.lock.Unlock()
	}
	t.held = nil
}

// lockRow returns the row with its write lock held by t, or nil when it does not exist.
func (t *memTx) lockRow(id int64) *memRow {
	if row, ok := t.held[id]; ok {
		return row
	}
	t.ledger.mu.Lock()
	row, ok := t.ledger.rows[id]
	t.ledger.mu.Unlock()
	if !ok {
		return nil
	}
	row.lock.Lock()
	t.held[id] = row
	return row
}

// AccountLedger

func (l *memLedger) GetAccountCurrency(_ context.Context, _ portsrepo.Tx, accountID int64) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	row, ok := l.rows[accountID]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return row.currency, nil
}

func (l *memLedger) DebitAccount(_ context.Context, tx portsrepo.Tx, accountID int64, amount decimal.Decimal, currency string) (int64, error) {
	return l.update(tx.(*memTx), accountID, amount.Neg(), currency)
}

func (l *memLedger) CreditAccount(_ context.Context, tx portsrepo.Tx, accountID int64, amount decimal.Decimal, currency string) (int64, error) {
	return l.update(tx.(*memTx), accountID, amount, currency)
}

func (l *memLedger) update(t *memTx, accountID int64, delta decimal.Decimal, currency string) (int64, error) {
	row := t.lockRow(accountID)
	if row == nil {
		return 0, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	next := row.balance.Add(delta)
	if row.currency != currency || next.IsNegative() {
		return 0, nil
	}
	previous := row.balance
	row.balance = next
	t.undo = append(t.undo, func() { row.balance = previous })
	return 1, nil
}

// TransferWriter

func (l *memLedger) InsertTransfer(_ context.Context, tx portsrepo.Tx, transfer domain.Transfer, timestamp time.Time) (int64, error) {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.mu.Unlock()
	t := tx.(*memTx)
	t.pending = append(t.pending, transfer.Persisted(id, timestamp))
	return id, nil
}

func sortedIDs(transfers []domain.Transfer) []int64 {
	ids := make([]int64, 0, len(transfers))
	for _, tr := range transfers {
		ids = append(ids, tr.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
