package repositories

import (
	"context"
)

// IsolationLevel is the isolation a unit of work is opened with.
type IsolationLevel string

const (
	ReadCommitted  IsolationLevel = "READ COMMITTED"
	RepeatableRead IsolationLevel = "REPEATABLE READ"
	Serializable   IsolationLevel = "SERIALIZABLE"
)

// Tx is an open unit of work. Repositories receiving a Tx run their statements inside it.
// pgx.Tx satisfies this interface.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction with the given isolation level
	Begin(ctx context.Context, isolation IsolationLevel) (Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx Tx) error

	// Rollback rolls back a transaction. Rolling back a finished transaction is a no-op.
	Rollback(ctx context.Context, tx Tx) error
}
