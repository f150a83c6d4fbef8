package pgsql

import (
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:    newPgxTransactionManager(dbPool),
		AccountRepo:  newPgxAccountRepository(dbPool),
		TransferRepo: newPgxTransferRepository(dbPool),
	}
}
