package services

import (
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
)

// NewContainer wires every service over the given repositories.
func NewContainer(repos portsrepo.RepositoryProvider, engineOpts ...TransferEngineOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Accounts: NewAccountService(repos.AccountRepo),
		Query:    NewQueryService(repos.AccountRepo, repos.TransferRepo),
		Engine:   NewTransferEngine(repos.TxManager, repos.AccountRepo, repos.TransferRepo, engineOpts...),
	}
}
