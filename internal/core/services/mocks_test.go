package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTx is an opaque transaction handle handed out by MockTransactionManager.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockTransactionManager is a mock type for the TransactionManager interface
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Begin(ctx context.Context, isolation portsrepo.IsolationLevel) (portsrepo.Tx, error) {
	args := m.Called(ctx, isolation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(portsrepo.Tx), args.Error(1)
}

func (m *MockTransactionManager) Commit(ctx context.Context, tx portsrepo.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionManager) Rollback(ctx context.Context, tx portsrepo.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) GetAccountCurrency(ctx context.Context, tx portsrepo.Tx, accountID int64) (string, error) {
	args := m.Called(ctx, tx, accountID)
	return args.String(0), args.Error(1)
}

func (m *MockAccountRepository) DebitAccount(ctx context.Context, tx portsrepo.Tx, accountID int64, amount decimal.Decimal, currency string) (int64, error) {
	args := m.Called(ctx, tx, accountID, amount, currency)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) CreditAccount(ctx context.Context, tx portsrepo.Tx, accountID int64, amount decimal.Decimal, currency string) (int64, error) {
	args := m.Called(ctx, tx, accountID, amount, currency)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransferRepository is a mock type for the TransferRepositoryFacade interface
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) ListTransfersByAccountID(ctx context.Context, accountID int64) ([]domain.Transfer, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) FindTransferForAccount(ctx context.Context, transferID int64, accountID int64) (*domain.Transfer, error) {
	args := m.Called(ctx, transferID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) InsertTransfer(ctx context.Context, tx portsrepo.Tx, transfer domain.Transfer, timestamp time.Time) (int64, error) {
	args := m.Called(ctx, tx, transfer, timestamp)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ portsrepo.TransactionManager       = (*MockTransactionManager)(nil)
	_ portsrepo.AccountRepositoryFacade  = (*MockAccountRepository)(nil)
	_ portsrepo.TransferRepositoryFacade = (*MockTransferRepository)(nil)
)
