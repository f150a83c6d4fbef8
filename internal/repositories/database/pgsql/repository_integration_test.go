//go:build integration

package pgsql_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
	"github.com/SscSPs/money_transfer_app/internal/core/services"
	"github.com/SscSPs/money_transfer_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/money_transfer_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
	svc       *portssvc.ServiceContainer
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("transfers"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(database.RunMigrations(dsn, "file://../../../../migrations", slog.Default()))

	s.pool, err = database.NewPgxPool(ctx, dsn, 20, true)
	s.Require().NoError(err)

	s.repos = pgsql.NewRepositoryProvider(s.pool)
	s.svc = services.NewContainer(s.repos)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE transfers, accounts RESTART IDENTITY;`)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) openAccount(owner string, balance domain.Money) int64 {
	account, err := s.svc.Accounts.CreateAccount(context.Background(), owner, balance)
	s.Require().NoError(err)
	return account.ID
}

func (s *PostgresIntegrationSuite) balanceOf(id int64) string {
	account, err := s.svc.Query.GetAccount(context.Background(), id)
	s.Require().NoError(err)
	return account.Balance.String()
}

func (s *PostgresIntegrationSuite) assertKind(err error, want apperrors.Kind) {
	s.Require().Error(err)
	kind, ok := apperrors.KindOf(err)
	s.Require().True(ok, "expected a transfer error, got %v", err)
	s.Equal(want, kind)
}

func (s *PostgresIntegrationSuite) TestAccounts_RoundTrip() {
	ctx := context.Background()
	id := s.openAccount("Alice", domain.MustMoney("USD", "100.21"))

	account, err := s.svc.Query.GetAccount(ctx, id)
	s.Require().NoError(err)
	s.Equal("Alice", account.Owner)
	s.Equal("USD", account.Currency())
	s.Equal("100.21", account.Balance.String())

	s.openAccount("Bob", domain.MustMoney("JPY", "500"))
	accounts, err := s.svc.Query.ListAccounts(ctx)
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal(id, accounts[0].ID)
	s.Equal("500", accounts[1].Balance.String())

	_, err = s.svc.Query.GetAccount(ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestTransfer_MovesFundsAndRecordsRow() {
	ctx := context.Background()
	from := s.openAccount("Alice", domain.MustMoney("USD", "100.21"))
	to := s.openAccount("Bob", domain.MustMoney("USD", "35.17"))

	transfer, err := s.svc.Engine.Execute(ctx, domain.Transfer{FromAccountID: from, ToAccountID: to, Amount: domain.MustMoney("USD", "10.12")})
	s.Require().NoError(err)

	s.Equal("90.09", s.balanceOf(from))
	s.Equal("45.29", s.balanceOf(to))

	stored, err := s.svc.Query.GetTransfer(ctx, transfer.ID, to)
	s.Require().NoError(err)
	s.Equal("10.12", stored.Amount.String())
	s.True(transfer.Timestamp.Equal(stored.Timestamp))

	_, err = s.svc.Query.GetTransfer(ctx, transfer.ID, s.openAccount("Eve", domain.MustMoney("USD", "0")))
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestTransfer_FailuresLeaveNoTrace() {
	ctx := context.Background()
	poor := s.openAccount("Alice", domain.MustMoney("USD", "1.21"))
	dollars := s.openAccount("Bob", domain.MustMoney("USD", "0"))
	euros := s.openAccount("Carol", domain.MustMoney("EUR", "10"))

	_, err := s.svc.Engine.Execute(ctx, domain.Transfer{FromAccountID: poor, ToAccountID: dollars, Amount: domain.MustMoney("USD", "10.12")})
	s.assertKind(err, apperrors.KindInsufficientFunds)

	_, err = s.svc.Engine.Execute(ctx, domain.Transfer{FromAccountID: poor, ToAccountID: euros, Amount: domain.MustMoney("USD", "1")})
	s.assertKind(err, apperrors.KindCurrencyMismatch)

	_, err = s.svc.Engine.Execute(ctx, domain.Transfer{FromAccountID: poor, ToAccountID: 12345, Amount: domain.MustMoney("USD", "1")})
	s.assertKind(err, apperrors.KindAccountNotFound)

	s.Equal("1.21", s.balanceOf(poor))
	s.Equal("0.00", s.balanceOf(dollars))
	s.Equal("10.00", s.balanceOf(euros))

	transfers, err := s.svc.Query.ListTransfersForAccount(ctx, poor)
	s.Require().NoError(err)
	s.Empty(transfers)
}

func (s *PostgresIntegrationSuite) TestTransfer_ListInInsertionOrder() {
	ctx := context.Background()
	a := s.openAccount("Alice", domain.MustMoney("USD", "10"))
	b := s.openAccount("Bob", domain.MustMoney("USD", "10"))

	first, err := s.svc.Engine.Execute(ctx, domain.Transfer{FromAccountID: a, ToAccountID: b, Amount: domain.MustMoney("USD", "1")})
	s.Require().NoError(err)
	second, err := s.svc.Engine.Execute(ctx, domain.Transfer{FromAccountID: b, ToAccountID: a, Amount: domain.MustMoney("USD", "2")})
	s.Require().NoError(err)

	transfers, err := s.svc.Query.ListTransfersForAccount(ctx, a)
	s.Require().NoError(err)
	s.Require().Len(transfers, 2)
	s.Equal(first.ID, transfers[0].ID)
	s.Equal(second.ID, transfers[1].ID)
}

func (s *PostgresIntegrationSuite) TestTransfer_ConcurrentOppositeDirections() {
	ctx := context.Background()
	a := s.openAccount("Alice", domain.MustMoney("USD", "1000.00"))
	b := s.openAccount("Bob", domain.MustMoney("USD", "1000.00"))

	const perDirection = 40
	var wg sync.WaitGroup
	errs := make(chan error, 2*perDirection)
	for i := 0; i < perDirection; i++ {
		for _, pair := range [][2]int64{{a, b}, {b, a}} {
			wg.Add(1)
			go func(from, to int64) {
				defer wg.Done()
				_, err := s.svc.Engine.Execute(ctx, domain.Transfer{FromAccountID: from, ToAccountID: to, Amount: domain.MustMoney("USD", "1.25")})
				errs <- err
			}(pair[0], pair[1])
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
	s.Equal("1000.00", s.balanceOf(a))
	s.Equal("1000.00", s.balanceOf(b))

	transfers, err := s.svc.Query.ListTransfersForAccount(ctx, a)
	s.Require().NoError(err)
	s.Len(transfers, 2*perDirection)
}

func (s *PostgresIntegrationSuite) TestBalanceCheckConstraintMapsToInsufficientFunds() {
	ctx := context.Background()
	id := s.openAccount("Alice", domain.MustMoney("USD", "1"))

	_, err := s.pool.Exec(ctx, `UPDATE accounts SET balance = balance - 5 WHERE id = $1`, id)
	s.Require().Error(err)

	tx, err := s.repos.TxManager.Begin(ctx, portsrepo.ReadCommitted)
	s.Require().NoError(err)
	defer func() { s.NoError(s.repos.TxManager.Rollback(ctx, tx)) }()

	// Crediting a negative amount bypasses the debit guard and trips the CHECK.
	_, err = s.repos.AccountRepo.CreditAccount(ctx, tx, id, domain.MustMoney("USD", "-5").Amount(), "USD")
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}
