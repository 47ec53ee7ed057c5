//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/banking/infra"
	"github.com/amirasaad/banking/infra/repository"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRepositories_Postgres(t *testing.T) {
	ctx := context.Background()
	container, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDBConnection(config.DB{Url: dsn, Driver: config.DriverPostgres}, "test")
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db, config.DriverPostgres))
	// A second run is a no-op.
	require.NoError(t, infra.Migrate(db, config.DriverPostgres))

	runContract(t, db)

	t.Run("constraints map to domain errors", func(t *testing.T) {
		ledger := repository.NewTransactionRepository(db)
		err := ledger.Append(ctx, account.NewTransaction(1, account.KindDeposit, decimal.NewFromInt(5)))
		assert.ErrorIs(t, err, domain.ErrNotFound)

		err = db.Exec("UPDATE accounts SET balance = -1 WHERE account_number = (SELECT MIN(account_number) FROM accounts)").Error
		assert.ErrorIs(t, repository.MapGormErrorToDomain(err), domain.ErrValidation)
	})
}
