package initializer

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/amirasaad/banking/infra/attempts"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sqliteConfig(t *testing.T) *config.App {
	dir := t.TempDir()
	return &config.App{
		Env:       "test",
		Log:       &config.Log{Format: "text"},
		DB:        &config.DB{Url: filepath.Join(dir, "bank.db"), Driver: config.DriverSQLite, Migrate: true},
		Auth:      &config.Auth{Jwt: &config.Jwt{}, PinCost: 4, MaxAttempts: 3},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{},
		Ledger:    &config.Ledger{DepositLimit: decimal.NewFromInt(10000), HistoryLimit: 10},
		Export:    &config.Export{Path: filepath.Join(dir, "customers.csv")},
	}
}

func TestInitializeWithLogger_SQLite(t *testing.T) {
	cfg := sqliteConfig(t)
	deps, err := InitializeWithLogger(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NotNil(t, deps.Uow)
	assert.IsType(t, &attempts.MemoryStore{}, deps.Attempts)

	a := app.New(deps, cfg)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	balance, err := a.LedgerService.Balance(context.Background(), 10001)
	assert.Error(t, err, "fresh database has no accounts")
	assert.True(t, balance.IsZero())
}

func TestInitializeWithLogger_MissingURL(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DB.Url = ""
	_, err := InitializeWithLogger(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestInitializeWithLogger_BadRedisURL(t *testing.T) {
	var opened *gorm.DB
	restore := openDB
	openDB = func(cnf config.DB, env string) (*gorm.DB, error) {
		db, err := restore(cnf, env)
		opened = db
		return db, err
	}
	t.Cleanup(func() { openDB = restore })

	cfg := sqliteConfig(t)
	cfg.Redis.URL = "not-a-url"
	deps, err := InitializeWithLogger(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "Redis URL")
	assert.Nil(t, deps)

	require.NotNil(t, opened)
	sqlDB, err := opened.DB()
	require.NoError(t, err)
	assert.ErrorContains(t, sqlDB.Ping(), "database is closed")
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&buf, &config.Log{Format: "json", Prefix: "[banking]"})
	logger.Info("hello", "account_number", 10001)
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "account_number")
	assert.Contains(t, buf.String(), "[banking]")

	buf.Reset()
	SetupLogger(&buf, nil).Debug("hidden")
	assert.Empty(t, buf.String(), "nil config logs at info")
}
