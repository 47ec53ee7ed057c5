package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirasaad/banking/infra/attempts"
	"github.com/amirasaad/banking/internal/fixtures/memory"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/pkg/service/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func testConfig(t *testing.T) *config.App {
	return &config.App{
		Env:    "test",
		Auth:   &config.Auth{Jwt: &config.Jwt{Secret: "s", Expiry: time.Hour}, PinCost: bcrypt.MinCost, MaxAttempts: 2, Lockout: time.Minute},
		Ledger: &config.Ledger{DepositLimit: decimal.NewFromInt(500), HistoryLimit: 5},
		Export: &config.Export{Path: filepath.Join(t.TempDir(), "customers.csv"), OnRegister: true},
	}
}

func TestNew_WiresConfiguration(t *testing.T) {
	t.Parallel()
	cfg := testConfig(t)
	a := app.New(&app.Deps{
		Uow:      memory.NewUoW(memory.NewStore()),
		Attempts: attempts.NewMemoryStore(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, cfg)
	ctx := context.Background()

	number, err := a.CustomerService.Register(ctx, dto.Registration{
		FirstName: "Jane", LastName: "Doe", DateOfBirth: "1990-05-01",
		Building: "12", Street: "Main St.", City: "Montreal", Province: "Quebec",
		PostalCode: "H2Z 1A1", PIN: "1234",
	})
	require.NoError(t, err)
	assert.FileExists(t, cfg.Export.Path, "export runs after registration")

	_, err = a.LedgerService.Record(ctx, number, "deposit", decimal.NewFromInt(501))
	assert.Error(t, err, "configured deposit limit applies")

	for _i := 0; _i < 2; _i++ {
		_, _, _ = a.AuthService.Login(ctx, number, "0000")
	}
	_, _, err = a.AuthService.Login(ctx, number, "1234")
	assert.ErrorIs(t, err, auth.ErrTooManyAttempts)

	token, err := a.AuthService.GenerateToken(number)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestClose_ReleasesInReverseOrder(t *testing.T) {
	t.Parallel()
	var order []int
	boom := errors.New("boom")
	a := app.New(&app.Deps{
		Uow:    memory.NewUoW(memory.NewStore()),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Closers: []io.Closer{
			closerFunc(func() error { order = append(order, 1); return nil }),
			closerFunc(func() error { order = append(order, 2); return boom }),
		},
	}, testConfig(t))

	err := a.Close(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{2, 1}, order)
}
