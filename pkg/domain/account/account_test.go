package account_test

import (
	"io"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/amirasaad/banking/pkg/domain"
	domainaccount "github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewAccount(t *testing.T) {
	t.Parallel()
	acc := domainaccount.New(7, "hash")
	assert.Equal(t, uint(7), acc.CustomerID)
	assert.Equal(t, "100.00", money.Format(acc.Balance))
	assert.False(t, acc.CreatedAt.IsZero())
}

func TestValidateWithdraw(t *testing.T) {
	t.Parallel()
	acc := domainaccount.New(1, "hash")

	t.Run("successful withdrawal", func(t *testing.T) {
		assert.NoError(t, acc.ValidateWithdraw(amount("50")))
	})

	t.Run("whole balance", func(t *testing.T) {
		assert.NoError(t, acc.ValidateWithdraw(amount("100.00")))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		assert.ErrorIs(t, acc.ValidateWithdraw(amount("150.00")), domainaccount.ErrInsufficientFunds)
	})

	t.Run("below one cent", func(t *testing.T) {
		assert.ErrorIs(t, acc.ValidateWithdraw(amount("0.001")), domainaccount.ErrAmountTooSmall)
	})

	t.Run("sub-cent precision", func(t *testing.T) {
		assert.ErrorIs(t, acc.ValidateWithdraw(amount("1.005")), money.ErrTooManyDecimals)
	})
}

func TestValidateDeposit(t *testing.T) {
	t.Parallel()
	acc := domainaccount.New(1, "hash")

	tests := []struct {
		name    string
		amount  string
		limit   decimal.Decimal
		wantErr error
	}{
		{"at the cap", "10000.00", decimal.Zero, nil},
		{"over the cap", "10000.01", decimal.Zero, domainaccount.ErrDepositLimitExceeded},
		{"custom cap", "600", decimal.NewFromInt(500), domainaccount.ErrDepositLimitExceeded},
		{"zero", "0", decimal.Zero, domainaccount.ErrAmountTooSmall},
		{"negative", "-5", decimal.Zero, domainaccount.ErrAmountTooSmall},
		{"one cent", "0.01", decimal.Zero, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := acc.ValidateDeposit(amount(tt.amount), tt.limit)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateAmount(t *testing.T) {
	t.Parallel()
	assert.NoError(t, domainaccount.ValidateAmount(amount("0.01")))
	assert.NoError(t, domainaccount.ValidateAmount(amount("12.50")))
	assert.ErrorIs(t, domainaccount.ValidateAmount(amount("0.009")), domainaccount.ErrAmountTooSmall)
	assert.ErrorIs(t, domainaccount.ValidateAmount(amount("1.005")), money.ErrTooManyDecimals)
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	k, err := domainaccount.ParseKind(" Deposit ")
	require.NoError(t, err)
	assert.Equal(t, domainaccount.KindDeposit, k)
	assert.Equal(t, "Deposit", k.Title())

	k, err = domainaccount.ParseKind("WITHDRAWAL")
	require.NoError(t, err)
	assert.Equal(t, domainaccount.KindWithdrawal, k)

	_, err = domainaccount.ParseKind("transfer")
	assert.ErrorIs(t, err, domainaccount.ErrInvalidTransactionKind)
}

func TestErrAccountNotFoundIsNotFound(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, domainaccount.ErrAccountNotFound, domain.ErrNotFound)
	assert.Equal(t, "account not found", domainaccount.ErrAccountNotFound.Error())
}
