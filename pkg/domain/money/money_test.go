package money_test

import (
	"testing"

	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"whole dollars", "100", "100.00", nil},
		{"cents", "12.34", "12.34", nil},
		{"dollar sign and separators", "$1,000.50", "1000.50", nil},
		{"surrounding space", "  7.5 ", "7.50", nil},
		{"sub-cent precision", "0.001", "", money.ErrTooManyDecimals},
		{"empty", "", "", money.ErrInvalidAmount},
		{"garbage", "ten", "", money.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, money.Format(got))
		})
	}
}

func TestCheckPrecision(t *testing.T) {
	assert.NoError(t, money.CheckPrecision(decimal.RequireFromString("10.10")))
	assert.NoError(t, money.CheckPrecision(decimal.RequireFromString("10.100")))
	assert.ErrorIs(t, money.CheckPrecision(decimal.RequireFromString("10.105")), money.ErrTooManyDecimals)
}

func TestCent(t *testing.T) {
	assert.Equal(t, "0.01", money.Format(money.Cent))
}

func TestDisplay(t *testing.T) {
	tests := map[string]string{
		"0":          "$0.00",
		"5.5":        "$5.50",
		"100":        "$100.00",
		"1000":       "$1,000.00",
		"1234567.89": "$1,234,567.89",
		"-42.1":      "-$42.10",
	}
	for in, want := range tests {
		assert.Equal(t, want, money.Display(decimal.RequireFromString(in)), in)
	}
}
