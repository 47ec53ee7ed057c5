package account

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// Repository defines data access for accounts.
type Repository interface {
	// Create inserts a, assigning a.Number from the store's sequence.
	Create(ctx context.Context, a *account.Account) error

	// Get returns the account or account.ErrAccountNotFound.
	Get(ctx context.Context, number uint) (*account.Account, error)

	// UpdatePIN overwrites the stored PIN hash.
	UpdatePIN(ctx context.Context, number uint, pinHash string) error

	// Credit adds amount to the balance and returns the new balance.
	Credit(ctx context.Context, number uint, amount decimal.Decimal) (decimal.Decimal, error)

	// Debit subtracts amount only if the balance covers it, in a single
	// conditional update, and returns the new balance. It fails with
	// account.ErrInsufficientFunds when the condition does not hold.
	Debit(ctx context.Context, number uint, amount decimal.Decimal) (decimal.Decimal, error)
}
