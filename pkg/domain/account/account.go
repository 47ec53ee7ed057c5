package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/shopspring/decimal"
)

// OpeningNumber is the first account number handed out by the store.
const OpeningNumber uint = 10001

var (
	// DefaultBalance is credited to every new account.
	DefaultBalance = decimal.NewFromInt(100)
	// DefaultDepositLimit caps a single deposit.
	DefaultDepositLimit = decimal.NewFromInt(10_000)
	// MinimumAmount is the smallest amount a transaction may carry.
	MinimumAmount = money.Cent
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("account %w", domain.ErrNotFound)

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDepositLimitExceeded is returned when a single deposit exceeds the cap.
	ErrDepositLimitExceeded = errors.New("deposit limit exceeded")

	// ErrInvalidTransactionKind is returned for anything other than deposit or withdrawal.
	ErrInvalidTransactionKind = errors.New("invalid transaction type")

	// ErrAmountTooSmall is returned when an amount is below one cent.
	ErrAmountTooSmall = errors.New("minimum amount is $0.01")
)

// Account is the balance-bearing record owned by exactly one customer.
//
// Invariants:
//   - Balance is never negative.
//   - PIN holds the bcrypt hash of a 4-digit PIN; the plain PIN is never stored.
type Account struct {
	Number     uint
	CustomerID uint
	PIN        string
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// New returns an unsaved account for customerID with the default opening balance.
func New(customerID uint, pinHash string) *Account {
	now := time.Now().UTC()
	return &Account{
		CustomerID: customerID,
		PIN:        pinHash,
		Balance:    DefaultBalance,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ValidateAmount checks the rules shared by every transaction amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThan(MinimumAmount) {
		return ErrAmountTooSmall
	}
	return money.CheckPrecision(amount)
}

// ValidateDeposit checks a deposit against limit. A zero limit means DefaultDepositLimit.
func (a *Account) ValidateDeposit(amount, limit decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if limit.IsZero() {
		limit = DefaultDepositLimit
	}
	if amount.GreaterThan(limit) {
		return ErrDepositLimitExceeded
	}
	return nil
}

// ValidateWithdraw checks that amount can be taken without the balance going negative.
// The store re-checks the same condition atomically when applying the debit.
func (a *Account) ValidateWithdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}
