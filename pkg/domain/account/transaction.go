package account

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the direction of a ledger entry.
type Kind string

// Ledger entry kinds.
const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// ParseKind accepts a kind in any letter case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindDeposit, KindWithdrawal:
		return k, nil
	default:
		return "", ErrInvalidTransactionKind
	}
}

// Title returns the kind capitalised for display, e.g. "Deposit".
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Transaction is one append-only ledger entry. It is never updated or deleted.
type Transaction struct {
	ID            uint
	AccountNumber uint
	Kind          Kind
	Amount        decimal.Decimal
	CreatedAt     time.Time
}

// NewTransaction stamps a new entry with the current time.
func NewTransaction(accountNumber uint, kind Kind, amount decimal.Decimal) *Transaction {
	return &Transaction{
		AccountNumber: accountNumber,
		Kind:          kind,
		Amount:        amount,
		CreatedAt:     time.Now().UTC(),
	}
}
