package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRead is a read-optimized view of a ledger entry.
type TransactionRead struct {
	ID            uint            `json:"id"`
	AccountNumber uint            `json:"account_number"`
	Kind          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"timestamp"`
}

// Confirmation is returned after a ledger entry is recorded.
type Confirmation struct {
	TransactionID uint            `json:"transaction_id"`
	AccountNumber uint            `json:"account_number"`
	Kind          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	Message       string          `json:"message"`
}
