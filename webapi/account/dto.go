package account

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/shopspring/decimal"
)

// TransactionRequest represents the request body for a deposit or withdrawal.
// Amount accepts a JSON number or string.
type TransactionRequest struct {
	Type   string          `json:"type" validate:"required"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00"`
}

// BalanceResponse reports the balance with exactly two decimal places.
type BalanceResponse struct {
	AccountNumber uint   `json:"account_number"`
	Balance       string `json:"balance" example:"100.00"`
	Display       string `json:"display" example:"$100.00"`
}

// TransactionResponse is one ledger row.
type TransactionResponse struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount" example:"50.00"`
	Timestamp time.Time `json:"timestamp"`
}

// ConfirmationResponse is returned after a deposit or withdrawal.
type ConfirmationResponse struct {
	TransactionID uint   `json:"transaction_id"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

func toTransactionResponse(r *dto.TransactionRead) TransactionResponse {
	return TransactionResponse{
		ID:        r.ID,
		Type:      r.Kind,
		Amount:    money.Format(r.Amount),
		Timestamp: r.CreatedAt,
	}
}

func toConfirmationResponse(c *dto.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{
		TransactionID: c.TransactionID,
		Type:          c.Kind,
		Amount:        money.Format(c.Amount),
		Balance:       money.Format(c.Balance),
	}
}
