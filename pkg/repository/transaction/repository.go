package transaction

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/account"
)

// Repository defines data access for the append-only ledger.
type Repository interface {
	// Append inserts tx, assigning tx.ID.
	Append(ctx context.Context, tx *account.Transaction) error

	// ListRecent returns up to limit entries for the account, newest first.
	ListRecent(ctx context.Context, accountNumber uint, limit int) ([]*account.Transaction, error)
}
