package repository

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/account"
	txrepo "github.com/amirasaad/banking/pkg/repository/transaction"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new ledger repository bound to db.
func NewTransactionRepository(db *gorm.DB) txrepo.Repository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Append(ctx context.Context, tx *account.Transaction) error {
	m := Transaction{
		AccountNumber: tx.AccountNumber,
		Type:          string(tx.Kind),
		Amount:        tx.Amount,
		CreatedAt:     tx.CreatedAt,
	}
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	}); err != nil {
		return err
	}
	tx.ID = m.ID
	tx.CreatedAt = m.CreatedAt
	return nil
}

func (r *transactionRepository) ListRecent(
	ctx context.Context,
	accountNumber uint,
	limit int,
) ([]*account.Transaction, error) {
	var rows []Transaction
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("account_number = ?", accountNumber).
			Order("created_at desc").
			Order("transaction_id desc").
			Limit(limit).
			Find(&rows).Error
	}); err != nil {
		return nil, err
	}
	result := make([]*account.Transaction, 0, len(rows))
	for i := range rows {
		result = append(result, transactionFromModel(&rows[i]))
	}
	return result, nil
}
