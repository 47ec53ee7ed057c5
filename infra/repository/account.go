package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	accountrepo "github.com/amirasaad/banking/pkg/repository/account"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository bound to db.
func NewAccountRepository(db *gorm.DB) accountrepo.Repository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	m := Account{
		Number:     a.Number,
		CustomerID: a.CustomerID,
		PIN:        a.PIN,
		Balance:    a.Balance,
	}
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	}); err != nil {
		return err
	}
	a.Number = m.Number
	a.CreatedAt = m.CreatedAt
	a.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *accountRepository) Get(ctx context.Context, number uint) (*account.Account, error) {
	var m Account
	err := WrapError(func() error {
		return r.db.WithContext(ctx).Where("account_number = ?", number).Take(&m).Error
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, account.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return accountFromModel(&m), nil
}

func (r *accountRepository) UpdatePIN(ctx context.Context, number uint, pinHash string) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_number = ?", number).
		Update("pin", pinHash)
	if err := MapGormErrorToDomain(res.Error); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) Credit(
	ctx context.Context,
	number uint,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_number = ?", number).
		Update("balance", gorm.Expr("balance + ?", amount))
	if err := MapGormErrorToDomain(res.Error); err != nil {
		return decimal.Zero, err
	}
	if res.RowsAffected == 0 {
		return decimal.Zero, account.ErrAccountNotFound
	}
	return r.balance(ctx, number)
}

// Debit applies the withdrawal only when the row still covers it, so two
// concurrent withdrawals can never drive the balance negative.
func (r *accountRepository) Debit(
	ctx context.Context,
	number uint,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_number = ? AND balance >= ?", number, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if err := MapGormErrorToDomain(res.Error); err != nil {
		return decimal.Zero, err
	}
	if res.RowsAffected == 0 {
		if _, err := r.Get(ctx, number); err != nil {
			return decimal.Zero, err
		}
		return decimal.Zero, account.ErrInsufficientFunds
	}
	return r.balance(ctx, number)
}

func (r *accountRepository) balance(ctx context.Context, number uint) (decimal.Decimal, error) {
	a, err := r.Get(ctx, number)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Balance, nil
}
