// Package ledger records deposits and withdrawals and reads account history.
package ledger

import (
	"context"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/shopspring/decimal"
)

const (
	// DefaultHistoryLimit is used when History is asked for zero or fewer rows.
	DefaultHistoryLimit = 10
	// MaxHistoryLimit caps a single History call.
	MaxHistoryLimit = 100
)

// Option configures a Service.
type Option func(*Service)

// WithDepositLimit overrides account.DefaultDepositLimit.
func WithDepositLimit(limit decimal.Decimal) Option {
	return func(s *Service) { s.depositLimit = limit }
}

// WithHistoryLimit overrides DefaultHistoryLimit.
func WithHistoryLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.historyLimit = min(n, MaxHistoryLimit)
		}
	}
}

// Service records deposits and withdrawals and reads balances and history.
type Service struct {
	uow          repository.UnitOfWork
	logger       *slog.Logger
	depositLimit decimal.Decimal
	historyLimit int
}

// New creates a Service with the default deposit cap and history page size.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		uow:          uow,
		logger:       logger,
		depositLimit: account.DefaultDepositLimit,
		historyLimit: DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record applies a deposit or withdrawal and appends it to the ledger in one
// transaction. kind is case-insensitive. On any error the balance and the
// ledger are left untouched.
func (s *Service) Record(
	ctx context.Context,
	accountNumber uint,
	kind string,
	amount decimal.Decimal,
) (conf *dto.Confirmation, err error) {
	log := s.logger.With("context", "Record", "account_number", accountNumber)
	log.Debug("Record called", "kind", kind, "amount", amount.String())

	if err = account.ValidateAmount(amount); err != nil {
		return nil, err
	}
	k, err := account.ParseKind(kind)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		a, err := accounts.Get(ctx, accountNumber)
		if err != nil {
			return err
		}

		var balance decimal.Decimal
		switch k {
		case account.KindDeposit:
			if err := a.ValidateDeposit(amount, s.depositLimit); err != nil {
				return err
			}
			balance, err = accounts.Credit(ctx, accountNumber, amount)
		case account.KindWithdrawal:
			if err := a.ValidateWithdraw(amount); err != nil {
				return err
			}
			balance, err = accounts.Debit(ctx, accountNumber, amount)
		}
		if err != nil {
			return err
		}

		tx := account.NewTransaction(accountNumber, k, amount)
		if err := ledger.Append(ctx, tx); err != nil {
			return err
		}
		conf = &dto.Confirmation{
			TransactionID: tx.ID,
			AccountNumber: accountNumber,
			Kind:          string(k),
			Amount:        amount,
			Balance:       balance,
			Message:       k.Title() + " successful.",
		}
		return nil
	})
	if err != nil {
		log.Info("Transaction rejected", "error", err)
		return nil, err
	}
	log.Info("Transaction recorded", "kind", k, "amount", amount.StringFixed(2), "balance", conf.Balance.StringFixed(2))
	return conf, nil
}

// History returns up to limit entries, newest first. A limit of zero or less
// uses the configured default; anything above MaxHistoryLimit is capped.
func (s *Service) History(
	ctx context.Context,
	accountNumber uint,
	limit int,
) (rows []*dto.TransactionRead, err error) {
	if limit <= 0 {
		limit = s.historyLimit
	}
	limit = min(limit, MaxHistoryLimit)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := accounts.Get(ctx, accountNumber); err != nil {
			return err
		}
		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		txs, err := ledger.ListRecent(ctx, accountNumber, limit)
		if err != nil {
			return err
		}
		rows = make([]*dto.TransactionRead, 0, len(txs))
		for _, tx := range txs {
			rows = append(rows, &dto.TransactionRead{
				ID:            tx.ID,
				AccountNumber: tx.AccountNumber,
				Kind:          string(tx.Kind),
				Amount:        tx.Amount,
				CreatedAt:     tx.CreatedAt,
			})
		}
		return nil
	})
	if err != nil {
		rows = nil
	}
	return
}

// Balance returns the current balance of the account.
func (s *Service) Balance(
	ctx context.Context,
	accountNumber uint,
) (balance decimal.Decimal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err := accounts.Get(ctx, accountNumber)
		if err != nil {
			return err
		}
		balance = a.Balance
		return nil
	})
	return
}
