package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/banking/infra/repository"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/customer"
	repo "github.com/amirasaad/banking/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCustomer(first string) *customer.Customer {
	return &customer.Customer{
		FirstName:   first,
		LastName:    "Doe",
		DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Profile: customer.Profile{
			Building:   "12",
			Street:     "Main St.",
			City:       "Montreal",
			Province:   "Quebec",
			PostalCode: "H2Z 1A1",
		},
	}
}

// open registers a customer with an account inside one unit of work.
func open(t *testing.T, uow repo.UnitOfWork, first string) uint {
	t.Helper()
	var number uint
	err := uow.Do(context.Background(), func(uow repo.UnitOfWork) error {
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		c := newCustomer(first)
		if err := customers.Create(context.Background(), c); err != nil {
			return err
		}
		a := account.New(c.ID, "hash")
		if err := accounts.Create(context.Background(), a); err != nil {
			return err
		}
		number = a.Number
		return nil
	})
	require.NoError(t, err)
	return number
}

// runContract exercises the repositories against a migrated database.
func runContract(t *testing.T, db *gorm.DB) {
	uow := repository.NewUoW(db)
	ctx := context.Background()

	t.Run("account numbers start at the opening number", func(t *testing.T) {
		first := open(t, uow, "Jane")
		second := open(t, uow, "John")
		assert.GreaterOrEqual(t, first, account.OpeningNumber)
		assert.Equal(t, first+1, second)
	})

	t.Run("register rolls back on account failure", func(t *testing.T) {
		var before int64
		require.NoError(t, db.Model(&repository.Customer{}).Count(&before).Error)

		boom := errors.New("boom")
		err := uow.Do(ctx, func(uow repo.UnitOfWork) error {
			customers, err := uow.CustomerRepository()
			if err != nil {
				return err
			}
			if err := customers.Create(ctx, newCustomer("Ghost")); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		var after int64
		require.NoError(t, db.Model(&repository.Customer{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})

	t.Run("credit debit and ledger", func(t *testing.T) {
		number := open(t, uow, "Ledger")
		accounts, err := uow.AccountRepository()
		require.NoError(t, err)
		ledger, err := uow.TransactionRepository()
		require.NoError(t, err)

		balance, err := accounts.Credit(ctx, number, decimal.RequireFromString("50.25"))
		require.NoError(t, err)
		assert.Equal(t, "150.25", balance.StringFixed(2))

		balance, err = accounts.Debit(ctx, number, decimal.RequireFromString("150.25"))
		require.NoError(t, err)
		assert.True(t, balance.IsZero())

		_, err = accounts.Debit(ctx, number, decimal.RequireFromString("0.01"))
		assert.ErrorIs(t, err, account.ErrInsufficientFunds)

		_, err = accounts.Debit(ctx, 1, decimal.RequireFromString("0.01"))
		assert.ErrorIs(t, err, account.ErrAccountNotFound)

		for _, k := range []account.Kind{account.KindDeposit, account.KindWithdrawal} {
			require.NoError(t, ledger.Append(ctx, account.NewTransaction(number, k, decimal.NewFromInt(1))))
		}
		rows, err := ledger.ListRecent(ctx, number, 10)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, account.KindWithdrawal, rows[0].Kind)
		assert.Greater(t, rows[0].ID, rows[1].ID)

		rows, err = ledger.ListRecent(ctx, number, 1)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("concurrent debits never overdraw", func(t *testing.T) {
		number := open(t, uow, "Race")
		accounts, err := uow.AccountRepository()
		require.NoError(t, err)

		var wg sync.WaitGroup
		var mu sync.Mutex
		var succeeded int
		for _i := 0; _i < 5; _i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := accounts.Debit(ctx, number, decimal.NewFromInt(30)); err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		a, err := accounts.Get(ctx, number)
		require.NoError(t, err)
		assert.Equal(t, 3, succeeded)
		assert.Equal(t, "10.00", a.Balance.StringFixed(2))
	})

	t.Run("customer profile round trip", func(t *testing.T) {
		number := open(t, uow, "Profile")
		customers, err := uow.CustomerRepository()
		require.NoError(t, err)

		c, err := customers.GetByAccount(ctx, number)
		require.NoError(t, err)
		assert.Equal(t, "Profile", c.FirstName)
		assert.Equal(t, "1990-05-01", c.DateOfBirth.Format(customer.DateLayout))
		assert.Empty(t, c.Email)

		p := c.Profile
		p.Email = "p@example.com"
		require.NoError(t, customers.UpdateProfile(ctx, c.ID, p))

		c, err = customers.GetByAccount(ctx, number)
		require.NoError(t, err)
		assert.Equal(t, "p@example.com", c.Email)
		assert.Equal(t, "Main St.", c.Street)

		_, err = customers.GetByAccount(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		rows, err := customers.ListWithAccounts(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, rows)
		for i := 1; i < len(rows); i++ {
			assert.Less(t, rows[i-1].AccountNumber, rows[i].AccountNumber)
		}
	})

	t.Run("update PIN", func(t *testing.T) {
		number := open(t, uow, "Pin")
		accounts, err := uow.AccountRepository()
		require.NoError(t, err)

		require.NoError(t, accounts.UpdatePIN(ctx, number, "new-hash"))
		a, err := accounts.Get(ctx, number)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", a.PIN)

		assert.ErrorIs(t, accounts.UpdatePIN(ctx, 1, "x"), account.ErrAccountNotFound)
	})
}
