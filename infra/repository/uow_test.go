package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/banking/pkg/repository"
	accountrepo "github.com/amirasaad/banking/pkg/repository/account"
	customerrepo "github.com/amirasaad/banking/pkg/repository/customer"
	txrepo "github.com/amirasaad/banking/pkg/repository/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUoW_DoAndGetRepository(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)

	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		repoAny, err := txUow.GetRepository((*accountrepo.Repository)(nil))
		require.NoError(err)
		_, ok := repoAny.(*accountRepository)
		assert.True(ok)

		repoAny, err = txUow.GetRepository((*txrepo.Repository)(nil))
		require.NoError(err)
		_, ok = repoAny.(*transactionRepository)
		assert.True(ok)

		repoAny, err = txUow.GetRepository((*customerrepo.Repository)(nil))
		require.NoError(err)
		_, ok = repoAny.(*customerRepository)
		assert.True(ok)

		return nil
	})
	assert.NoError(err)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestUoW_GetRepositoryUnsupported(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	_, err := uow.GetRepository((*string)(nil))
	assert.ErrorContains(t, err, "unsupported repository type")
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		repo, err := txUow.AccountRepository()
		require.NoError(t, err)
		require.NoError(t, repo.UpdatePIN(context.Background(), 10001, "hash"))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_TypeSafeMethods(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)

	uow := NewUoW(db)

	customerRepo, err := uow.CustomerRepository()
	require.NoError(err)
	assert.NotNil(customerRepo)

	accountRepo, err := uow.AccountRepository()
	require.NoError(err)
	assert.NotNil(accountRepo)

	transactionRepo, err := uow.TransactionRepository()
	require.NoError(err)
	assert.NotNil(transactionRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		customerRepo, err := txUow.CustomerRepository()
		require.NoError(err)
		assert.NotNil(customerRepo)

		accountRepo, err := txUow.AccountRepository()
		require.NoError(err)
		assert.NotNil(accountRepo)

		transactionRepo, err := txUow.TransactionRepository()
		require.NoError(err)
		assert.NotNil(transactionRepo)
		return nil
	})
	assert.NoError(err)
}
