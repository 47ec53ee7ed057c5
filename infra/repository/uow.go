package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/banking/pkg/repository"
	accountrepo "github.com/amirasaad/banking/pkg/repository/account"
	customerrepo "github.com/amirasaad/banking/pkg/repository/customer"
	txrepo "github.com/amirasaad/banking/pkg/repository/transaction"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories obtained from a UoW handed to Do share that transaction.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*customerrepo.Repository)(nil)): func(db *gorm.DB) any { return NewCustomerRepository(db) },
			reflect.TypeOf((*accountrepo.Repository)(nil)):  func(db *gorm.DB) any { return NewAccountRepository(db) },
			reflect.TypeOf((*txrepo.Repository)(nil)):       func(db *gorm.DB) any { return NewTransactionRepository(db) },
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// session returns the transaction when inside Do, the plain handle otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// GetRepository returns the repository registered for repoType, which must be
// a typed nil pointer to one of the repository interfaces.
func (u *UoW) GetRepository(repoType any) (any, error) {
	constructor, ok := u.repoRegistry[reflect.TypeOf(repoType)]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %T", repoType)
	}
	return constructor(u.session()), nil
}

func (u *UoW) CustomerRepository() (customerrepo.Repository, error) {
	repoAny, err := u.GetRepository((*customerrepo.Repository)(nil))
	if err != nil {
		return nil, err
	}
	return repoAny.(customerrepo.Repository), nil
}

func (u *UoW) AccountRepository() (accountrepo.Repository, error) {
	repoAny, err := u.GetRepository((*accountrepo.Repository)(nil))
	if err != nil {
		return nil, err
	}
	return repoAny.(accountrepo.Repository), nil
}

func (u *UoW) TransactionRepository() (txrepo.Repository, error) {
	repoAny, err := u.GetRepository((*txrepo.Repository)(nil))
	if err != nil {
		return nil, err
	}
	return repoAny.(txrepo.Repository), nil
}
