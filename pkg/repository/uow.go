package repository

import (
	"context"

	"github.com/amirasaad/banking/pkg/repository/account"
	"github.com/amirasaad/banking/pkg/repository/customer"
	"github.com/amirasaad/banking/pkg/repository/transaction"
)

// UnitOfWork defines the contract for transactional work and repository access.
//
// Repositories handed out inside Do share the same database transaction, so a
// customer insert followed by an account insert, or a balance update followed
// by a ledger append, commit or roll back together.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary.
	// If fn returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns the repository whose interface matches repoType,
	// bound to the current session. Pass a typed nil pointer:
	//
	//	repoAny, err := uow.GetRepository((*account.Repository)(nil))
	GetRepository(repoType any) (any, error)

	CustomerRepository() (customer.Repository, error)
	AccountRepository() (account.Repository, error)
	TransactionRepository() (transaction.Repository, error)
}
