package customer

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/amirasaad/banking/pkg/dto"
)

// Repository defines data access for customers.
type Repository interface {
	// Create inserts c, assigning c.ID.
	Create(ctx context.Context, c *customer.Customer) error

	// GetByAccount returns the customer owning the account, or
	// customer.ErrCustomerNotFound.
	GetByAccount(ctx context.Context, accountNumber uint) (*customer.Customer, error)

	// UpdateProfile overwrites every mutable field with p.
	UpdateProfile(ctx context.Context, customerID uint, p customer.Profile) error

	// ListWithAccounts returns every customer joined with its account.
	ListWithAccounts(ctx context.Context) ([]*dto.CustomerAccountRead, error)
}
