package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/amirasaad/banking/pkg/dto"
	customerrepo "github.com/amirasaad/banking/pkg/repository/customer"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository bound to db.
func NewCustomerRepository(db *gorm.DB) customerrepo.Repository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	m := customerToModel(c)
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	}); err != nil {
		return err
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *customerRepository) GetByAccount(ctx context.Context, accountNumber uint) (*customer.Customer, error) {
	var m Customer
	err := WrapError(func() error {
		return r.db.WithContext(ctx).
			Joins("JOIN accounts ON accounts.customer_id = customers.customer_id").
			Where("accounts.account_number = ?", accountNumber).
			Take(&m).Error
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, customer.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return customerFromModel(&m), nil
}

func (r *customerRepository) UpdateProfile(ctx context.Context, customerID uint, p customer.Profile) error {
	// a map so that cleared optional fields are written back as NULL
	updates := map[string]any{
		"apartment":   optional(p.Apartment),
		"building":    p.Building,
		"street":      p.Street,
		"city":        p.City,
		"province":    p.Province,
		"postal_code": p.PostalCode,
		"phone":       optional(p.Phone),
		"email":       optional(p.Email),
	}
	res := r.db.WithContext(ctx).
		Model(&Customer{}).
		Where("customer_id = ?", customerID).
		Updates(updates)
	if err := MapGormErrorToDomain(res.Error); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

type customerAccountRow struct {
	AccountNumber uint
	CustomerID    uint
	FirstName     string
	LastName      string
	DOB           time.Time
	Apartment     *string
	Building      string
	Street        string
	City          string
	Province      string
	PostalCode    string
	Phone         *string
	Email         *string
}

func (r *customerRepository) ListWithAccounts(ctx context.Context) ([]*dto.CustomerAccountRead, error) {
	var rows []customerAccountRow
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).
			Table("customers").
			Select("accounts.account_number, customers.customer_id, customers.first_name, " +
				"customers.last_name, customers.dob, customers.apartment, customers.building, " +
				"customers.street, customers.city, customers.province, customers.postal_code, " +
				"customers.phone, customers.email").
			Joins("JOIN accounts ON accounts.customer_id = customers.customer_id").
			Order("accounts.account_number").
			Scan(&rows).Error
	}); err != nil {
		return nil, err
	}
	result := make([]*dto.CustomerAccountRead, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.CustomerAccountRead{
			AccountNumber: row.AccountNumber,
			CustomerID:    row.CustomerID,
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			DateOfBirth:   row.DOB,
			Apartment:     deref(row.Apartment),
			Building:      row.Building,
			Street:        row.Street,
			City:          row.City,
			Province:      row.Province,
			PostalCode:    row.PostalCode,
			Phone:         deref(row.Phone),
			Email:         deref(row.Email),
		})
	}
	return result, nil
}
