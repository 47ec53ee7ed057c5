package repository

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/shopspring/decimal"
)

// Customer represents a customer record in the database.
type Customer struct {
	ID         uint      `gorm:"column:customer_id;primaryKey;autoIncrement"`
	FirstName  string    `gorm:"size:50;not null"`
	LastName   string    `gorm:"size:50;not null"`
	DOB        time.Time `gorm:"column:dob;type:date;not null"`
	Apartment  *string   `gorm:"size:10"`
	Building   string    `gorm:"size:50;not null"`
	Street     string    `gorm:"size:100;not null"`
	City       string    `gorm:"size:50;not null"`
	Province   string    `gorm:"size:50;not null"`
	PostalCode string    `gorm:"type:char(7);not null"`
	Phone      *string   `gorm:"type:char(10)"`
	Email      *string   `gorm:"size:50"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for the Customer model.
func (Customer) TableName() string {
	return "customers"
}

// Account represents an account record in the database.
type Account struct {
	Number     uint            `gorm:"column:account_number;primaryKey;autoIncrement"`
	CustomerID uint            `gorm:"not null;uniqueIndex"`
	PIN        string          `gorm:"column:pin;size:72;not null"`
	Balance    decimal.Decimal `gorm:"type:numeric(10,2);not null;check:balance >= 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Transaction represents a ledger row in the database.
type Transaction struct {
	ID            uint            `gorm:"column:transaction_id;primaryKey;autoIncrement"`
	AccountNumber uint            `gorm:"not null;index"`
	Type          string          `gorm:"type:varchar(10);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null;check:amount > 0"`
	CreatedAt     time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func customerToModel(c *customer.Customer) Customer {
	return Customer{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		DOB:        c.DateOfBirth,
		Apartment:  optional(c.Apartment),
		Building:   c.Building,
		Street:     c.Street,
		City:       c.City,
		Province:   c.Province,
		PostalCode: c.PostalCode,
		Phone:      optional(c.Phone),
		Email:      optional(c.Email),
	}
}

func customerFromModel(m *Customer) *customer.Customer {
	return &customer.Customer{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DateOfBirth: m.DOB,
		Profile: customer.Profile{
			Apartment:  deref(m.Apartment),
			Building:   m.Building,
			Street:     m.Street,
			City:       m.City,
			Province:   m.Province,
			PostalCode: m.PostalCode,
			Phone:      deref(m.Phone),
			Email:      deref(m.Email),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func accountFromModel(m *Account) *account.Account {
	return &account.Account{
		Number:     m.Number,
		CustomerID: m.CustomerID,
		PIN:        m.PIN,
		Balance:    m.Balance,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func transactionFromModel(m *Transaction) *account.Transaction {
	return &account.Transaction{
		ID:            m.ID,
		AccountNumber: m.AccountNumber,
		Kind:          account.Kind(m.Type),
		Amount:        m.Amount,
		CreatedAt:     m.CreatedAt,
	}
}
