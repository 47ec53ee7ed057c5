package dto

import (
	"time"

	"github.com/amirasaad/banking/pkg/domain/customer"
)

// Registration is the raw registration form as supplied by a caller.
type Registration struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"dob"`
	Apartment   string `json:"apartment,omitempty"`
	Building    string `json:"building"`
	Street      string `json:"street"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	PIN         string `json:"pin"`
}

// PersonalInfo is the flattened customer view for one account.
type PersonalInfo struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DateOfBirth   string `json:"dob"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	AccountNumber uint   `json:"account_number"`
}

// CustomerAccountRead is one customer joined with its account, as exported.
type CustomerAccountRead struct {
	AccountNumber uint
	CustomerID    uint
	FirstName     string
	LastName      string
	DateOfBirth   time.Time
	Apartment     string
	Building      string
	Street        string
	City          string
	Province      string
	PostalCode    string
	Phone         string
	Email         string
}

// ProfilePatch is a partial contact-details update; see customer.Patch.
type ProfilePatch = customer.Patch
