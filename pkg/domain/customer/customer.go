// Package customer models the person who owns an account: identity fields that
// never change after registration, plus a mutable contact profile.
package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/banking/pkg/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is the wire format for dates of birth.
const DateLayout = "2006-01-02"

// ErrCustomerNotFound is returned when no customer matches an account number.
var ErrCustomerNotFound = fmt.Errorf("customer %w", domain.ErrNotFound)

// Provinces lists the accepted provinces, spelled exactly as stored.
var Provinces = []string{
	"Alberta",
	"British Columbia",
	"Manitoba",
	"New Brunswick",
	"Newfoundland and Labrador",
	"Nova Scotia",
	"Ontario",
	"Prince Edward Island",
	"Quebec",
	"Saskatchewan",
}

// Customer is the account holder. FirstName, LastName and DateOfBirth are
// immutable once registered; Profile can be patched.
type Customer struct {
	ID          uint
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile holds the mutable address and contact fields.
// Empty Apartment, Phone and Email mean "not provided".
type Profile struct {
	Apartment  string
	Building   string
	Street     string
	City       string
	Province   string
	PostalCode string
	Phone      string
	Email      string
}

// Patch carries one optional slot per mutable field. A nil or blank slot
// leaves the stored value untouched.
type Patch struct {
	Apartment  *string `json:"apartment,omitempty"`
	Building   *string `json:"building,omitempty"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	for _, s := range []*string{p.Apartment, p.Building, p.Street, p.City, p.Province, p.PostalCode, p.Phone, p.Email} {
		if provided(s) {
			return false
		}
	}
	return true
}

// Merge returns a copy of p with every provided slot of patch applied and
// normalised the same way registration input is.
func (p Profile) Merge(patch Patch) Profile {
	merged := p
	if provided(patch.Apartment) {
		merged.Apartment = strings.TrimSpace(*patch.Apartment)
	}
	if provided(patch.Building) {
		merged.Building = strings.TrimSpace(*patch.Building)
	}
	if provided(patch.Street) {
		merged.Street = TitleCase(*patch.Street)
	}
	if provided(patch.City) {
		merged.City = TitleCase(*patch.City)
	}
	if provided(patch.Province) {
		merged.Province = CanonicalProvince(*patch.Province)
	}
	if provided(patch.PostalCode) {
		merged.PostalCode = strings.ToUpper(strings.TrimSpace(*patch.PostalCode))
	}
	if provided(patch.Phone) {
		merged.Phone = strings.TrimSpace(*patch.Phone)
	}
	if provided(patch.Email) {
		merged.Email = strings.TrimSpace(*patch.Email)
	}
	return merged
}

// Address joins the non-empty address parts with ", ".
func (p Profile) Address() string {
	parts := make([]string, 0, 6)
	for _, s := range []string{p.Apartment, p.Building, p.Street, p.City, p.Province, p.PostalCode} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Normalize title-cases the free-text name fields of a new registration.
func (c *Customer) Normalize() {
	c.FirstName = TitleCase(c.FirstName)
	c.LastName = TitleCase(c.LastName)
	c.Street = TitleCase(c.Street)
	c.City = TitleCase(c.City)
}

// MatchesIdentity reports an exact match of names and date of birth.
func (c *Customer) MatchesIdentity(firstName, lastName string, dob time.Time) bool {
	return c.FirstName == firstName &&
		c.LastName == lastName &&
		c.DateOfBirth.Format(DateLayout) == dob.Format(DateLayout)
}

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

// CanonicalProvince maps a case-insensitive province name onto its stored
// spelling. Unknown input is returned trimmed so validation can reject it.
func CanonicalProvince(s string) string {
	s = strings.TrimSpace(s)
	for _, p := range Provinces {
		if strings.EqualFold(p, s) {
			return p
		}
	}
	return s
}

func provided(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
