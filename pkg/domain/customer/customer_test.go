package customer_test

import (
	"testing"
	"time"

	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func sampleProfile() customer.Profile {
	return customer.Profile{
		Building:   "12",
		Street:     "Main St.",
		City:       "Montreal",
		Province:   "Quebec",
		PostalCode: "H2Z 1A1",
	}
}

func TestProfile_MergeOnlyTouchesProvidedSlots(t *testing.T) {
	before := sampleProfile()
	after := before.Merge(customer.Patch{Email: ptr("x@y.com")})

	assert.Equal(t, "x@y.com", after.Email)
	after.Email = before.Email
	assert.Equal(t, before, after)
}

func TestProfile_MergeIgnoresBlankSlots(t *testing.T) {
	before := sampleProfile()
	after := before.Merge(customer.Patch{City: ptr("   "), Street: ptr("")})
	assert.Equal(t, before, after)
}

func TestProfile_MergeNormalises(t *testing.T) {
	after := sampleProfile().Merge(customer.Patch{
		Street:     ptr(" rue sainte-catherine "),
		City:       ptr("trois-rivières"),
		Province:   ptr("newfoundland AND labrador"),
		PostalCode: ptr("g9a 5h7"),
	})
	assert.Equal(t, "Rue Sainte-Catherine", after.Street)
	assert.Equal(t, "Trois-Rivières", after.City)
	assert.Equal(t, "Newfoundland and Labrador", after.Province)
	assert.Equal(t, "G9A 5H7", after.PostalCode)
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, customer.Patch{}.IsEmpty())
	assert.True(t, customer.Patch{Phone: ptr(" ")}.IsEmpty())
	assert.False(t, customer.Patch{Phone: ptr("5145550000")}.IsEmpty())
}

func TestProfile_Address(t *testing.T) {
	p := sampleProfile()
	assert.Equal(t, "12, Main St., Montreal, Quebec, H2Z 1A1", p.Address())
	p.Apartment = "4B"
	assert.Equal(t, "4B, 12, Main St., Montreal, Quebec, H2Z 1A1", p.Address())
}

func TestCustomer_Normalize(t *testing.T) {
	c := &customer.Customer{FirstName: "jane", LastName: "DOE", Profile: customer.Profile{Street: "main st.", City: "montreal"}}
	c.Normalize()
	assert.Equal(t, "Jane", c.FirstName)
	assert.Equal(t, "Doe", c.LastName)
	assert.Equal(t, "Main St.", c.Street)
	assert.Equal(t, "Montreal", c.City)
}

func TestCustomer_MatchesIdentity(t *testing.T) {
	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	c := &customer.Customer{FirstName: "Jane", LastName: "Doe", DateOfBirth: dob}

	assert.True(t, c.MatchesIdentity("Jane", "Doe", dob))
	assert.True(t, c.MatchesIdentity("Jane", "Doe", dob.Add(5*time.Hour)))
	assert.False(t, c.MatchesIdentity("jane", "Doe", dob))
	assert.False(t, c.MatchesIdentity("Jane", "Doe", dob.AddDate(0, 0, 1)))
}
