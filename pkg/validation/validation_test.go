package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() Registration {
	return Registration{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-05-01",
		Profile: Profile{
			Building:   "12",
			Street:     "Main St.",
			City:       "Montreal",
			Province:   "Quebec",
			PostalCode: "H2Z 1A1",
		},
		PIN: "1234",
	}
}

func TestValidateRegistration_Valid(t *testing.T) {
	assert.NoError(t, ValidateRegistration(validRegistration()))

	r := validRegistration()
	r.FirstName = "Zoë"
	r.LastName = "Saint-Laurent"
	r.Apartment = "4 B"
	r.Phone = "5145550000"
	r.Email = "jane@example.ca"
	r.City = "Trois-Rivières"
	r.Province = "Newfoundland and Labrador"
	assert.NoError(t, ValidateRegistration(r))
}

func TestValidateRegistration_CollectsEveryProblem(t *testing.T) {
	r := Registration{
		FirstName:   "J4ne",
		LastName:    "",
		DateOfBirth: "01/05/1990",
		Profile: Profile{
			Apartment:  "#4",
			Building:   "twelve",
			Street:     "Main St!",
			City:       "Montr3al",
			Province:   "quebec",
			PostalCode: "h2z1a1",
			Phone:      "514-555",
			Email:      "a@b.c",
		},
		PIN: "12a4",
	}

	err := ValidateRegistration(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []string{
		"Invalid first name.",
		"Invalid last name.",
		"Invalid date of birth format (expected YYYY-MM-DD).",
		"Invalid apartment number format.",
		"Invalid building number format.",
		"Invalid street name.",
		"Invalid city name.",
		"Invalid province.",
		"Invalid postal code format (e.g., H2Z 1A1).",
		"Phone number must be 10 digits.",
		"Invalid email address.",
		"PIN must be exactly 4 digits.",
	}, Problems(err))
}

func TestValidateRegistration_OneEntryPerMalformedField(t *testing.T) {
	r := validRegistration()
	r.PostalCode = "H2Z1A1"
	r.PIN = "123"

	assert.Equal(t, []string{
		"Invalid postal code format (e.g., H2Z 1A1).",
		"PIN must be exactly 4 digits.",
	}, Problems(ValidateRegistration(r)))
}

func TestValidateRegistration_EmailTopLevelSegment(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane@mail.com", true},
		{"jane@mail.co.uk", true},
		{"jane@mail.com.x", false},
		{"a@b.c.d", false},
		{"ab@cd.ef.g", false},
		{"jane@mail.", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			r := validRegistration()
			r.Email = tt.email
			err := ValidateRegistration(r)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, []string{"Invalid email address."}, Problems(err))
		})
	}
}

func TestValidateRegistration_ColumnLengths(t *testing.T) {
	r := validRegistration()
	r.FirstName = strings.Repeat("a", 50)
	r.City = strings.Repeat("b", 50)
	r.Email = strings.Repeat("c", 40) + "@mail.com"
	require.NoError(t, ValidateRegistration(r))

	r.FirstName = strings.Repeat("a", 51)
	r.LastName = strings.Repeat("d", 51)
	r.Apartment = "12345678901"
	r.Street = strings.Repeat("e", 101)
	r.City = strings.Repeat("b", 51)
	r.Email = strings.Repeat("c", 42) + "@mail.com"

	err := ValidateRegistration(r)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []string{
		"First name must be at most 50 characters.",
		"Last name must be at most 50 characters.",
		"Apartment number must be at most 10 characters.",
		"Street name must be at most 100 characters.",
		"City name must be at most 50 characters.",
		"Email address must be at most 50 characters.",
	}, Problems(err))
}

func TestValidateRegistration_DateOfBirthRange(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = restore })

	tests := []struct {
		dob   string
		valid bool
	}{
		{"1900-01-01", true},
		{"1899-12-31", false},
		{"2026-10-15", true},
		{"2026-10-16", false},
		{"1990-02-30", false},
	}
	for _, tt := range tests {
		t.Run(tt.dob, func(t *testing.T) {
			r := validRegistration()
			r.DateOfBirth = tt.dob
			err := ValidateRegistration(r)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Len(t, Problems(err), 1)
		})
	}

	r := validRegistration()
	r.DateOfBirth = "1850-01-01"
	assert.Equal(t, []string{"Date of birth must be between 1900 and today."}, Problems(ValidateRegistration(r)))
}

func TestValidateProfile(t *testing.T) {
	p := validRegistration().Profile
	assert.NoError(t, ValidateProfile(p))

	p.Email = "x@y.co"
	assert.NoError(t, ValidateProfile(p))

	p.Email = "x@y.c"
	p.Building = ""
	assert.Equal(t, []string{"Invalid building number format.", "Invalid email address."}, Problems(ValidateProfile(p)))

	p.Building = "12"
	for _, email := range []string{"jane@mail.com.x", "a@b.c.d", "ab@cd.ef.g"} {
		p.Email = email
		assert.Equal(t, []string{"Invalid email address."}, Problems(ValidateProfile(p)), email)
	}

	p.Email = strings.Repeat("x", 46) + "@y.co"
	assert.Equal(t, []string{"Email address must be at most 50 characters."}, Problems(ValidateProfile(p)))
}

func TestValidatePIN(t *testing.T) {
	assert.NoError(t, ValidatePIN("0000"))
	for _, pin := range []string{"", "123", "12345", "12a4", "١٢٣٤"} {
		assert.ErrorIs(t, ValidatePIN(pin), ErrPINFormat, pin)
	}
}

func TestProblems_NonBatch(t *testing.T) {
	assert.Nil(t, Problems(errors.New("boom")))
	assert.Nil(t, Problems(nil))
}

func TestErrors_Error(t *testing.T) {
	err := &Errors{Problems: []string{"a", "b"}}
	assert.Equal(t, "a; b", err.Error())
}
