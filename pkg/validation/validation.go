// Package validation holds the field rules applied to customer input.
//
// Every check is pure: nothing here touches storage. All problems found in a
// single call are collected into one *Errors value instead of stopping at the
// first failure, so a caller can show every problem at once.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/go-playground/validator/v10"
)

// ErrPINFormat is returned when a PIN is not exactly four digits.
var ErrPINFormat = errors.New("PIN must be exactly 4 digits")

var (
	personNamePattern = regexp.MustCompile(`^\p{L}+([ -]\p{L}+)*$`)
	streetPattern     = regexp.MustCompile(`^[\p{L}\d\s.\-]+$`)
	cityPattern       = regexp.MustCompile(`^[\p{L}\s\-]+$`)
	unitPattern       = regexp.MustCompile(`^(\d+)(?:\s*([A-Za-z]))?$`)
	postalPattern     = regexp.MustCompile(`^[A-Z]\d[A-Z] \d[A-Z]\d$`)
	emailPattern      = regexp.MustCompile(`^[^@]+@[^@]+\.[^@.]{2,}$`)
	digitsPattern     = regexp.MustCompile(`^[0-9]+$`)
)

// earliestBirth is the lower bound for a date of birth.
var earliestBirth = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// now is replaced in tests.
var now = time.Now

// Errors is the batch of problems found in one validation call.
type Errors struct {
	Problems []string `json:"problems"`
}

func (e *Errors) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Unwrap lets callers match any batch with errors.Is(err, domain.ErrValidation).
func (e *Errors) Unwrap() error {
	return domain.ErrValidation
}

// Problems returns the list carried by err, or nil when err is not a batch.
func Problems(err error) []string {
	var verr *Errors
	if errors.As(err, &verr) {
		return verr.Problems
	}
	return nil
}

// Profile is the mutable address and contact set, validated as raw strings.
type Profile struct {
	Apartment  string `json:"apartment" validate:"omitempty,max=10,unit"`
	Building   string `json:"building" validate:"max=50,unit"`
	Street     string `json:"street" validate:"max=100,street"`
	City       string `json:"city" validate:"max=50,city"`
	Province   string `json:"province" validate:"province"`
	PostalCode string `json:"postal_code" validate:"postalcode"`
	Phone      string `json:"phone" validate:"omitempty,len=10,digits"`
	Email      string `json:"email" validate:"omitempty,min=6,max=50,emailaddr"`
}

// Registration is the full registration form, validated as raw strings.
type Registration struct {
	FirstName   string `json:"first_name" validate:"max=50,personname"`
	LastName    string `json:"last_name" validate:"max=50,personname"`
	DateOfBirth string `json:"dob" validate:"datetime=2006-01-02,birthrange"`
	Profile
	PIN string `json:"pin" validate:"pin"`
}

// ProfileFrom copies a domain profile into its validated form.
func ProfileFrom(p customer.Profile) Profile {
	return Profile{
		Apartment:  p.Apartment,
		Building:   p.Building,
		Street:     p.Street,
		City:       p.City,
		Province:   p.Province,
		PostalCode: p.PostalCode,
		Phone:      p.Phone,
		Email:      p.Email,
	}
}

// ValidateRegistration checks every registration field and returns *Errors
// with one entry per malformed field.
func ValidateRegistration(r Registration) error {
	return collect(validate.Struct(r))
}

// ValidateProfile checks a merged profile with the registration rules.
func ValidateProfile(p Profile) error {
	return collect(validate.Struct(p))
}

// ValidatePIN checks that pin is exactly four ASCII digits.
func ValidatePIN(pin string) error {
	if !isPIN(pin) {
		return ErrPINFormat
	}
	return nil
}

// Validator exposes the configured engine so request bodies share the custom tags.
func Validator() *validator.Validate {
	return validate
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	rules := map[string]validator.Func{
		"personname": matches(personNamePattern),
		"street":     matches(streetPattern),
		"city":       matches(cityPattern),
		"unit":       matches(unitPattern),
		"postalcode": matches(postalPattern),
		"emailaddr":  matches(emailPattern),
		"digits":     matches(digitsPattern),
		"province": func(fl validator.FieldLevel) bool {
			return slices.Contains(customer.Provinces, fl.Field().String())
		},
		"birthrange": func(fl validator.FieldLevel) bool {
			dob, err := time.Parse(customer.DateLayout, fl.Field().String())
			if err != nil {
				return false
			}
			today, _ := time.Parse(customer.DateLayout, now().Format(customer.DateLayout))
			return !dob.Before(earliestBirth) && !dob.After(today)
		},
		"pin": func(fl validator.FieldLevel) bool {
			return isPIN(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func isPIN(pin string) bool {
	return len(pin) == 4 && digitsPattern.MatchString(pin)
}

// collect turns validator output into one human-readable line per field.
func collect(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &Errors{Problems: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Problems = append(out.Problems, message(fe))
	}
	return out
}

var messages = map[string]string{
	"FirstName":  "Invalid first name.",
	"LastName":   "Invalid last name.",
	"Apartment":  "Invalid apartment number format.",
	"Building":   "Invalid building number format.",
	"Street":     "Invalid street name.",
	"City":       "Invalid city name.",
	"Province":   "Invalid province.",
	"PostalCode": "Invalid postal code format (e.g., H2Z 1A1).",
	"Phone":      "Phone number must be 10 digits.",
	"Email":      "Invalid email address.",
	"PIN":        "PIN must be exactly 4 digits.",
}

// labels name the length-capped fields; the caps follow the column sizes.
var labels = map[string]string{
	"FirstName": "First name",
	"LastName":  "Last name",
	"Apartment": "Apartment number",
	"Building":  "Building number",
	"Street":    "Street name",
	"City":      "City name",
	"Email":     "Email address",
}

func message(fe validator.FieldError) string {
	if fe.StructField() == "DateOfBirth" {
		if fe.Tag() == "birthrange" {
			return "Date of birth must be between 1900 and today."
		}
		return "Invalid date of birth format (expected YYYY-MM-DD)."
	}
	if fe.Tag() == "max" {
		if label, ok := labels[fe.StructField()]; ok {
			return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
		}
	}
	if msg, ok := messages[fe.StructField()]; ok {
		return msg
	}
	return fe.Error()
}
