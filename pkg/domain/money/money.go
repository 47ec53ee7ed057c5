// Package money holds the currency helpers shared by balances and ledger amounts.
// All amounts are Canadian dollars with two decimal places.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places carried by every amount.
const Places = 2

var (
	// ErrInvalidAmount is returned when an amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrTooManyDecimals is returned when an amount has sub-cent precision.
	ErrTooManyDecimals = errors.New("amount has more than two decimal places")
)

// Cent is the smallest representable amount.
var Cent = decimal.New(1, -Places)

// Parse reads a decimal amount such as "12.50" or "$1,000.00".
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if err := CheckPrecision(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// CheckPrecision fails when d cannot be represented in whole cents.
func CheckPrecision(d decimal.Decimal) error {
	if !d.Equal(d.Round(Places)) {
		return ErrTooManyDecimals
	}
	return nil
}

// Format renders d with exactly two decimal places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

// Display renders d as dollars with thousands separators, e.g. "$1,234.50".
func Display(d decimal.Decimal) string {
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(Places), ".")
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
