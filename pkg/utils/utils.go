package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPIN hashes a PIN using bcrypt. A cost outside bcrypt's accepted range
// falls back to bcrypt.DefaultCost.
func HashPIN(pin string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	return string(bytes), err
}

// CheckPINHash compares a plain PIN with a bcrypt hash.
func CheckPINHash(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
