// Package domain holds the error kinds shared by every banking entity.
// Entity packages wrap these, e.g. account.ErrAccountNotFound wraps
// ErrNotFound, so callers can branch on the kind with errors.Is.
package domain

import "errors"

var (
	// ErrNotFound: no customer, account or ledger row with that key.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists: a unique key (account number, customer) is taken.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation: input or a stored-row constraint was rejected.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized: the caller is not allowed to act on the account.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStorage: the store failed for a reason unrelated to the request.
	ErrStorage = errors.New("storage error")
)
