package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/banking/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain classifies a gorm error (translated by the dialector,
// see gorm.Config.TranslateError):
//   - a missing row or a dangling account reference is domain.ErrNotFound
//   - a duplicate key is domain.ErrAlreadyExists
//   - a failed CHECK (negative balance, non-positive amount) is domain.ErrValidation
//
// Everything else is wrapped in domain.ErrStorage.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrStorage),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrValidation):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrStorage, err)
}

// WrapError runs a gorm operation and classifies its error.
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
