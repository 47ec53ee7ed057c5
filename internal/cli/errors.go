package cli

import (
	"errors"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/amirasaad/banking/pkg/service/auth"
	"github.com/amirasaad/banking/pkg/validation"
)

var userFacing = []error{
	domain.ErrValidation,
	domain.ErrNotFound,
	validation.ErrPINFormat,
	account.ErrInsufficientFunds,
	account.ErrDepositLimitExceeded,
	account.ErrInvalidTransactionKind,
	account.ErrAmountTooSmall,
	money.ErrInvalidAmount,
	money.ErrTooManyDecimals,
	auth.ErrIncorrectPIN,
	auth.ErrIdentityMismatch,
	auth.ErrTooManyAttempts,
	auth.ErrRecoveryNotVerified,
	auth.ErrRecoveryComplete,
}

// known reports whether err is a business-rule failure safe to show as is.
func known(err error) bool {
	for _, target := range userFacing {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
