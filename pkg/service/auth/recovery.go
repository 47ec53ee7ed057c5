package auth

import (
	"context"
	"errors"
)

// RecoveryState is a step of the forgotten-PIN flow.
type RecoveryState int

const (
	Unverified RecoveryState = iota
	Verified
	Reset
)

func (s RecoveryState) String() string {
	switch s {
	case Verified:
		return "verified"
	case Reset:
		return "reset"
	default:
		return "unverified"
	}
}

var (
	// ErrRecoveryNotVerified is returned by Recovery.Reset before a successful Verify.
	ErrRecoveryNotVerified = errors.New("identity has not been verified")
	// ErrRecoveryComplete is returned once the PIN has been reset; call Restart to begin again.
	ErrRecoveryComplete = errors.New("PIN has already been reset")
)

// Recovery walks one caller through Unverified -> Verified -> Reset. The
// identity captured by Verify is re-checked by the reset itself.
type Recovery struct {
	svc           *Service
	state         RecoveryState
	accountNumber uint
	firstName     string
	lastName      string
	dob           string
}

// NewRecovery starts a recovery flow in the Unverified state.
func (s *Service) NewRecovery() *Recovery {
	return &Recovery{svc: s}
}

func (r *Recovery) State() RecoveryState { return r.state }

func (r *Recovery) AccountNumber() uint { return r.accountNumber }

// Verify moves to Verified when the identity matches; otherwise the state is unchanged.
func (r *Recovery) Verify(
	ctx context.Context,
	accountNumber uint,
	firstName, lastName, dob string,
) (bool, error) {
	if r.state == Reset {
		return false, ErrRecoveryComplete
	}
	ok, err := r.svc.VerifyIdentity(ctx, accountNumber, firstName, lastName, dob)
	if err != nil || !ok {
		return false, err
	}
	r.state = Verified
	r.accountNumber = accountNumber
	r.firstName, r.lastName, r.dob = firstName, lastName, dob
	return true, nil
}

// Reset sets the new PIN. It is only allowed from Verified; Reset is terminal.
func (r *Recovery) Reset(ctx context.Context, newPIN string) error {
	switch r.state {
	case Unverified:
		return ErrRecoveryNotVerified
	case Reset:
		return ErrRecoveryComplete
	}
	if err := r.svc.ResetPIN(ctx, r.accountNumber, r.firstName, r.lastName, r.dob, newPIN); err != nil {
		return err
	}
	r.state = Reset
	return nil
}

// Restart discards the verified identity and returns to Unverified.
func (r *Recovery) Restart() {
	*r = Recovery{svc: r.svc}
}
