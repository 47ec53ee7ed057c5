// Package auth provides PIN login, PIN change and identity-verified PIN reset.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/amirasaad/banking/pkg/utils"
	"github.com/amirasaad/banking/pkg/validation"
	"golang.org/x/crypto/bcrypt"
)

// PINUpdated is returned by ChangePIN on success.
const PINUpdated = "PIN updated successfully."

var (
	// ErrIncorrectPIN is returned when the current PIN does not match.
	ErrIncorrectPIN = errors.New("old PIN is incorrect")
	// ErrIdentityMismatch is returned when name and date of birth do not match the account.
	ErrIdentityMismatch = errors.New("no matching user found")
	// ErrTooManyAttempts is returned while an account is locked out after repeated failed logins.
	ErrTooManyAttempts = errors.New("too many failed login attempts, try again later")
)

// AttemptTracker counts failed logins per key within a window.
type AttemptTracker interface {
	Failures(ctx context.Context, key string) (int, error)
	RecordFailure(ctx context.Context, key string, window time.Duration) (int, error)
	Reset(ctx context.Context, key string) error
}

// Option configures a Service.
type Option func(*Service)

// WithAttemptTracker locks an account out for lockout after maxAttempts
// failed logins. A maxAttempts of zero disables the lockout.
func WithAttemptTracker(tracker AttemptTracker, maxAttempts int, lockout time.Duration) Option {
	return func(s *Service) {
		s.tracker = tracker
		s.maxAttempts = maxAttempts
		s.lockout = lockout
	}
}

// WithPINCost sets the bcrypt cost used when storing a new PIN.
func WithPINCost(cost int) Option {
	return func(s *Service) { s.pinCost = cost }
}

// WithJWT enables GenerateToken.
func WithJWT(cfg *config.Jwt) Option {
	return func(s *Service) { s.jwt = cfg }
}

// Service authenticates account holders by PIN and runs PIN changes and resets.
type Service struct {
	uow         repository.UnitOfWork
	logger      *slog.Logger
	tracker     AttemptTracker
	maxAttempts int
	lockout     time.Duration
	pinCost     int
	jwt         *config.Jwt
	// dummyHash is checked for unknown accounts so they are rejected in the
	// same time as a wrong PIN. Hashed at pinCost.
	dummyHash string
}

// New creates a Service. PINs are hashed at bcrypt.DefaultCost unless
// WithPINCost says otherwise; login throttling needs WithAttemptTracker.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		uow:     uow,
		logger:  logger,
		pinCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dummyHash, _ = utils.HashPIN("0000", s.pinCost)
	return s
}

// Login checks pin against the account. Wrong credentials, including an
// unknown account, yield false with a nil error.
func (s *Service) Login(
	ctx context.Context,
	accountNumber uint,
	pin string,
) (ok bool, number uint, err error) {
	log := s.logger.With("context", "Login", "account_number", accountNumber)
	log.Debug("Login called")

	key := strconv.FormatUint(uint64(accountNumber), 10)
	if s.locked(ctx, key) {
		log.Warn("Login refused, account locked out")
		return false, 0, ErrTooManyAttempts
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err := accounts.Get(ctx, accountNumber)
		if errors.Is(err, account.ErrAccountNotFound) {
			_ = utils.CheckPINHash(pin, s.dummyHash)
			return nil
		}
		if err != nil {
			return err
		}
		ok = utils.CheckPINHash(pin, a.PIN)
		return nil
	})
	if err != nil {
		log.Error("Login failed", "error", err)
		return false, 0, err
	}

	if !ok {
		s.recordFailure(ctx, key)
		log.Info("Login rejected")
		return false, 0, nil
	}
	s.resetFailures(ctx, key)
	log.Info("Login successful")
	return true, accountNumber, nil
}

// ChangePIN replaces the PIN after checking the current one. Checks run in
// order: account exists, old PIN matches, new PIN is four digits.
func (s *Service) ChangePIN(
	ctx context.Context,
	accountNumber uint,
	oldPIN, newPIN string,
) (string, error) {
	log := s.logger.With("context", "ChangePIN", "account_number", accountNumber)

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err := accounts.Get(ctx, accountNumber)
		if err != nil {
			return err
		}
		if !utils.CheckPINHash(oldPIN, a.PIN) {
			return ErrIncorrectPIN
		}
		if err := validation.ValidatePIN(newPIN); err != nil {
			return err
		}
		hash, err := utils.HashPIN(newPIN, s.pinCost)
		if err != nil {
			return err
		}
		return accounts.UpdatePIN(ctx, accountNumber, hash)
	})
	if err != nil {
		log.Info("PIN change failed", "error", err)
		return "", err
	}
	log.Info("PIN changed")
	return PINUpdated, nil
}

// VerifyIdentity reports whether first name, last name and date of birth
// (layout 2006-01-02) all match the owner of the account exactly.
func (s *Service) VerifyIdentity(
	ctx context.Context,
	accountNumber uint,
	firstName, lastName, dob string,
) (verified bool, err error) {
	log := s.logger.With("context", "VerifyIdentity", "account_number", accountNumber)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		verified, err = s.matchIdentity(ctx, uow, accountNumber, firstName, lastName, dob)
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		log.Error("Identity verification failed", "error", err)
		return false, err
	}
	log.Info("Identity verification finished", "verified", verified)
	return verified, nil
}

// ResetPIN overwrites the PIN once the identity matches. The new PIN format
// is checked before anything is read.
func (s *Service) ResetPIN(
	ctx context.Context,
	accountNumber uint,
	firstName, lastName, dob, newPIN string,
) error {
	log := s.logger.With("context", "ResetPIN", "account_number", accountNumber)

	if err := validation.ValidatePIN(newPIN); err != nil {
		return err
	}
	hash, err := utils.HashPIN(newPIN, s.pinCost)
	if err != nil {
		return err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		ok, err := s.matchIdentity(ctx, uow, accountNumber, firstName, lastName, dob)
		if err != nil {
			return err
		}
		if !ok {
			return ErrIdentityMismatch
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return accounts.UpdatePIN(ctx, accountNumber, hash)
	})
	if err != nil {
		log.Info("PIN reset failed", "error", err)
		return err
	}
	s.resetFailures(ctx, strconv.FormatUint(uint64(accountNumber), 10))
	log.Info("PIN reset")
	return nil
}

func (s *Service) matchIdentity(
	ctx context.Context,
	uow repository.UnitOfWork,
	accountNumber uint,
	firstName, lastName, dob string,
) (bool, error) {
	customers, err := uow.CustomerRepository()
	if err != nil {
		return false, err
	}
	c, err := customers.GetByAccount(ctx, accountNumber)
	if err != nil {
		return false, err
	}
	born, err := time.Parse(customer.DateLayout, strings.TrimSpace(dob))
	if err != nil {
		return false, nil
	}
	return c.MatchesIdentity(strings.TrimSpace(firstName), strings.TrimSpace(lastName), born), nil
}

// locked fails open: a tracker outage must not block every login.
func (s *Service) locked(ctx context.Context, key string) bool {
	if s.tracker == nil || s.maxAttempts <= 0 {
		return false
	}
	n, err := s.tracker.Failures(ctx, key)
	if err != nil {
		s.logger.Warn("Attempt tracker unavailable", "error", err)
		return false
	}
	return n >= s.maxAttempts
}

func (s *Service) recordFailure(ctx context.Context, key string) {
	if s.tracker == nil || s.maxAttempts <= 0 {
		return
	}
	if _, err := s.tracker.RecordFailure(ctx, key, s.lockout); err != nil {
		s.logger.Warn("Failed to record login failure", "error", err)
	}
}

func (s *Service) resetFailures(ctx context.Context, key string) {
	if s.tracker == nil || s.maxAttempts <= 0 {
		return
	}
	if err := s.tracker.Reset(ctx, key); err != nil {
		s.logger.Warn("Failed to reset login failures", "error", err)
	}
}
