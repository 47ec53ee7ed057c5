// Package customer provides registration and profile management.
package customer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/pkg/repository"
	accountrepo "github.com/amirasaad/banking/pkg/repository/account"
	customerrepo "github.com/amirasaad/banking/pkg/repository/customer"
	"github.com/amirasaad/banking/pkg/utils"
	"github.com/amirasaad/banking/pkg/validation"
	"golang.org/x/crypto/bcrypt"
)

// missing is shown in place of an absent phone or email.
const missing = "-"

// RegistrationHook runs after a registration has committed. It must not fail
// the registration, so it returns nothing.
type RegistrationHook func(ctx context.Context, accountNumber uint)

// Option configures a Service.
type Option func(*Service)

// WithPINCost sets the bcrypt cost used for new PINs.
func WithPINCost(cost int) Option {
	return func(s *Service) { s.pinCost = cost }
}

// WithRegistrationHook adds a hook run after every successful registration.
func WithRegistrationHook(h RegistrationHook) Option {
	return func(s *Service) { s.hooks = append(s.hooks, h) }
}

// Service provides customer registration, lookup and profile updates.
type Service struct {
	uow     repository.UnitOfWork
	logger  *slog.Logger
	pinCost int
	hooks   []RegistrationHook
}

// New creates a new Service with a UnitOfWork and logger.
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
	return s
}

// Register validates reg, then creates the customer and its account in one
// transaction and returns the new account number. A validation failure is a
// *validation.Errors listing every malformed field, and nothing is written.
func (s *Service) Register(
	ctx context.Context,
	reg dto.Registration,
) (number uint, err error) {
	log := s.logger.With("context", "Register")

	in := validation.Registration{
		FirstName:   strings.TrimSpace(reg.FirstName),
		LastName:    strings.TrimSpace(reg.LastName),
		DateOfBirth: strings.TrimSpace(reg.DateOfBirth),
		Profile: validation.Profile{
			Apartment:  strings.TrimSpace(reg.Apartment),
			Building:   strings.TrimSpace(reg.Building),
			Street:     strings.TrimSpace(reg.Street),
			City:       strings.TrimSpace(reg.City),
			Province:   strings.TrimSpace(reg.Province),
			PostalCode: strings.ToUpper(strings.TrimSpace(reg.PostalCode)),
			Phone:      strings.TrimSpace(reg.Phone),
			Email:      strings.TrimSpace(reg.Email),
		},
		PIN: reg.PIN,
	}
	if err = validation.ValidateRegistration(in); err != nil {
		log.Debug("Registration rejected", "problems", validation.Problems(err))
		return 0, err
	}

	dob, err := time.Parse(customer.DateLayout, in.DateOfBirth)
	if err != nil {
		return 0, err
	}
	c := &customer.Customer{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: dob,
		Profile: customer.Profile{
			Apartment:  in.Apartment,
			Building:   in.Building,
			Street:     in.Street,
			City:       in.City,
			Province:   in.Province,
			PostalCode: in.PostalCode,
			Phone:      in.Phone,
			Email:      in.Email,
		},
	}
	c.Normalize()

	pinHash, err := utils.HashPIN(in.PIN, s.pinCost)
	if err != nil {
		return 0, fmt.Errorf("hash PIN: %w", err)
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repoAny, err := uow.GetRepository((*customerrepo.Repository)(nil))
		if err != nil {
			return err
		}
		customers, ok := repoAny.(customerrepo.Repository)
		if !ok {
			return fmt.Errorf("unexpected repository type")
		}
		repoAny, err = uow.GetRepository((*accountrepo.Repository)(nil))
		if err != nil {
			return err
		}
		accounts, ok := repoAny.(accountrepo.Repository)
		if !ok {
			return fmt.Errorf("unexpected repository type")
		}

		if err := customers.Create(ctx, c); err != nil {
			return err
		}
		a := account.New(c.ID, pinHash)
		if err := accounts.Create(ctx, a); err != nil {
			return err
		}
		number = a.Number
		return nil
	})
	if err != nil {
		log.Error("Registration failed", "error", err)
		return 0, err
	}

	log.Info("Customer registered", "account_number", number, "customer_id", c.ID)
	for _, h := range s.hooks {
		h(ctx, number)
	}
	return number, nil
}

// PersonalInfo returns the customer details behind an account.
func (s *Service) PersonalInfo(
	ctx context.Context,
	accountNumber uint,
) (info *dto.PersonalInfo, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		c, err := customers.GetByAccount(ctx, accountNumber)
		if err != nil {
			return err
		}
		info = &dto.PersonalInfo{
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			DateOfBirth:   c.DateOfBirth.Format(customer.DateLayout),
			Address:       c.Address(),
			Phone:         orMissing(c.Phone),
			Email:         orMissing(c.Email),
			AccountNumber: accountNumber,
		}
		return nil
	})
	if err != nil {
		info = nil
	}
	return
}

// UpdateProfile applies patch to the account owner's contact details. The
// merged profile is re-validated as a whole and nothing is written unless
// every field passes.
func (s *Service) UpdateProfile(
	ctx context.Context,
	accountNumber uint,
	patch dto.ProfilePatch,
) error {
	log := s.logger.With("context", "UpdateProfile", "account_number", accountNumber)

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		c, err := customers.GetByAccount(ctx, accountNumber)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			return nil
		}
		merged := c.Profile.Merge(patch)
		if err := validation.ValidateProfile(validation.ProfileFrom(merged)); err != nil {
			return err
		}
		return customers.UpdateProfile(ctx, c.ID, merged)
	})
	if err != nil {
		log.Debug("Profile update failed", "error", err)
		return err
	}
	log.Info("Profile updated")
	return nil
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}
