// Package app assembles the services shared by the HTTP and terminal callers.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/amirasaad/banking/pkg/service/auth"
	"github.com/amirasaad/banking/pkg/service/customer"
	"github.com/amirasaad/banking/pkg/service/export"
	"github.com/amirasaad/banking/pkg/service/ledger"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow      repository.UnitOfWork
	Attempts auth.AttemptTracker
	Logger   *slog.Logger
	// Closers are released by App.Close in reverse order.
	Closers []io.Closer
}

type App struct {
	Deps            *Deps
	Config          *config.App
	CustomerService *customer.Service
	AuthService     *auth.Service
	LedgerService   *ledger.Service
	ExportService   *export.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}

	app.ExportService = export.New(deps.Uow, deps.Logger, cfg.Export.Path)

	customerOpts := []customer.Option{customer.WithPINCost(cfg.Auth.PinCost)}
	if cfg.Export.OnRegister {
		customerOpts = append(customerOpts, customer.WithRegistrationHook(app.ExportService.OnRegistered))
	}
	app.CustomerService = customer.New(deps.Uow, deps.Logger, customerOpts...)

	authOpts := []auth.Option{
		auth.WithPINCost(cfg.Auth.PinCost),
		auth.WithJWT(cfg.Auth.Jwt),
	}
	if deps.Attempts != nil {
		authOpts = append(authOpts, auth.WithAttemptTracker(deps.Attempts, cfg.Auth.MaxAttempts, cfg.Auth.Lockout))
	}
	app.AuthService = auth.New(deps.Uow, deps.Logger, authOpts...)

	app.LedgerService = ledger.New(
		deps.Uow,
		deps.Logger,
		ledger.WithDepositLimit(cfg.Ledger.DepositLimit),
		ledger.WithHistoryLimit(cfg.Ledger.HistoryLimit),
	)
	return app
}

// Close releases every closer in Deps.
func (a *App) Close(_ context.Context) error {
	var errs []error
	for i := len(a.Deps.Closers) - 1; i >= 0; i-- {
		if err := a.Deps.Closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
