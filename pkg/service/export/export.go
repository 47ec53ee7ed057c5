// Package export writes flat CSV snapshots of customers and ledger history.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/pkg/repository"
)

var customerHeader = []string{
	"account_number", "customer_id", "first_name", "last_name", "dob",
	"apartment", "building", "street", "city", "province", "postal_code",
	"phone", "email",
}

var transactionHeader = []string{"transaction_id", "account_number", "type", "amount", "timestamp"}

// Service dumps every customer joined with its account to a CSV file.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	path   string
}

func New(uow repository.UnitOfWork, logger *slog.Logger, path string) *Service {
	return &Service{uow: uow, logger: logger, path: path}
}

// Path is the file Customers writes.
func (s *Service) Path() string { return s.path }

// Customers rewrites the export file and returns the number of rows written.
// The file is replaced atomically, so a reader never sees a partial export.
func (s *Service) Customers(ctx context.Context) (int, error) {
	log := s.logger.With("context", "ExportCustomers", "path", s.path)

	var rows []*dto.CustomerAccountRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		rows, err = customers.ListWithAccounts(ctx)
		return err
	})
	if err != nil {
		log.Error("Export query failed", "error", err)
		return 0, err
	}

	if err := writeFile(s.path, func(w io.Writer) error { return WriteCustomers(w, rows) }); err != nil {
		log.Error("Cannot update CSV, close it in other programs and try again", "error", err)
		return 0, err
	}
	log.Info("CSV updated", "rows", len(rows))
	return len(rows), nil
}

// OnRegistered refreshes the export after a registration. Failures are
// logged only; the registration has already committed.
func (s *Service) OnRegistered(ctx context.Context, _ uint) {
	_, _ = s.Customers(ctx)
}

// WriteCustomers writes rows with a header line. Absent optional fields are empty.
func WriteCustomers(w io.Writer, rows []*dto.CustomerAccountRead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(customerHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.FormatUint(uint64(r.AccountNumber), 10),
			strconv.FormatUint(uint64(r.CustomerID), 10),
			r.FirstName,
			r.LastName,
			r.DateOfBirth.Format(customer.DateLayout),
			r.Apartment,
			r.Building,
			r.Street,
			r.City,
			r.Province,
			r.PostalCode,
			r.Phone,
			r.Email,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTransactions writes a history with amounts as "$1,234.50".
func WriteTransactions(w io.Writer, rows []*dto.TransactionRead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.AccountNumber), 10),
			r.Kind,
			money.Display(r.Amount),
			r.CreatedAt.Format(time.DateTime),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".export-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
