package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/pkg/service/auth"
	"github.com/amirasaad/banking/pkg/service/export"
	"github.com/amirasaad/banking/pkg/service/ledger"
	"github.com/amirasaad/banking/pkg/validation"
	"github.com/shopspring/decimal"
)

func (r *Router) menu(context.Context) (Screen, error) {
	r.prompt.Title("Welcome to the bank")
	choice, err := r.prompt.Choose("Register new customer", "Login", "Forgot PIN", "Export customers to CSV", "Exit")
	if err != nil {
		return Menu, err
	}
	switch choice {
	case 1:
		return Register, nil
	case 2:
		return Login, nil
	case 3:
		return ForgotPIN, nil
	case 4:
		return Export, nil
	case 5:
		return Exit, nil
	}
	r.prompt.Failure("Invalid option.")
	return Menu, nil
}

func (r *Router) register(ctx context.Context) (Screen, error) {
	r.prompt.Title("Register new customer")
	var reg dto.Registration
	fields := []struct {
		label string
		dst   *string
	}{
		{"First name", &reg.FirstName},
		{"Last name", &reg.LastName},
		{"Date of birth (YYYY-MM-DD)", &reg.DateOfBirth},
		{"Apartment (optional)", &reg.Apartment},
		{"Building number", &reg.Building},
		{"Street", &reg.Street},
		{"City", &reg.City},
		{"Province", &reg.Province},
		{"Postal code (e.g., H2Z 1A1)", &reg.PostalCode},
		{"Phone (optional, 10 digits)", &reg.Phone},
		{"Email (optional)", &reg.Email},
	}
	for _, f := range fields {
		answer, err := r.prompt.Ask(f.label)
		if err != nil {
			return Menu, err
		}
		*f.dst = answer
	}
	pin, err := r.prompt.Secret("4-digit PIN")
	if err != nil {
		return Menu, err
	}
	reg.PIN = pin

	number, err := r.app.CustomerService.Register(ctx, reg)
	if err != nil {
		return r.fail(err, Menu)
	}
	r.prompt.Success("Registration successful! Your account number is: %d", number)

	answer, err := r.prompt.Ask("Do you want to log in to your account now? (y/N)")
	if err != nil {
		return Menu, err
	}
	if yes(answer) {
		return Login, nil
	}
	return Menu, nil
}

func (r *Router) login(ctx context.Context) (Screen, error) {
	r.prompt.Title("Login")
	number, err := r.askAccountNumber()
	if err != nil || number == 0 {
		return Menu, err
	}
	pin, err := r.prompt.Secret("PIN")
	if err != nil {
		return Menu, err
	}
	ok, number, err := r.app.AuthService.Login(ctx, number, pin)
	if err != nil {
		return r.fail(err, Menu)
	}
	if !ok {
		r.prompt.Failure("Invalid account number or PIN.")
		return Menu, nil
	}
	r.session = Session{AccountNumber: number, Flash: "Welcome to our ATM."}
	return Home, nil
}

func (r *Router) forgotPIN(ctx context.Context) (Screen, error) {
	r.prompt.Title("Forgot PIN: verify your identity")
	if r.session.Recovery == nil {
		r.session.Recovery = r.app.AuthService.NewRecovery()
	}
	number, err := r.askAccountNumber()
	if err != nil || number == 0 {
		return Menu, err
	}
	var first, last, dob string
	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"First name", &first},
		{"Last name", &last},
		{"Date of birth (YYYY-MM-DD)", &dob},
	} {
		if *f.dst, err = r.prompt.Ask(f.label); err != nil {
			return Menu, err
		}
	}
	if first == "" || last == "" {
		r.prompt.Failure("Account number, first name and last name are required.")
		return Menu, nil
	}
	ok, err := r.session.Recovery.Verify(ctx, number, first, last, dob)
	if err != nil {
		r.session.Recovery = nil
		return r.fail(err, Menu)
	}
	if !ok {
		r.session.Recovery = nil
		return r.fail(auth.ErrIdentityMismatch, Menu)
	}
	r.prompt.Success("Identity verified. Now set a new PIN.")
	return ForgotPINReset, nil
}

func (r *Router) forgotPINReset(ctx context.Context) (Screen, error) {
	r.prompt.Title("Forgot PIN: set a new PIN")
	rec := r.session.Recovery
	if rec == nil || rec.State() != auth.Verified {
		return r.fail(auth.ErrRecoveryNotVerified, ForgotPIN)
	}
	pin, matched, err := r.askNewPIN()
	if err != nil {
		return Menu, err
	}
	if !matched {
		r.prompt.Failure("New PINs do not match.")
		return ForgotPINReset, nil
	}
	if err := rec.Reset(ctx, pin); err != nil {
		if errors.Is(err, validation.ErrPINFormat) {
			return r.fail(err, ForgotPINReset)
		}
		r.session.Recovery = nil
		return r.fail(err, Menu)
	}
	r.session.Recovery = nil
	r.session.Flash = "Your PIN has been reset successfully. You can now log in."
	return Menu, nil
}

func (r *Router) home(context.Context) (Screen, error) {
	r.prompt.Title("Account menu")
	r.prompt.Note("%s", r.welcome())
	choice, err := r.prompt.Choose(
		"Check balance",
		"Make transaction",
		"View transactions",
		"View personal info",
		"Update personal info",
		"Change PIN",
		"Logout",
	)
	if err != nil {
		return Home, err
	}
	next := [...]Screen{0, Balance, Transact, History, Profile, EditProfile, ChangePIN}
	if choice == 7 {
		r.session.Logout()
		r.session.Flash = "You have been logged out successfully. See you next time!"
		return Menu, nil
	}
	if choice == 0 {
		r.prompt.Failure("Invalid option.")
		return Home, nil
	}
	return next[choice], nil
}

func (r *Router) profile(ctx context.Context) (Screen, error) {
	r.prompt.Title("Personal information")
	info, err := r.app.CustomerService.PersonalInfo(ctx, r.session.AccountNumber)
	if err != nil {
		return r.fail(err, Home)
	}
	w := tabwriter.NewWriter(r.prompt.out, 0, 4, 2, ' ', 0)
	for _, row := range [][2]string{
		{"Account number", strconv.FormatUint(uint64(info.AccountNumber), 10)},
		{"First name", info.FirstName},
		{"Last name", info.LastName},
		{"Date of birth", info.DateOfBirth},
		{"Address", info.Address},
		{"Phone", info.Phone},
		{"Email", info.Email},
	} {
		fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	if err := w.Flush(); err != nil {
		return Home, err
	}
	return Home, nil
}

func (r *Router) editProfile(ctx context.Context) (Screen, error) {
	r.prompt.Title("Update personal information")
	r.prompt.Note("Leave a field blank to keep its current value.")
	var patch dto.ProfilePatch
	for _, f := range []struct {
		label string
		dst   **string
	}{
		{"New apartment", &patch.Apartment},
		{"New building number", &patch.Building},
		{"New street", &patch.Street},
		{"New city", &patch.City},
		{"New province", &patch.Province},
		{"New postal code", &patch.PostalCode},
		{"New phone", &patch.Phone},
		{"New email", &patch.Email},
	} {
		answer, err := r.prompt.Ask(f.label)
		if err != nil {
			return Home, err
		}
		if answer != "" {
			*f.dst = &answer
		}
	}
	if patch.IsEmpty() {
		r.prompt.Note("Nothing to update.")
		return Home, nil
	}
	if err := r.app.CustomerService.UpdateProfile(ctx, r.session.AccountNumber, patch); err != nil {
		return r.fail(err, Home)
	}
	r.prompt.Success("Information updated successfully.")
	return Home, nil
}

func (r *Router) changePIN(ctx context.Context) (Screen, error) {
	r.prompt.Title("Change PIN")
	old, err := r.prompt.Secret("Current PIN")
	if err != nil {
		return Home, err
	}
	pin, matched, err := r.askNewPIN()
	if err != nil {
		return Home, err
	}
	switch {
	case !matched:
		r.prompt.Failure("New PINs do not match. Try again.")
		return Home, nil
	case pin == old:
		r.prompt.Failure("New PIN must be different from Old PIN.")
		return Home, nil
	}
	msg, err := r.app.AuthService.ChangePIN(ctx, r.session.AccountNumber, old, pin)
	if err != nil {
		return r.fail(err, Home)
	}
	r.prompt.Success("%s", msg)
	return Home, nil
}

func (r *Router) balance(ctx context.Context) (Screen, error) {
	r.prompt.Title("Check balance")
	balance, err := r.app.LedgerService.Balance(ctx, r.session.AccountNumber)
	if err != nil {
		return r.fail(err, Home)
	}
	r.prompt.Success("Your current balance is: %s", money.Display(balance))
	return Home, nil
}

func (r *Router) transact(ctx context.Context) (Screen, error) {
	r.prompt.Title("Make transaction")
	choice, err := r.prompt.Choose("Deposit", "Withdrawal")
	if err != nil {
		return Home, err
	}
	kinds := [...]account.Kind{"", account.KindDeposit, account.KindWithdrawal}
	if choice == 0 {
		return r.fail(account.ErrInvalidTransactionKind, Home)
	}
	answer, err := r.prompt.Ask("Amount")
	if err != nil {
		return Home, err
	}
	amount, err := money.Parse(strings.TrimPrefix(answer, "$"))
	if err != nil {
		return r.fail(err, Home)
	}
	conf, err := r.app.LedgerService.Record(ctx, r.session.AccountNumber, string(kinds[choice]), amount)
	if err != nil {
		return r.fail(err, Home)
	}
	r.prompt.Success("%s New balance: %s", conf.Message, money.Display(conf.Balance))
	return Home, nil
}

func (r *Router) history(ctx context.Context) (Screen, error) {
	r.prompt.Title("View transactions")
	answer, err := r.prompt.Ask("Apply filters? (y/N)")
	if err != nil {
		return Home, err
	}
	var filter ledger.Filter
	limit := 0
	if yes(answer) {
		filter, err = r.askFilter()
		if validation.Problems(err) != nil {
			return r.fail(err, Home)
		}
		if err != nil {
			return Home, err
		}
		limit = ledger.MaxHistoryLimit
	}
	rows, err := r.app.LedgerService.History(ctx, r.session.AccountNumber, limit)
	if err != nil {
		return r.fail(err, Home)
	}
	rows = filter.Apply(rows)
	if len(rows) == 0 {
		r.prompt.Note("No transactions found.")
		return Home, nil
	}

	w := tabwriter.NewWriter(r.prompt.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tType\tAmount\tTimestamp")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", row.ID, account.Kind(row.Kind).Title(), money.Display(row.Amount), row.CreatedAt.Format(time.DateTime))
	}
	if err := w.Flush(); err != nil {
		return Home, err
	}

	path, err := r.prompt.Ask("Save as CSV (file name, blank to skip)")
	if err != nil || path == "" {
		return Home, err
	}
	if err := saveTransactions(path, rows); err != nil {
		return r.fail(err, Home)
	}
	r.prompt.Success("Saved %d transactions to %s", len(rows), path)
	return Home, nil
}

func (r *Router) export(ctx context.Context) (Screen, error) {
	r.prompt.Title("Export customers")
	n, err := r.app.ExportService.Customers(ctx)
	if err != nil {
		return r.fail(err, Menu)
	}
	r.prompt.Success("Wrote %d customers to %s", n, r.app.ExportService.Path())
	return Menu, nil
}

func (r *Router) askAccountNumber() (uint, error) {
	answer, err := r.prompt.Ask("Account number")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(answer, 10, 0)
	if err != nil || n == 0 {
		r.prompt.Failure("Account number must be a positive whole number.")
		return 0, nil
	}
	return uint(n), nil
}

// askNewPIN reads the new PIN twice. matched is false when the entries differ.
func (r *Router) askNewPIN() (pin string, matched bool, err error) {
	if pin, err = r.prompt.Secret("New 4-digit PIN"); err != nil {
		return "", false, err
	}
	confirm, err := r.prompt.Secret("Confirm new PIN")
	if err != nil {
		return "", false, err
	}
	return pin, pin == confirm, nil
}

// askFilter reads every filter question, then reports all malformed
// answers together.
func (r *Router) askFilter() (ledger.Filter, error) {
	labels := []string{
		"Start date (YYYY-MM-DD, blank for any)",
		"End date (YYYY-MM-DD, blank for any)",
		"Type (deposit, withdrawal, blank for all)",
		"Minimum amount (blank for none)",
		"Maximum amount (blank for none)",
		"Sort by (newest, oldest, highest, lowest)",
		"Only the last N transactions (blank for all)",
	}
	answers := make([]string, len(labels))
	for i, label := range labels {
		answer, err := r.prompt.Ask(label)
		if err != nil {
			return ledger.Filter{}, err
		}
		answers[i] = answer
	}
	from, to, kind, minAmount, maxAmount, sort, last := answers[0], answers[1], answers[2], answers[3], answers[4], answers[5], answers[6]

	var f ledger.Filter
	var problems []string
	date := func(s, name string) time.Time {
		if s == "" {
			return time.Time{}
		}
		t, err := time.Parse(customer.DateLayout, s)
		if err != nil {
			problems = append(problems, name+" must be YYYY-MM-DD.")
		}
		return t
	}
	amount := func(s, name string) decimal.NullDecimal {
		if s == "" {
			return decimal.NullDecimal{}
		}
		d, err := money.Parse(strings.TrimPrefix(s, "$"))
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v.", name, err))
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(d)
	}

	f.From = date(from, "Start date")
	f.To = date(to, "End date")
	f.MinAmount = amount(minAmount, "Minimum amount")
	f.MaxAmount = amount(maxAmount, "Maximum amount")
	if kind != "" {
		k, err := account.ParseKind(kind)
		if err != nil {
			problems = append(problems, "Type must be deposit or withdrawal.")
		}
		f.Kind = k
	}
	order, err := ledger.ParseSortOrder(sort)
	if err != nil {
		problems = append(problems, "Sort must be newest, oldest, highest or lowest.")
	}
	f.Sort = order
	if last != "" {
		n, err := strconv.Atoi(last)
		if err != nil || n < 1 {
			problems = append(problems, "N must be a positive whole number.")
		}
		f.LastN = max(n, 0)
	}

	if len(problems) > 0 {
		return f, &validation.Errors{Problems: problems}
	}
	return f, nil
}

func saveTransactions(path string, rows []*dto.TransactionRead) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return export.WriteTransactions(f, rows)
}

func yes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "y" || s == "yes"
}
