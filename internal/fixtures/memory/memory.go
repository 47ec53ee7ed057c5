// Package memory is an in-process implementation of repository.UnitOfWork
// for tests. Do snapshots the store and restores it when fn fails, so
// rollback behaves like the gorm implementation.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/customer"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/amirasaad/banking/pkg/repository"
	accountrepo "github.com/amirasaad/banking/pkg/repository/account"
	customerrepo "github.com/amirasaad/banking/pkg/repository/customer"
	txrepo "github.com/amirasaad/banking/pkg/repository/transaction"
	"github.com/shopspring/decimal"
)

// Store holds every table.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex

	customers    map[uint]customer.Customer
	accounts     map[uint]account.Account
	transactions []account.Transaction

	nextCustomer    uint
	nextAccount     uint
	nextTransaction uint

	failures map[string]error
	clock    func() time.Time
}

// NewStore creates an empty store whose account numbers start at
// account.OpeningNumber.
func NewStore() *Store {
	return &Store{
		customers:       make(map[uint]customer.Customer),
		accounts:        make(map[uint]account.Account),
		nextCustomer:    1,
		nextAccount:     account.OpeningNumber,
		nextTransaction: 1,
		failures:        make(map[string]error),
		clock:           func() time.Time { return time.Now().UTC() },
	}
}

// Fail makes every later call to op return err. op is "<Repo>.<Method>",
// e.g. "Transaction.Append". A nil err clears it.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// SetClock overrides the timestamp source for new ledger entries.
func (s *Store) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

// Balance returns the stored balance, or false if the account is absent.
func (s *Store) Balance(number uint) (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[number]
	return a.Balance, ok
}

// Counts returns the number of customers, accounts and ledger rows.
func (s *Store) Counts() (customers, accounts, transactions int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers), len(s.accounts), len(s.transactions)
}

// Ledger returns a copy of every ledger row for number, oldest first.
func (s *Store) Ledger(number uint) []account.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []account.Transaction
	for _, tx := range s.transactions {
		if tx.AccountNumber == number {
			out = append(out, tx)
		}
	}
	return out
}

// Seed inserts c and an account for it with the default opening balance and
// returns the account number. c.ID is assigned.
func (s *Store) Seed(c customer.Customer, pinHash string) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCustomer
	s.nextCustomer++
	s.customers[c.ID] = c

	a := account.New(c.ID, pinHash)
	a.Number = s.nextAccount
	s.nextAccount++
	s.accounts[a.Number] = *a
	return a.Number
}

// PINHash returns the stored PIN hash for number.
func (s *Store) PINHash(number uint) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[number].PIN
}

func (s *Store) failure(op string) error {
	return s.failures[op]
}

type snapshot struct {
	customers       map[uint]customer.Customer
	accounts        map[uint]account.Account
	transactions    []account.Transaction
	nextCustomer    uint
	nextAccount     uint
	nextTransaction uint
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		customers:       make(map[uint]customer.Customer, len(s.customers)),
		accounts:        make(map[uint]account.Account, len(s.accounts)),
		transactions:    append([]account.Transaction(nil), s.transactions...),
		nextCustomer:    s.nextCustomer,
		nextAccount:     s.nextAccount,
		nextTransaction: s.nextTransaction,
	}
	for k, v := range s.customers {
		snap.customers[k] = v
	}
	for k, v := range s.accounts {
		snap.accounts[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = snap.customers
	s.accounts = snap.accounts
	s.transactions = snap.transactions
	s.nextCustomer = snap.nextCustomer
	s.nextAccount = snap.nextAccount
	s.nextTransaction = snap.nextTransaction
}

// UoW implements repository.UnitOfWork over a Store.
type UoW struct {
	store *Store
}

// NewUoW creates a unit of work over store.
func NewUoW(store *Store) *UoW {
	return &UoW{store: store}
}

// Do runs fn serialised with other Do calls and rolls the store back if fn fails.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	snap := u.store.snapshot()
	if err := fn(u); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

func (u *UoW) GetRepository(repoType any) (any, error) {
	switch repoType.(type) {
	case *customerrepo.Repository:
		return &customerRepository{s: u.store}, nil
	case *accountrepo.Repository:
		return &accountRepository{s: u.store}, nil
	case *txrepo.Repository:
		return &transactionRepository{s: u.store}, nil
	}
	return nil, fmt.Errorf("unsupported repository type: %T", repoType)
}

func (u *UoW) CustomerRepository() (customerrepo.Repository, error) {
	return &customerRepository{s: u.store}, nil
}

func (u *UoW) AccountRepository() (accountrepo.Repository, error) {
	return &accountRepository{s: u.store}, nil
}

func (u *UoW) TransactionRepository() (txrepo.Repository, error) {
	return &transactionRepository{s: u.store}, nil
}

type customerRepository struct{ s *Store }

func (r *customerRepository) Create(_ context.Context, c *customer.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Customer.Create"); err != nil {
		return err
	}
	c.ID = r.s.nextCustomer
	r.s.nextCustomer++
	now := r.s.clock()
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.customers[c.ID] = *c
	return nil
}

func (r *customerRepository) GetByAccount(_ context.Context, accountNumber uint) (*customer.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Customer.GetByAccount"); err != nil {
		return nil, err
	}
	a, ok := r.s.accounts[accountNumber]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	c, ok := r.s.customers[a.CustomerID]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return &c, nil
}

func (r *customerRepository) UpdateProfile(_ context.Context, customerID uint, p customer.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Customer.UpdateProfile"); err != nil {
		return err
	}
	c, ok := r.s.customers[customerID]
	if !ok {
		return customer.ErrCustomerNotFound
	}
	c.Profile = p
	c.UpdatedAt = r.s.clock()
	r.s.customers[customerID] = c
	return nil
}

func (r *customerRepository) ListWithAccounts(_ context.Context) ([]*dto.CustomerAccountRead, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Customer.ListWithAccounts"); err != nil {
		return nil, err
	}
	numbers := make([]uint, 0, len(r.s.accounts))
	for n := range r.s.accounts {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	out := make([]*dto.CustomerAccountRead, 0, len(numbers))
	for _, n := range numbers {
		a := r.s.accounts[n]
		c := r.s.customers[a.CustomerID]
		out = append(out, &dto.CustomerAccountRead{
			AccountNumber: a.Number,
			CustomerID:    c.ID,
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			DateOfBirth:   c.DateOfBirth,
			Apartment:     c.Apartment,
			Building:      c.Building,
			Street:        c.Street,
			City:          c.City,
			Province:      c.Province,
			PostalCode:    c.PostalCode,
			Phone:         c.Phone,
			Email:         c.Email,
		})
	}
	return out, nil
}

type accountRepository struct{ s *Store }

func (r *accountRepository) Create(_ context.Context, a *account.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Account.Create"); err != nil {
		return err
	}
	if _, ok := r.s.customers[a.CustomerID]; !ok {
		return fmt.Errorf("customer %d does not exist", a.CustomerID)
	}
	a.Number = r.s.nextAccount
	r.s.nextAccount++
	r.s.accounts[a.Number] = *a
	return nil
}

func (r *accountRepository) Get(_ context.Context, number uint) (*account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Account.Get"); err != nil {
		return nil, err
	}
	a, ok := r.s.accounts[number]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	return &a, nil
}

func (r *accountRepository) UpdatePIN(_ context.Context, number uint, pinHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Account.UpdatePIN"); err != nil {
		return err
	}
	a, ok := r.s.accounts[number]
	if !ok {
		return account.ErrAccountNotFound
	}
	a.PIN = pinHash
	a.UpdatedAt = r.s.clock()
	r.s.accounts[number] = a
	return nil
}

func (r *accountRepository) Credit(_ context.Context, number uint, amount decimal.Decimal) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Account.Credit"); err != nil {
		return decimal.Zero, err
	}
	a, ok := r.s.accounts[number]
	if !ok {
		return decimal.Zero, account.ErrAccountNotFound
	}
	a.Balance = a.Balance.Add(amount)
	r.s.accounts[number] = a
	return a.Balance, nil
}

func (r *accountRepository) Debit(_ context.Context, number uint, amount decimal.Decimal) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Account.Debit"); err != nil {
		return decimal.Zero, err
	}
	a, ok := r.s.accounts[number]
	if !ok {
		return decimal.Zero, account.ErrAccountNotFound
	}
	if a.Balance.LessThan(amount) {
		return decimal.Zero, account.ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	r.s.accounts[number] = a
	return a.Balance, nil
}

type transactionRepository struct{ s *Store }

func (r *transactionRepository) Append(_ context.Context, tx *account.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Transaction.Append"); err != nil {
		return err
	}
	if _, ok := r.s.accounts[tx.AccountNumber]; !ok {
		return account.ErrAccountNotFound
	}
	tx.ID = r.s.nextTransaction
	r.s.nextTransaction++
	tx.CreatedAt = r.s.clock()
	r.s.transactions = append(r.s.transactions, *tx)
	return nil
}

func (r *transactionRepository) ListRecent(_ context.Context, accountNumber uint, limit int) ([]*account.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("Transaction.ListRecent"); err != nil {
		return nil, err
	}
	var rows []account.Transaction
	for _, tx := range r.s.transactions {
		if tx.AccountNumber == accountNumber {
			rows = append(rows, tx)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ID > rows[j].ID
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]*account.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}
