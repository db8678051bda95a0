package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("duplicate account id")
)

// InsufficientFundsError is returned when a debit asks for more than the
// account holds.
type InsufficientFundsError struct {
	Available float64
	Attempted float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %.2f, attempted %.2f", e.Available, e.Attempted)
}

var ErrInsufficientFunds = errors.New("insufficient funds")

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Accounts owns the bank account collection. All mutation goes through
// its methods; every mutation, balance changes included, persists the
// whole collection. Persistence failures are logged and swallowed so a
// broken disk never blocks a money operation that already happened in
// memory.
type Accounts struct {
	mu       sync.Mutex
	store    storage.AccountStore
	accounts []core.Account
}

func NewAccounts(store storage.AccountStore) *Accounts {
	return &Accounts{store: store}
}

// Load reads the persisted collection. A first-ever load (nothing
// persisted) seeds the fixed sample set so the app starts non-empty.
func (a *Accounts) Load(ctx context.Context) error {
	accounts, err := a.store.LoadAccounts(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load accounts, starting empty", "error", err)
		accounts = nil
	}

	a.mu.Lock()
	a.accounts = accounts
	a.mu.Unlock()

	if len(accounts) == 0 {
		a.seedSampleData(ctx)
	}
	return nil
}

// seedSampleData is a first-run convenience, not a correctness
// requirement: five accounts across two currencies.
func (a *Accounts) seedSampleData(ctx context.Context) {
	samples := []core.Account{
		core.NewAccount("ANZ", core.AUD, 4200),
		core.NewAccount("Commonwealth", core.AUD, 1500.50),
		core.NewAccount("Westpac", core.AUD, 800),
		core.NewAccount("SBI", core.INR, 250000),
		core.NewAccount("HDFC", core.INR, 64000),
	}

	a.mu.Lock()
	a.accounts = samples
	a.mu.Unlock()

	slog.InfoContext(ctx, "Seeded sample accounts", "count", len(samples))
	a.persist(ctx)
}

func (a *Accounts) persist(ctx context.Context) {
	a.mu.Lock()
	snapshot := append([]core.Account(nil), a.accounts...)
	a.mu.Unlock()

	if err := a.store.SaveAccounts(ctx, snapshot); err != nil {
		slog.ErrorContext(ctx, "Failed to persist accounts", "error", err, "count", len(snapshot))
	}
}

// Add appends an account and persists the collection.
func (a *Accounts) Add(ctx context.Context, account core.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	for _, existing := range a.accounts {
		if existing.ID == account.ID {
			a.mu.Unlock()
			return fmt.Errorf("%w: %s", ErrDuplicateAccount, account.ID)
		}
	}
	a.accounts = append(a.accounts, account)
	a.mu.Unlock()

	slog.InfoContext(ctx, "Account added", "id", account.ID, "bank", account.BankName, "currency", account.Currency)
	a.persist(ctx)
	return nil
}

// Remove deletes by id and persists. Removing an unknown id is a silent
// no-op.
func (a *Accounts) Remove(ctx context.Context, id string) {
	a.mu.Lock()
	removed := false
	for i, existing := range a.accounts {
		if existing.ID == id {
			a.accounts = append(a.accounts[:i], a.accounts[i+1:]...)
			removed = true
			break
		}
	}
	a.mu.Unlock()

	if !removed {
		return
	}
	slog.InfoContext(ctx, "Account removed", "id", id)
	a.persist(ctx)
}

// GetByID returns a copy of the account.
func (a *Accounts) GetByID(id string) (core.Account, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, account := range a.accounts {
		if account.ID == id {
			return account, true
		}
	}
	return core.Account{}, false
}

// All returns a copy of the collection in insertion order.
func (a *Accounts) All() []core.Account {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]core.Account(nil), a.accounts...)
}

func (a *Accounts) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.accounts)
}

// credit adds to an account balance and persists.
func (a *Accounts) credit(ctx context.Context, id string, amount float64) error {
	a.mu.Lock()
	idx := -1
	for i := range a.accounts {
		if a.accounts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		a.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	a.accounts[idx].Balance += amount
	a.mu.Unlock()

	a.persist(ctx)
	return nil
}

// debit subtracts from an account balance after the single authoritative
// balance check, then persists. Nothing changes when the check fails.
func (a *Accounts) debit(ctx context.Context, id string, amount float64) error {
	a.mu.Lock()
	idx := -1
	for i := range a.accounts {
		if a.accounts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		a.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	if amount > a.accounts[idx].Balance {
		err := &InsufficientFundsError{Available: a.accounts[idx].Balance, Attempted: amount}
		a.mu.Unlock()
		return err
	}
	a.accounts[idx].Balance -= amount
	a.mu.Unlock()

	a.persist(ctx)
	return nil
}
