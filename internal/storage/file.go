package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fintrack/internal/core"
)

// Collection file names under the data directory.
const (
	accountsFile     = "accounts.json"
	loansFile        = "loans.json"
	transactionsFile = "transactions.json"
	budgetsFile      = "budgets.json"
	remindersFile    = "reminders.json"
)

// FileStore keeps each collection in a JSON document under a data
// directory. Loads are best-effort: a missing or corrupt file degrades to
// an empty collection with a warning, so a damaged data directory never
// blocks startup.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) read(ctx context.Context, name string) []byte {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "Failed to read collection file, treating as empty",
				"file", name, "error", err)
		}
		return nil
	}
	return data
}

func (f *FileStore) write(name string, data []byte) error {
	path := filepath.Join(f.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (f *FileStore) LoadAccounts(ctx context.Context) ([]core.Account, error) {
	return decodeAccounts(f.read(ctx, accountsFile)), nil
}

func (f *FileStore) SaveAccounts(_ context.Context, accounts []core.Account) error {
	data, err := encodeAccounts(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	return f.write(accountsFile, data)
}

func (f *FileStore) LoadLoans(ctx context.Context) ([]core.Loan, error) {
	return decodeLoans(f.read(ctx, loansFile)), nil
}

func (f *FileStore) SaveLoans(_ context.Context, loans []core.Loan) error {
	data, err := encodeLoans(loans)
	if err != nil {
		return fmt.Errorf("encode loans: %w", err)
	}
	return f.write(loansFile, data)
}

func (f *FileStore) LoadTransactions(ctx context.Context) ([]core.Transaction, error) {
	return decodeTransactions(f.read(ctx, transactionsFile)), nil
}

func (f *FileStore) SaveTransactions(_ context.Context, txs []core.Transaction) error {
	data, err := encodeTransactions(txs)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	return f.write(transactionsFile, data)
}

func (f *FileStore) LoadBudgets(ctx context.Context) ([]core.Budget, error) {
	return decodeBudgets(f.read(ctx, budgetsFile)), nil
}

func (f *FileStore) SaveBudgets(_ context.Context, budgets []core.Budget) error {
	data, err := encodeBudgets(budgets)
	if err != nil {
		return fmt.Errorf("encode budgets: %w", err)
	}
	return f.write(budgetsFile, data)
}

func (f *FileStore) LoadReminders(ctx context.Context) ([]core.Reminder, error) {
	return decodeReminders(f.read(ctx, remindersFile)), nil
}

func (f *FileStore) SaveReminders(_ context.Context, reminders []core.Reminder) error {
	data, err := encodeReminders(reminders)
	if err != nil {
		return fmt.Errorf("encode reminders: %w", err)
	}
	return f.write(remindersFile, data)
}

func (f *FileStore) Close() error {
	return nil
}
