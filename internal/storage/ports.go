// Package storage provides the persistence ports for the entity
// collections and three interchangeable backends: in-memory, JSON files
// and SQLite.
//
// Loading is best-effort by contract: a missing or undecodable collection
// degrades to an empty one so callers can seed sample data instead of
// failing startup.
package storage

import (
	"context"

	"fintrack/internal/core"
)

// AccountStore persists the bank account collection.
type AccountStore interface {
	LoadAccounts(ctx context.Context) ([]core.Account, error)
	SaveAccounts(ctx context.Context, accounts []core.Account) error
}

// LoanStore persists the loan collection.
type LoanStore interface {
	LoadLoans(ctx context.Context) ([]core.Loan, error)
	SaveLoans(ctx context.Context, loans []core.Loan) error
}

// TransactionStore persists the transaction collection.
type TransactionStore interface {
	LoadTransactions(ctx context.Context) ([]core.Transaction, error)
	SaveTransactions(ctx context.Context, txs []core.Transaction) error
}

// BudgetStore persists the budget collection.
type BudgetStore interface {
	LoadBudgets(ctx context.Context) ([]core.Budget, error)
	SaveBudgets(ctx context.Context, budgets []core.Budget) error
}

// ReminderStore persists the reminder collection.
type ReminderStore interface {
	LoadReminders(ctx context.Context) ([]core.Reminder, error)
	SaveReminders(ctx context.Context, reminders []core.Reminder) error
}

// Store is the full persistence surface a backend provides.
type Store interface {
	AccountStore
	LoanStore
	TransactionStore
	BudgetStore
	ReminderStore
	Close() error
}
