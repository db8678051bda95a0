package storage

import (
	"context"
	"sync"

	"fintrack/internal/core"
)

// Memory is an in-process Store. It backs tests and the default backend
// when no persistence is configured; collections are copied on the way in
// and out so callers never share slices with the store.
type Memory struct {
	mu           sync.Mutex
	accounts     []core.Account
	loans        []core.Loan
	transactions []core.Transaction
	budgets      []core.Budget
	reminders    []core.Reminder
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadAccounts(_ context.Context) ([]core.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Account(nil), m.accounts...), nil
}

func (m *Memory) SaveAccounts(_ context.Context, accounts []core.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append([]core.Account(nil), accounts...)
	return nil
}

func (m *Memory) LoadLoans(_ context.Context) ([]core.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Loan(nil), m.loans...), nil
}

func (m *Memory) SaveLoans(_ context.Context, loans []core.Loan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loans = append([]core.Loan(nil), loans...)
	return nil
}

func (m *Memory) LoadTransactions(_ context.Context) ([]core.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Transaction(nil), m.transactions...), nil
}

func (m *Memory) SaveTransactions(_ context.Context, txs []core.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append([]core.Transaction(nil), txs...)
	return nil
}

func (m *Memory) LoadBudgets(_ context.Context) ([]core.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Budget(nil), m.budgets...), nil
}

func (m *Memory) SaveBudgets(_ context.Context, budgets []core.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.budgets = append([]core.Budget(nil), budgets...)
	return nil
}

func (m *Memory) LoadReminders(_ context.Context) ([]core.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Reminder(nil), m.reminders...), nil
}

func (m *Memory) SaveReminders(_ context.Context, reminders []core.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders = append([]core.Reminder(nil), reminders...)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
