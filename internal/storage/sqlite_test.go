package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "fintrack.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	accounts, loans, txs, budgets, reminders := sampleCollections()

	if err := store.SaveAccounts(ctx, accounts); err != nil {
		t.Fatalf("SaveAccounts: %v", err)
	}
	if err := store.SaveLoans(ctx, loans); err != nil {
		t.Fatalf("SaveLoans: %v", err)
	}
	if err := store.SaveTransactions(ctx, txs); err != nil {
		t.Fatalf("SaveTransactions: %v", err)
	}
	if err := store.SaveBudgets(ctx, budgets); err != nil {
		t.Fatalf("SaveBudgets: %v", err)
	}
	if err := store.SaveReminders(ctx, reminders); err != nil {
		t.Fatalf("SaveReminders: %v", err)
	}

	gotAccounts, err := store.LoadAccounts(ctx)
	if err != nil {
		t.Fatalf("LoadAccounts: %v", err)
	}
	if len(gotAccounts) != 2 || gotAccounts[0] != accounts[0] || gotAccounts[1] != accounts[1] {
		t.Fatalf("LoadAccounts = %+v, want %+v", gotAccounts, accounts)
	}

	gotLoans, err := store.LoadLoans(ctx)
	if err != nil {
		t.Fatalf("LoadLoans: %v", err)
	}
	if len(gotLoans) != 2 || gotLoans[0] != loans[0] || gotLoans[1] != loans[1] {
		t.Fatalf("LoadLoans = %+v, want %+v", gotLoans, loans)
	}

	gotTxs, err := store.LoadTransactions(ctx)
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if len(gotTxs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(gotTxs))
	}
	for i := range txs {
		if gotTxs[i].ID != txs[i].ID || !gotTxs[i].Date.Equal(txs[i].Date) {
			t.Fatalf("transaction %d = %+v, want %+v", i, gotTxs[i], txs[i])
		}
	}

	gotBudgets, err := store.LoadBudgets(ctx)
	if err != nil {
		t.Fatalf("LoadBudgets: %v", err)
	}
	if len(gotBudgets) != 2 {
		t.Fatalf("got %d budgets, want 2", len(gotBudgets))
	}
	if !gotBudgets[0].DueDate.Equal(budgets[0].DueDate) || !gotBudgets[1].DueDate.IsZero() {
		t.Fatalf("budget due dates = %v / %v", gotBudgets[0].DueDate, gotBudgets[1].DueDate)
	}

	gotReminders, err := store.LoadReminders(ctx)
	if err != nil {
		t.Fatalf("LoadReminders: %v", err)
	}
	if len(gotReminders) != 2 || !gotReminders[1].Completed {
		t.Fatalf("LoadReminders = %+v", gotReminders)
	}
}

func TestSQLiteStoreSaveReplacesCollection(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	accounts, _, _, _, _ := sampleCollections()
	if err := store.SaveAccounts(ctx, accounts); err != nil {
		t.Fatalf("SaveAccounts: %v", err)
	}

	// A later save with one account removed must not leave the removed
	// row behind.
	if err := store.SaveAccounts(ctx, accounts[:1]); err != nil {
		t.Fatalf("SaveAccounts: %v", err)
	}

	got, err := store.LoadAccounts(ctx)
	if err != nil {
		t.Fatalf("LoadAccounts: %v", err)
	}
	if len(got) != 1 || got[0].ID != accounts[0].ID {
		t.Fatalf("LoadAccounts = %+v, want only %s", got, accounts[0].ID)
	}
}

func TestSQLiteStoreEmptyDatabaseLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	loans, err := store.LoadLoans(ctx)
	if err != nil {
		t.Fatalf("LoadLoans: %v", err)
	}
	if len(loans) != 0 {
		t.Fatalf("expected empty collection, got %v", loans)
	}
}
