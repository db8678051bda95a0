package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()

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

	gotBudgets, err := store.LoadBudgets(ctx)
	if err != nil {
		t.Fatalf("LoadBudgets: %v", err)
	}
	if len(gotBudgets) != 2 || gotBudgets[0].Spent != 120.5 {
		t.Fatalf("LoadBudgets = %+v", gotBudgets)
	}

	gotReminders, err := store.LoadReminders(ctx)
	if err != nil {
		t.Fatalf("LoadReminders: %v", err)
	}
	if len(gotReminders) != 2 || !gotReminders[1].Completed {
		t.Fatalf("LoadReminders = %+v", gotReminders)
	}
}

func TestFileStoreMissingFilesLoadEmpty(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	accounts, err := store.LoadAccounts(ctx)
	if err != nil {
		t.Fatalf("LoadAccounts on empty dir: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("expected empty collection, got %v", accounts)
	}
}

func TestFileStoreCorruptFileLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, accountsFile), []byte("{{{"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	accounts, err := store.LoadAccounts(ctx)
	if err != nil {
		t.Fatalf("LoadAccounts on corrupt file: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("expected empty collection from corrupt file, got %v", accounts)
	}
}
