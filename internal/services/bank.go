package services

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
)

// Default transaction descriptions when the caller supplies none.
const (
	defaultDepositDescription    = "Deposit"
	defaultWithdrawalDescription = "Withdrawal"
)

// Bank orchestrates the deposit/withdrawal flow across the accounts
// store and the ledger. This is the one place balances, budgets and the
// transaction history move together.
type Bank struct {
	accounts *Accounts
	ledger   *Ledger
}

func NewBank(accounts *Accounts, ledger *Ledger) *Bank {
	return &Bank{accounts: accounts, ledger: ledger}
}

// Deposit credits the account and records an income transaction. Budgets
// are never touched by deposits.
func (b *Bank) Deposit(ctx context.Context, accountID string, amount float64, description string) error {
	if amount <= 0 {
		return core.ErrInvalidAmount
	}
	account, ok := b.accounts.GetByID(accountID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}

	if err := b.accounts.credit(ctx, accountID, amount); err != nil {
		return err
	}

	if description == "" {
		description = defaultDepositDescription
	}
	tx := core.NewTransaction(amount, account.Currency, core.Income, description)
	b.ledger.AddTransaction(ctx, amount, tx)

	slog.InfoContext(ctx, "Deposit completed",
		"account_id", accountID,
		"amount", core.RoundCents(amount),
		"currency", account.Currency)
	return nil
}

// Withdraw performs the critical three-part mutation as one logical
// unit: debit the account, bump the first matching budget's spent total
// (converted into the budget's currency), and append one transaction.
// The debit carries the single authoritative balance check; when it
// fails, none of the three effects happen.
func (b *Bank) Withdraw(ctx context.Context, accountID string, amount float64, category core.Category, description string) error {
	if amount <= 0 {
		return core.ErrInvalidAmount
	}
	account, ok := b.accounts.GetByID(accountID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}

	if err := b.accounts.debit(ctx, accountID, amount); err != nil {
		return err
	}

	b.ledger.recordSpend(ctx, category, amount, account.Currency)

	if description == "" {
		description = defaultWithdrawalDescription
	}
	tx := core.NewTransaction(amount, account.Currency, category, description)
	b.ledger.AddTransaction(ctx, amount, tx)

	slog.InfoContext(ctx, "Withdrawal completed",
		"account_id", accountID,
		"amount", core.RoundCents(amount),
		"currency", account.Currency,
		"category", category)
	return nil
}
