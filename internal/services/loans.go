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
	ErrLoanNotFound         = errors.New("loan not found")
	ErrDuplicateLoan        = errors.New("duplicate loan id")
	ErrLoanFullyPaid        = errors.New("loan fully paid")
	ErrLinkedAccountMissing = errors.New("linked account missing")
)

// Loans owns the loan collection and orchestrates EMI payments against an
// Accounts store. Structural changes and EMI progress both persist the
// whole collection.
type Loans struct {
	mu    sync.Mutex
	store storage.LoanStore
	loans []core.Loan
}

func NewLoans(store storage.LoanStore) *Loans {
	return &Loans{store: store}
}

func (l *Loans) Load(ctx context.Context) error {
	loans, err := l.store.LoadLoans(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load loans, starting empty", "error", err)
		loans = nil
	}
	l.mu.Lock()
	l.loans = loans
	l.mu.Unlock()
	return nil
}

func (l *Loans) persist(ctx context.Context) {
	l.mu.Lock()
	snapshot := append([]core.Loan(nil), l.loans...)
	l.mu.Unlock()

	if err := l.store.SaveLoans(ctx, snapshot); err != nil {
		slog.ErrorContext(ctx, "Failed to persist loans", "error", err, "count", len(snapshot))
	}
}

func (l *Loans) Add(ctx context.Context, loan core.Loan) error {
	if err := loan.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	for _, existing := range l.loans {
		if existing.ID == loan.ID {
			l.mu.Unlock()
			return fmt.Errorf("%w: %s", ErrDuplicateLoan, loan.ID)
		}
	}
	l.loans = append(l.loans, loan)
	l.mu.Unlock()

	slog.InfoContext(ctx, "Loan added",
		"id", loan.ID,
		"bank", loan.BankName,
		"principal", loan.Principal,
		"tenure_months", loan.TenureMonths)
	l.persist(ctx)
	return nil
}

func (l *Loans) Remove(ctx context.Context, id string) {
	l.mu.Lock()
	removed := false
	for i, existing := range l.loans {
		if existing.ID == id {
			l.loans = append(l.loans[:i], l.loans[i+1:]...)
			removed = true
			break
		}
	}
	l.mu.Unlock()

	if !removed {
		return
	}
	slog.InfoContext(ctx, "Loan removed", "id", id)
	l.persist(ctx)
}

func (l *Loans) GetByID(id string) (core.Loan, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, loan := range l.loans {
		if loan.ID == id {
			return loan, true
		}
	}
	return core.Loan{}, false
}

func (l *Loans) All() []core.Loan {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Loan(nil), l.loans...)
}

// PayNextEMI pays one installment. The steps are all-or-nothing: every
// check runs before any state changes.
//
//   - A fully paid loan fails with ErrLoanFullyPaid.
//   - A loan whose linked account id resolves to nothing fails with
//     ErrLinkedAccountMissing rather than silently awarding EMI credit
//     with no money movement.
//   - A resolved linked account short of the EMI amount fails with
//     InsufficientFundsError and nothing moves.
//   - A loan with no linked account id is self-funded: the paid count
//     advances with no deduction.
func (l *Loans) PayNextEMI(ctx context.Context, loanID string, accounts *Accounts) error {
	loan, ok := l.GetByID(loanID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrLoanNotFound, loanID)
	}
	if loan.EMIsLeft() == 0 {
		return fmt.Errorf("%w: %s", ErrLoanFullyPaid, loanID)
	}

	emi := loan.EMIAmount()
	if loan.LinkedAccountID != "" {
		linked, ok := accounts.GetByID(loan.LinkedAccountID)
		if !ok {
			return fmt.Errorf("%w: %s (loan %s)", ErrLinkedAccountMissing, loan.LinkedAccountID, loanID)
		}
		if linked.Balance < emi {
			return &InsufficientFundsError{Available: linked.Balance, Attempted: emi}
		}
		if err := accounts.debit(ctx, loan.LinkedAccountID, emi); err != nil {
			return fmt.Errorf("debit linked account: %w", err)
		}
	}

	l.mu.Lock()
	for i := range l.loans {
		if l.loans[i].ID == loanID {
			l.loans[i].EMIsPaid++
			loan = l.loans[i]
			break
		}
	}
	l.mu.Unlock()

	slog.InfoContext(ctx, "EMI paid",
		"loan_id", loanID,
		"emi_amount", core.RoundCents(emi),
		"emis_paid", loan.EMIsPaid,
		"emis_left", loan.EMIsLeft())
	l.persist(ctx)
	return nil
}
