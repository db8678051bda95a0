package core

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrincipal = errors.New("invalid loan principal")
	ErrInvalidRate      = errors.New("invalid interest rate")
	ErrInvalidTenure    = errors.New("invalid tenure")
)

// Loan is an amortizing loan. It is its own record rather than a kind of
// Account: repayment progress is expressed through the derived fields
// below, and LinkedAccountID is a non-owning reference to the bank account
// used as the automatic-debit source. An empty LinkedAccountID means the
// loan is self-funded and EMI payments move no money.
type Loan struct {
	ID              string
	BankName        string
	Currency        Currency
	Principal       float64
	InterestRate    float64 // annual, percent
	TenureMonths    int
	EMIsPaid        int
	LinkedAccountID string
}

// NewLoan creates a loan with a fresh id and no EMIs paid.
func NewLoan(bankName string, currency Currency, principal, annualRate float64, tenureMonths int, linkedAccountID string) Loan {
	return Loan{
		ID:              uuid.NewString(),
		BankName:        bankName,
		Currency:        currency,
		Principal:       principal,
		InterestRate:    annualRate,
		TenureMonths:    tenureMonths,
		LinkedAccountID: linkedAccountID,
	}
}

func (l Loan) Validate() error {
	if strings.TrimSpace(l.BankName) == "" {
		return ErrEmptyBankName
	}
	if !l.Currency.IsValid() {
		return ErrUnknownCurrency
	}
	if l.Principal <= 0 {
		return ErrInvalidPrincipal
	}
	if l.InterestRate < 0 {
		return ErrInvalidRate
	}
	if l.TenureMonths <= 0 {
		return ErrInvalidTenure
	}
	if l.EMIsPaid < 0 || l.EMIsPaid > l.TenureMonths {
		return errors.New("emi paid count out of range")
	}
	return nil
}

// EMIAmount is the fixed monthly installment from the standard
// amortization formula. With monthly rate r and tenure n months:
//
//	P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero interest rate degenerates to principal/tenure.
func (l Loan) EMIAmount() float64 {
	n := float64(l.TenureMonths)
	if l.InterestRate == 0 {
		return l.Principal / n
	}
	r := l.InterestRate / 12 / 100
	factor := math.Pow(1+r, n)
	return l.Principal * r * factor / (factor - 1)
}

// EMIsLeft is the number of installments still owed, never negative.
func (l Loan) EMIsLeft() int {
	left := l.TenureMonths - l.EMIsPaid
	if left < 0 {
		return 0
	}
	return left
}

// PaidAmount is the total repaid so far.
func (l Loan) PaidAmount() float64 {
	return float64(l.EMIsPaid) * l.EMIAmount()
}

// Outstanding is the remaining repayment obligation (principal plus
// interest), clamped at zero.
func (l Loan) Outstanding() float64 {
	out := l.EMIAmount()*float64(l.TenureMonths) - l.PaidAmount()
	if out < 0 {
		return 0
	}
	return out
}

// TotalInterest is the interest component over the full tenure.
func (l Loan) TotalInterest() float64 {
	return l.EMIAmount()*float64(l.TenureMonths) - l.Principal
}
