package core

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyBankName = errors.New("empty bank name")
)

// Account is a bank account value record. Balance is mutated only through
// store commands; code outside the stores treats Account as read-only.
type Account struct {
	ID       string
	BankName string
	Currency Currency
	Balance  float64
}

// NewAccount creates an account with a fresh id and an opening balance.
func NewAccount(bankName string, currency Currency, openingBalance float64) Account {
	return Account{
		ID:       uuid.NewString(),
		BankName: bankName,
		Currency: currency,
		Balance:  openingBalance,
	}
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.BankName) == "" {
		return ErrEmptyBankName
	}
	if !a.Currency.IsValid() {
		return ErrUnknownCurrency
	}
	if a.Balance < 0 {
		return ErrInvalidAmount
	}
	return nil
}
