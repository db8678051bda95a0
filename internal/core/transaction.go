package core

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errors.New("empty description")

// Transaction records a single money movement. Records are immutable by
// convention once created; changes go through the ledger's explicit
// update/delete operations.
type Transaction struct {
	ID          string
	Amount      float64
	Currency    Currency
	Date        time.Time
	Category    Category
	Description string
}

// NewTransaction creates a transaction dated now.
func NewTransaction(amount float64, currency Currency, category Category, description string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Amount:      amount,
		Currency:    currency,
		Date:        time.Now(),
		Category:    category,
		Description: description,
	}
}

// IsIncome reports whether the transaction counts as income rather than
// spending.
func (t Transaction) IsIncome() bool {
	return t.Category == Income
}

func (t Transaction) Validate() error {
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !t.Currency.IsValid() {
		return ErrUnknownCurrency
	}
	if !t.Category.IsValid() {
		return ErrUnknownCategory
	}
	if t.Date.IsZero() {
		return errors.New("zero transaction date")
	}
	return nil
}
