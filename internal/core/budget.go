package core

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidLimit = errors.New("invalid budget limit")

// Budget is a spending goal for one category over a recurring period.
// Spent is a running total incremented only by the withdrawal flow when a
// withdrawal matches the budget's category; it is never reset
// automatically when the period rolls over.
type Budget struct {
	ID       string
	Category Category
	Limit    float64
	Currency Currency
	Period   Period
	DueDate  time.Time // optional; zero means none
	Spent    float64
}

// NewBudget creates a budget with a fresh id and nothing spent.
func NewBudget(category Category, limit float64, currency Currency, period Period) Budget {
	return Budget{
		ID:       uuid.NewString(),
		Category: category,
		Limit:    limit,
		Currency: currency,
		Period:   period,
	}
}

// Remaining is the unspent headroom, clamped at zero once over budget.
func (b Budget) Remaining() float64 {
	if b.Spent >= b.Limit {
		return 0
	}
	return b.Limit - b.Spent
}

// IsOverBudget reports whether spending has exceeded the limit.
func (b Budget) IsOverBudget() bool {
	return b.Spent > b.Limit
}

func (b Budget) Validate() error {
	if !b.Category.IsValid() {
		return ErrUnknownCategory
	}
	if b.Limit <= 0 {
		return ErrInvalidLimit
	}
	if !b.Currency.IsValid() {
		return ErrUnknownCurrency
	}
	if !b.Period.IsValid() {
		return ErrUnknownPeriod
	}
	if b.Spent < 0 {
		return ErrInvalidAmount
	}
	return nil
}
