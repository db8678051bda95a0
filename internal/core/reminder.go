package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DueSoonWindow is how far ahead a reminder counts as due soon.
const DueSoonWindow = 7 * 24 * time.Hour

var ErrEmptyTitle = errors.New("empty reminder title")

// Reminder is a payment reminder. Amount is optional; zero means no amount
// was attached.
type Reminder struct {
	ID        string
	Title     string
	Amount    float64
	DueDate   time.Time
	Completed bool
	Type      ReminderType
}

// NewReminder creates an incomplete reminder with a fresh id.
func NewReminder(title string, amount float64, dueDate time.Time, rt ReminderType) Reminder {
	return Reminder{
		ID:      uuid.NewString(),
		Title:   title,
		Amount:  amount,
		DueDate: dueDate,
		Type:    rt,
	}
}

// IsOverdue reports whether the reminder is incomplete and past due at the
// given instant. Dueness is evaluated against the supplied clock, never
// stored.
func (r Reminder) IsOverdue(now time.Time) bool {
	return !r.Completed && r.DueDate.Before(now)
}

// IsDueSoon reports whether the reminder is incomplete and due within the
// next 7 days, boundary inclusive.
func (r Reminder) IsDueSoon(now time.Time) bool {
	if r.Completed {
		return false
	}
	if r.DueDate.Before(now) {
		return false
	}
	return !r.DueDate.After(now.Add(DueSoonWindow))
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if r.Amount < 0 {
		return ErrInvalidAmount
	}
	if r.DueDate.IsZero() {
		return errors.New("zero due date")
	}
	if !r.Type.IsValid() {
		return ErrUnknownReminderType
	}
	return nil
}
