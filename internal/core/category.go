package core

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a spending category. Income is distinguished: transactions
// tagged with it count as income rather than expenses.
type Category string

const (
	Income        Category = "Income"
	Food          Category = "Food"
	Rent          Category = "Rent"
	Travel        Category = "Travel"
	Shopping      Category = "Shopping"
	Entertainment Category = "Entertainment"
	Utilities     Category = "Utilities"
	Health        Category = "Health"
	Education     Category = "Education"
	Other         Category = "Other"
)

var ErrUnknownCategory = errors.New("unknown category")

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		Income, Food, Rent, Travel, Shopping,
		Entertainment, Utilities, Health, Education, Other,
	}
}

func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, known := range Categories() {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Period is the recurring window over which a budget limit applies.
type Period string

const (
	Weekly  Period = "Weekly"
	Monthly Period = "Monthly"
	Yearly  Period = "Yearly"
)

var ErrUnknownPeriod = errors.New("unknown period")

func (p Period) IsValid() bool {
	switch p {
	case Weekly, Monthly, Yearly:
		return true
	default:
		return false
	}
}

func (p Period) String() string {
	return string(p)
}

func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	for _, known := range []Period{Weekly, Monthly, Yearly} {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// ReminderType classifies what a payment reminder is for.
type ReminderType string

const (
	RemindRent    ReminderType = "Rent"
	RemindTuition ReminderType = "Tuition"
	RemindEMI     ReminderType = "EMI"
	RemindBill    ReminderType = "Bill"
	RemindOther   ReminderType = "Other"
)

var ErrUnknownReminderType = errors.New("unknown reminder type")

func (rt ReminderType) IsValid() bool {
	switch rt {
	case RemindRent, RemindTuition, RemindEMI, RemindBill, RemindOther:
		return true
	default:
		return false
	}
}

func (rt ReminderType) String() string {
	return string(rt)
}

func ParseReminderType(s string) (ReminderType, error) {
	s = strings.TrimSpace(s)
	for _, known := range []ReminderType{RemindRent, RemindTuition, RemindEMI, RemindBill, RemindOther} {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReminderType, s)
}
