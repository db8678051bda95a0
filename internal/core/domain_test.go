package core

import (
	"testing"
	"time"
)

func TestBudgetRemainingAndOverBudget(t *testing.T) {
	cases := []struct {
		spent     float64
		remaining float64
		over      bool
	}{
		{0, 500, false},
		{200, 300, false},
		{500, 0, false},
		{650, 0, true},
	}
	for i, tc := range cases {
		b := NewBudget(Food, 500, AUD, Monthly)
		b.Spent = tc.spent
		if got := b.Remaining(); got != tc.remaining {
			t.Fatalf("case %d: Remaining() = %v, want %v", i, got, tc.remaining)
		}
		if got := b.IsOverBudget(); got != tc.over {
			t.Fatalf("case %d: IsOverBudget() = %v, want %v", i, got, tc.over)
		}
	}
}

func TestTransactionIsIncome(t *testing.T) {
	if !NewTransaction(10, AUD, Income, "salary").IsIncome() {
		t.Fatal("income transaction should report IsIncome")
	}
	if NewTransaction(10, AUD, Food, "lunch").IsIncome() {
		t.Fatal("expense transaction should not report IsIncome")
	}
}

func TestReminderDueness(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name      string
		due       time.Time
		completed bool
		overdue   bool
		dueSoon   bool
	}{
		{"past", now.Add(-time.Hour), false, true, false},
		{"in an hour", now.Add(time.Hour), false, false, true},
		{"exactly 7 days", now.Add(7 * 24 * time.Hour), false, false, true},
		{"just past 7 days", now.Add(7*24*time.Hour + time.Minute), false, false, false},
		{"completed past", now.Add(-time.Hour), true, false, false},
		{"completed upcoming", now.Add(time.Hour), true, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReminder("rent", 100, tc.due, RemindRent)
			r.Completed = tc.completed
			if got := r.IsOverdue(now); got != tc.overdue {
				t.Fatalf("IsOverdue = %v, want %v", got, tc.overdue)
			}
			if got := r.IsDueSoon(now); got != tc.dueSoon {
				t.Fatalf("IsDueSoon = %v, want %v", got, tc.dueSoon)
			}
		})
	}
}

func TestCurrentPeriodRange(t *testing.T) {
	// Tuesday 2026-03-10.
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("weekly starts monday", func(t *testing.T) {
		start, end := CurrentPeriodRange(Weekly, now)
		if start.Weekday() != time.Monday {
			t.Fatalf("week start = %v, want Monday", start.Weekday())
		}
		if start.Day() != 9 || end.Day() != 16 {
			t.Fatalf("week = [%v, %v), want Mar 9 to Mar 16", start, end)
		}
	})

	t.Run("weekly on a sunday", func(t *testing.T) {
		sunday := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
		start, _ := CurrentPeriodRange(Weekly, sunday)
		if start.Day() != 9 {
			t.Fatalf("week containing Sunday Mar 15 should start Mar 9, got %v", start)
		}
	})

	t.Run("monthly", func(t *testing.T) {
		start, end := CurrentPeriodRange(Monthly, now)
		if start.Day() != 1 || start.Month() != time.March {
			t.Fatalf("month start = %v, want Mar 1", start)
		}
		if end.Month() != time.April {
			t.Fatalf("month end = %v, want Apr 1", end)
		}
	})

	t.Run("yearly", func(t *testing.T) {
		start, end := CurrentPeriodRange(Yearly, now)
		if start.Month() != time.January || start.Year() != 2026 {
			t.Fatalf("year start = %v, want Jan 1 2026", start)
		}
		if end.Year() != 2027 {
			t.Fatalf("year end = %v, want Jan 1 2027", end)
		}
	})
}

func TestInCurrentPeriod(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		t    time.Time
		p    Period
		want bool
	}{
		{time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), Weekly, true},
		{time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC), Weekly, false},
		{time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Monthly, true},
		{time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), Monthly, false},
		{time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), Yearly, true},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), Yearly, false},
	}
	for i, tc := range cases {
		if got := InCurrentPeriod(tc.t, tc.p, now); got != tc.want {
			t.Fatalf("case %d: InCurrentPeriod(%v, %s) = %v, want %v", i, tc.t, tc.p, got, tc.want)
		}
	}
}

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{12.344, 12.34},
		{12.345, 12.35},
		{12.346, 12.35},
		{0, 0},
	}
	for i, tc := range cases {
		if got := RoundCents(tc.in); got != tc.want {
			t.Fatalf("case %d: RoundCents(%v) = %v, want %v", i, tc.in, got, tc.want)
		}
	}
}

func TestValidateRejectsBadRecords(t *testing.T) {
	now := time.Now()
	if err := (Account{ID: "a", BankName: " ", Currency: AUD}).Validate(); err == nil {
		t.Fatal("expected error for blank bank name")
	}
	if err := (Transaction{ID: "t", Amount: 0, Currency: AUD, Date: now, Category: Food}).Validate(); err == nil {
		t.Fatal("expected error for non-positive amount")
	}
	if err := (Budget{ID: "b", Category: Food, Limit: 0, Currency: AUD, Period: Weekly}).Validate(); err == nil {
		t.Fatal("expected error for non-positive limit")
	}
	if err := (Reminder{ID: "r", Title: "", DueDate: now, Type: RemindBill}).Validate(); err == nil {
		t.Fatal("expected error for empty title")
	}
}
