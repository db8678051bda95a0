package core

import (
	"math"
	"time"
)

// CurrentPeriodRange returns the half-open window [start, end) of the
// current calendar instance of the period containing now. Weeks start on
// Monday.
func CurrentPeriodRange(p Period, now time.Time) (start, end time.Time) {
	switch p {
	case Weekly:
		weekday := int(now.Weekday())
		if weekday == 0 { // Sunday
			weekday = 7
		}
		start = time.Date(now.Year(), now.Month(), now.Day()-(weekday-1), 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 0, 7)
	case Yearly:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(1, 0, 0)
	default: // Monthly
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, 0)
	}
	return start, end
}

// InCurrentPeriod reports whether t falls inside the current calendar
// instance of the period containing now.
func InCurrentPeriod(t time.Time, p Period, now time.Time) bool {
	start, end := CurrentPeriodRange(p, now)
	return !t.Before(start) && t.Before(end)
}

// RoundCents rounds a display amount half-up to two decimals. Internal
// arithmetic stays unrounded; this is for formatting only.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
