// Package valueobject contains domain value objects for the Finance Tracker system.
package valueobject

import "time"

// DayOf truncates t to midnight of its own calendar day, keeping its location.
// Budget windows and transaction dates are compared at day granularity.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfYear returns midnight of January 1st of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last instant of t's year.
func EndOfYear(t time.Time) time.Time {
	return StartOfYear(t).AddDate(1, 0, 0).Add(-time.Nanosecond)
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// AddMonthsClamped adds n calendar months to t, keeping the day of month of anchor
// and clamping it to the last day when the target month is shorter.
// Using a fixed anchor stops Jan 31 -> Feb 28 -> Mar 28 drift.
func AddMonthsClamped(anchor time.Time, n int) time.Time {
	y, m := anchor.Year(), anchor.Month()
	total := int(m) - 1 + n
	y += total / 12
	mi := total % 12
	if mi < 0 {
		mi += 12
		y--
	}
	month := time.Month(mi + 1)

	day := anchor.Day()
	if last := DaysInMonth(y, month, anchor.Location()); day > last {
		day = last
	}
	return time.Date(y, month, day, anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
}

// WithinDays reports whether t falls in [start, end] by calendar day.
// A nil bound is unbounded on that side.
func WithinDays(t time.Time, start, end *time.Time) bool {
	day := DayOf(t)
	if start != nil && day.Before(DayOf(*start)) {
		return false
	}
	if end != nil && day.After(DayOf(*end)) {
		return false
	}
	return true
}
