package domain

import "time"

// DateOnly truncates t to midnight UTC. All date arithmetic in this package
// (period durations, range filters, day grouping) works on whole days, so
// the time-of-day on a stored timestamp never affects the result.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b after truncating
// both to midnight UTC. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
