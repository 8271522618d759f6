package utils

import "time"

// MonthKeyLayout is the "YYYY-MM" form identifying a calendar month.
const MonthKeyLayout = "2006-01"

// MonthKey returns the month key for t in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthKeyLayout)
}

// CurrentMonthKey returns the month key for the current month.
func CurrentMonthKey() string {
	return MonthKey(time.Now())
}
