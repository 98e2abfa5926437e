package models

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates (ISO-8601, day granularity).
const DateFormat = "2006-01-02"

// DateOnly truncates a timestamp to its calendar day at midnight UTC.
// Balance entries, exchange rates, and sample dates all carry day
// granularity; normalizing through this function makes equality and
// ordering comparisons safe regardless of the source location or clock.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO-8601 date string into a normalized calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected format %s", s, DateFormat)
	}
	return t, nil
}

// FormatDate renders a calendar day in the wire format.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// SameDay reports whether two timestamps fall on the same calendar day (UTC).
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// DaysBetween returns the number of whole days from a to b. Negative if b
// precedes a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
