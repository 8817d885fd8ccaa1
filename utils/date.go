package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// nowFunc is swapped in tests that need a fixed "today".
var nowFunc = time.Now

// DateOf drops the time-of-day part and normalizes the result to UTC midnight,
// keeping the calendar day the caller sees in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date.
func Today() time.Time {
	return DateOf(nowFunc())
}

// SetNowFunc overrides the clock used by Today and returns a restore function.
func SetNowFunc(fn func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// ParseDateOrToday parses s, falling back to today when s is empty.
func ParseDateOrToday(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return Today(), nil
	}
	return ParseDate(s)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays shifts a calendar date by n days.
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}

// IsSunday reports whether the date falls on a Sunday.
func IsSunday(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

// WeekStartOf returns the most recent Sunday on or before t.
func WeekStartOf(t time.Time) time.Time {
	d := DateOf(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// SundaysBetween lists every Sunday-aligned week start covering [start, end].
// The first entry is the Sunday on or before start.
func SundaysBetween(start, end time.Time) []time.Time {
	end = DateOf(end)
	var weeks []time.Time
	for w := WeekStartOf(start); !w.After(end); w = w.AddDate(0, 0, 7) {
		weeks = append(weeks, w)
	}
	return weeks
}

// DateOrToday returns today when t is the zero time, otherwise t as a calendar date.
func DateOrToday(t time.Time) time.Time {
	if t.IsZero() {
		return Today()
	}
	return DateOf(t)
}
