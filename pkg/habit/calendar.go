package habit

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatDate builds the canonical date key. month is 0-indexed (0 is
// January) and is rendered 1-indexed.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// DaysInMonth returns the length of the 0-indexed month, taking day 0 of the
// following month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthName returns the English name of the 0-indexed month, or "" when out
// of range.
func MonthName(month int) string {
	if month < 0 || month >= len(monthNames) {
		return ""
	}
	return monthNames[month]
}

// ParseDate splits a canonical date key into year, 0-indexed month and day.
func ParseDate(key string) (year, month, day int, err error) {
	t, err := time.Parse(DateLayout, key)
	if err != nil || t.Format(DateLayout) != key {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, key)
	}
	return t.Year(), int(t.Month()) - 1, t.Day(), nil
}

func ValidDate(key string) bool {
	_, _, _, err := ParseDate(key)
	return err == nil
}

// DateKey returns the canonical key for t's local calendar date.
func DateKey(t time.Time) string {
	return FormatDate(t.Year(), int(t.Month())-1, t.Day())
}

// AddMonths moves a 0-indexed month by delta, rolling the year over.
func AddMonths(year, month, delta int) (int, int) {
	total := year*12 + month + delta
	y, m := total/12, total%12
	if m < 0 {
		m += 12
		y--
	}
	return y, m
}

// MonthOf returns t's year and 0-indexed month.
func MonthOf(t time.Time) (int, int) {
	return t.Year(), int(t.Month()) - 1
}
