// Package caldate parses and validates the calendar dates the puzzle is
// solved for. Using a full date parse is a bit overkill when the board only
// cares about month and day, but it means we correctly reject things like
// Feb 30, and leap years are handled for free. That's also why the year is
// part of the input format: so we can check.
package caldate

import (
	"fmt"
	"time"
)

// Layout is the accepted input format.
const Layout = "2006-01-02"

// A Date is a zero-indexed month and day. Month0 is in [0, 12) and Day0 in
// [0, 31); a Date built by this package always names a real Gregorian date.
type Date struct {
	Month0 int
	Day0   int
}

// Parse reads a YYYY-MM-DD string, insisting it names a real date.
func Parse(input string) (Date, error) {
	t, err := time.Parse(Layout, input)
	if err != nil {
		return Date{}, fmt.Errorf("cannot parse %q as a date: %w", input, err)
	}
	return FromTime(t), nil
}

// FromTime converts a time.Time to its zero-indexed month and day.
func FromTime(t time.Time) Date {
	return Date{Month0: int(t.Month()) - 1, Day0: t.Day() - 1}
}

// Today is the current local date.
func Today() Date {
	return FromTime(time.Now())
}

// String formats the date as a month name and one-indexed day.
func (d Date) String() string {
	return fmt.Sprintf("%s %d", time.Month(d.Month0+1), d.Day0+1)
}
