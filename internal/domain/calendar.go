package domain

import (
	"fmt"
	"time"
)

// CalendarDate is a timezone-free (year, month, day) value. The zero value is
// not a valid date; obtain one through NewCalendarDate or sla.ParseDisplay.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// NewCalendarDate builds a CalendarDate, rejecting combinations that a real
// calendar would normalize (Feb 30 becoming Mar 1, month 13, day 0, ...).
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, false
	}
	return CalendarDate{year: year, month: month, day: day}, true
}

func (d CalendarDate) Year() int { return d.year }

func (d CalendarDate) Month() time.Month { return d.month }

func (d CalendarDate) Day() int { return d.day }

// IsZero reports whether d was never constructed.
func (d CalendarDate) IsZero() bool { return d.month == 0 }

// Midnight returns the date at 00:00 UTC, the fixed reference frame used for
// day arithmetic.
func (d CalendarDate) Midnight() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String renders the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
