// Package date implements the calendar day and month types used to stamp
// and file expense records.
package date

import (
	"fmt"
	"time"
)

// Format is the layout used to read and write dates (DD-MM-YYYY).
const Format = "02-01-2006"

const readFormat = "2-1-2006" // Permissive read format (allows single-digit day/month).

// Date represents a date with day-level granularity.
// Dates are comparable with ==.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current local date.
func Today() Date { return New(time.Now().Date()) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Month returns the calendar month the date belongs to.
func (d Date) Month() Month { return Month{y: d.y, m: d.m} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String formats the date as DD-MM-YYYY.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date from a string. It is lenient and accepts "1-7-2025" as well as "01-07-2025".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, "DD-MM-YYYY", err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Set implements flag.Value so that a Date can be bound to a command-line flag.
func (d *Date) Set(str string) error {
	on, err := Parse(str)
	if err != nil {
		return err
	}
	*d = on
	return nil
}
