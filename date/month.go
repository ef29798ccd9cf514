package date

import (
	"fmt"
	"time"
)

// MonthFormat is the layout used to name a month (MM-YYYY).
const MonthFormat = "01-2006"

// Month identifies one calendar month of one year.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns the normalized Month for year and month.
func NewMonth(year int, month time.Month) Month {
	return New(year, month, 1).Month()
}

// ThisMonth returns the current local month.
func ThisMonth() Month { return Today().Month() }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }

// Last returns the last day of the month.
func (m Month) Last() Date { return New(m.y, m.m+1, 0) }

// Contains reports whether d falls in the month.
func (m Month) Contains(d Date) bool { return d.Month() == m }

// String formats the month as MM-YYYY.
func (m Month) String() string { return m.First().time().Format(MonthFormat) }

// ParseMonth parses a MM-YYYY string. Single-digit months are accepted.
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse("1-2006", str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, "MM-YYYY", err)
	}
	return NewMonth(on.Year(), on.Month()), nil
}

// Set implements flag.Value.
func (m *Month) Set(str string) error {
	v, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
