package expense

import "github.com/etnz/expense/date"

// Record is one expense entry.
//
// Value is a signed amount: negative values are refunds or credits.
type Record struct {
	Index       int
	Date        date.Date
	Description string
	Value       float64
}
