package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	"github.com/etnz/expense/logger"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// addCmd appends a record dated today.
type addCmd struct {
	description string
	value       float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "adds an entry to the record table" }
func (*addCmd) Usage() string {
	return `rcd add -d <description> -v <value>

  Adds an expense dated today to the current month.
  Negative values record a refund or a credit. -month cannot select another
  month: entries are always dated today.

Usage Examples:
$ rcd add -d "groceries" -v 42.30
$ rcd add -d "refund" -v -10

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description of the entry.")
	f.StringVar(&c.description, "description", "", "Alias for -d.")
	f.Float64Var(&c.value, "v", 0, "Expense value.")
	f.Float64Var(&c.value, "value", 0, "Alias for -v.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isFlagSet(f, "d", "description") {
		fmt.Fprintln(stderr, "Error: -d <description> is required.")
		return subcommands.ExitUsageError
	}
	if !isFlagSet(f, "v", "value") {
		fmt.Fprintln(stderr, "Error: -v <value> is required.")
		return subcommands.ExitUsageError
	}
	if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
		fmt.Fprintf(stderr, "Error: -v %v is not a finite number.\n", c.value)
		return subcommands.ExitUsageError
	}

	// New records are dated today, so they belong to this month's file only.
	if m, today := monthOrCurrent(current.Month), date.Today(); m != today.Month() {
		fmt.Fprintf(stderr, "Error: cannot add to %s: new entries are dated %s.\n", m, today)
		return subcommands.ExitUsageError
	}

	return withSession(func(s *expense.Store) subcommands.ExitStatus {
		index := s.Add(c.description, c.value)
		logger.Info("record added", zap.Int("index", index), zap.Float64("value", c.value))
		fmt.Fprintf(stdout, "Added record %d: %s %v\n", index, c.description, c.value)
		return subcommands.ExitSuccess
	})
}
