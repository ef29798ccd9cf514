package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
	"github.com/pkg/errors"
)

// statsCmd prints min, max, total and average of the month, or of a single day.
type statsCmd struct {
	on date.Date
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "prints the stats related to the current month" }
func (*statsCmd) Usage() string {
	return `rcd stats [-d <DD-MM-YYYY>]

  Prints the minimum, maximum, total and average expenditure of the current month.
  With -d, only the entries added on that day are considered.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.on, "d", "Only consider entries of this date (DD-MM-YYYY).")
	f.Var(&c.on, "date", "Alias for -d.")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(func(s *expense.Store) subcommands.ExitStatus {
		if s.IsEmpty() {
			printMarkdown(renderer.NoRecords())
			return subcommands.ExitSuccess
		}

		var st expense.Stats
		var err error
		if c.on.IsZero() {
			st, err = expense.ComputeAll(s)
		} else {
			st, err = expense.ComputeForDate(s, c.on)
		}
		if errors.Is(err, expense.ErrEmptyAggregation) {
			printMarkdown(renderer.NoData(c.on))
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.Stats(st))
		return subcommands.ExitSuccess
	})
}
