package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/etnz/expense/logger"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// deleteCmd removes a record by index.
type deleteCmd struct {
	index int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "deletes an entry from the record table" }
func (*deleteCmd) Usage() string {
	return `rcd delete -i <index>

  Deletes the entry at index from the current month.
  Every later entry moves up by one: indices always run from 1 to the number of entries.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "Index of the entry to delete.")
	f.IntVar(&c.index, "index", 0, "Alias for -i.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isFlagSet(f, "i", "index") {
		fmt.Fprintln(stderr, "Error: -i <index> is required.")
		return subcommands.ExitUsageError
	}

	return withSession(func(s *expense.Store) subcommands.ExitStatus {
		r, err := s.Record(c.index)
		if err == nil {
			err = s.Delete(c.index)
		}
		if err != nil {
			// Nothing changed; the session still saves before exiting.
			fmt.Fprintf(stderr, "Error: cannot delete: %v\n", err)
			return subcommands.ExitFailure
		}
		logger.Info("record deleted", zap.Int("index", c.index), zap.Int("remaining", s.Len()))
		fmt.Fprintf(stdout, "Deleted record %d: %s %v\n", r.Index, r.Description, r.Value)
		return subcommands.ExitSuccess
	})
}
