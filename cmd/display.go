package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type displayCmd struct {
	head int
	tail int
}

func (*displayCmd) Name() string     { return "display" }
func (*displayCmd) Synopsis() string { return "displays the current record table" }
func (*displayCmd) Usage() string {
	return `rcd display [-head <n>] [-tail <n>]

  Displays the entries of the current month, optionally limited to the first or last N.
`
}

func (c *displayCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N entries.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N entries.")
}

func (c *displayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	return withSession(func(s *expense.Store) subcommands.ExitStatus {
		if s.IsEmpty() {
			printMarkdown(renderer.NoRecords())
			return subcommands.ExitSuccess
		}

		records := s.List()
		if c.head > 0 && len(records) > c.head {
			records = records[:c.head]
		}
		if c.tail > 0 && len(records) > c.tail {
			records = records[len(records)-c.tail:]
		}
		printMarkdown(renderer.Records(records))
		return subcommands.ExitSuccess
	})
}
