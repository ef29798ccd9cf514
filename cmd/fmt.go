package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the month file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `rcd fmt

  Validates and formats the month file. This command reads all entries,
  renumbers them 1..N in file order, and writes them back with canonical
  dates (DD-MM-YYYY) and values. Use it after editing the file by hand.

Usage Examples:
# Formats the current month.
$ rcd fmt

# Formats another month.
$ rcd -month 09-2026 fmt

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(func(s *expense.Store) subcommands.ExitStatus {
		fmt.Fprintf(stderr, "Formatted %q (%d records).\n", current.path(), s.Len())
		return subcommands.ExitSuccess
	})
}
