package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"testing"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	"github.com/google/subcommands"
)

// setupTest points the commands at a temporary data folder with plain output
// and captures what they print.
func setupTest(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}

	oldCurrent, oldStdout, oldStderr := current, stdout, stderr
	t.Cleanup(func() {
		current, stdout, stderr = oldCurrent, oldStdout, oldStderr
	})

	current = Settings{
		DataDir: t.TempDir(),
		Month:   date.ThisMonth(),
		Style:   stylePlain,
	}
	stdout, stderr = out, errOut
	return out, errOut
}

// run parses args like the commander does and executes the command.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	f.SetOutput(io.Discard)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	return c.Execute(context.Background(), f)
}

// currentStore reads back the month file the commands wrote.
func currentStore(t *testing.T) *expense.Store {
	t.Helper()
	s, err := expense.Load(current.path())
	if err != nil {
		t.Fatalf("cannot load %q: %v", current.path(), err)
	}
	return s
}

// writeMonthFile replaces the current month file content.
func writeMonthFile(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(current.path(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
