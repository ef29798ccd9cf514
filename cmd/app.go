// Package cmd implements the rcd command-line application to record expenses.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	"github.com/etnz/expense/logger"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Commands lists the rcd subcommands.
var Commands = []subcommands.Command{
	&addCmd{},
	&deleteCmd{},
	&displayCmd{},
	&statsCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDirFlag = flag.String("data-dir", "", "Folder holding the month files. Defaults to $HOME/.rcdata.")
var monthFlag = flag.String("month", "", "Month to work on, in MM-YYYY format. Defaults to the current month.")
var configFlag = flag.String("config", "", "YAML configuration file. Defaults to $HOME/.rcdata/config.yaml.")
var styleFlag = flag.String("style", "", "How to print markdown: auto, dark, light, notty, ascii or plain.")
var Verbose = flag.Bool("verbose", false, "Print diagnostics on stderr.")

// current holds the settings of this invocation, resolved by Setup.
var current Settings

// stdout and stderr are where commands print; tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Setup resolves the settings from the command line, the environment and the
// configuration file. It must be called after flag.Parse and before executing a command.
func Setup() error {
	o := Overrides{
		DataDir: *dataDirFlag,
		Month:   *monthFlag,
		Config:  *configFlag,
		Style:   *styleFlag,
	}
	if isFlagSet(flag.CommandLine, "verbose") {
		o.Verbose = Verbose
	}
	s, err := ResolveSettings(o)
	if err != nil {
		return err
	}
	logger.SetVerbose(s.Verbose)
	current = s
	logger.Debug("settings", zap.String("data-dir", s.DataDir), zap.Stringer("month", s.Month), zap.String("style", s.Style))
	return nil
}

// openSession loads the store of the selected month, creating the data folder on first use.
func openSession() (*expense.Session, error) {
	if err := expense.EnsureDataDir(current.DataDir); err != nil {
		return nil, err
	}
	return expense.OpenMonth(current.DataDir, monthOrCurrent(current.Month))
}

// withSession runs the command body between loading and saving the month store.
// The store is saved whatever the body returns; a failed save turns the status into a failure.
func withSession(body func(s *expense.Store) subcommands.ExitStatus) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	status := body(session.Store())

	if err := session.Close(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return status
}

// isFlagSet reports whether one of the named flags was given on the command line.
func isFlagSet(f *flag.FlagSet, names ...string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		for _, name := range names {
			if fl.Name == name {
				set = true
			}
		}
	})
	return set
}

// monthOrCurrent returns m or the current month if m is the zero Month.
func monthOrCurrent(m date.Month) date.Month {
	if m == (date.Month{}) {
		return date.ThisMonth()
	}
	return m
}
