// Command rcd keeps a record of personal expenses, one file per month.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expense/cmd"
	"github.com/etnz/expense/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// RCD_* variables may come from a .env file in the working directory.
	_ = godotenv.Load()

	// Exits early when invoked by the shell to complete a command line.
	cmd.Completion().Complete("rcd")

	commander := subcommands.NewCommander(flag.CommandLine, "rcd")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	if err := cmd.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	if name := flag.Arg(0); name != "" && !isRegistered(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			logger.Sync()
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	logger.Sync()
	os.Exit(int(status))
}

func isRegistered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
