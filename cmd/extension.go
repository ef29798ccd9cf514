package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/expense/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// EnvMonthFile passes the month file to extensions.
const EnvMonthFile = "RCD_MONTH_FILE"

// RunExtension attempts to find and execute an external rcd-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The resolved settings are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "rcd-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Debug("external command not found in PATH", zap.String("command", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvDataDir+"="+current.DataDir)
	cmd.Env = append(cmd.Env, EnvMonthFile+"="+current.path())
	cmd.Env = append(cmd.Env, EnvStyle+"="+current.Style)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(current.Verbose))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
