package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CatherineTower/air-ride-statistics/log"
)

// ExitError ends the process with a specific exit code. An empty Message
// means everything worth saying was already printed.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type rootOptions struct {
	configPath string
	quiet      bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				log.Println(exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		log.Fatalln("Error:", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "airstats",
		Short: "Tally collected box records from data files",
		Long: `airstats reads data files of collected box records, one per line:

  <machine> | <color> | <location> | <event> | <yes/no>

Blank lines and everything after a '#' are ignored. Malformed lines are
reported on stderr with their file and line number, then skipped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default $AIRSTATS_CONFIG or ./airstats.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not report malformed lines")

	cmd.AddCommand(
		newTallyCmd(opts),
		newCheckCmd(opts),
		newViewCmd(opts),
		newVersionCmd(),
	)
	return cmd
}
