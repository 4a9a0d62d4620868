package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse files and report how many lines were rejected",
		Long: `check parses every file and prints a summary per file. It exits with
status 1 if any line was rejected or any file could not be read.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			_, results := s.readFiles(args)

			out := cmd.OutOrStdout()
			rejected := 0
			for _, res := range results {
				if res.err != nil {
					fmt.Fprintf(out, "%s: not read\n", res.name)
					continue
				}
				fmt.Fprintf(out, "%s: %d records, %d rejected, %d lines\n", res.name, res.stats.Records, res.stats.Rejected, res.stats.Lines)
				rejected += res.stats.Rejected
			}

			if err := openFailureError(results); err != nil {
				return err
			}
			if rejected > 0 {
				return &ExitError{Code: 1, Message: fmt.Sprintf("%d lines rejected", rejected)}
			}
			return nil
		},
	}
}
