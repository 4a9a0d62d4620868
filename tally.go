package main

import (
	"github.com/spf13/cobra"

	"github.com/CatherineTower/air-ride-statistics/report"
)

type tallyOptions struct {
	by     string
	filter string
	plain  bool
	width  int
}

func newTallyCmd(root *rootOptions) *cobra.Command {
	opts := &tallyOptions{}

	cmd := &cobra.Command{
		Use:   "tally <file>...",
		Short: "Count records per location, or per another field",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := report.ParseDimension(opts.by)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			s, err := newSession(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			records, results := s.readFiles(args)

			expr := s.settings.Filter
			if cmd.Flags().Changed("filter") {
				expr = opts.filter
			}
			records, err = filterRecords(s, expr, records)
			if err != nil {
				return err
			}

			tally := report.Count(records, s.vocabulary(), s.labels, dim)
			out := cmd.OutOrStdout()
			if opts.plain {
				err = report.WritePlain(out, tally)
			} else {
				width := opts.width
				if !cmd.Flags().Changed("width") {
					width = terminalWidth(out)
				}
				err = report.WriteTable(out, tally, width)
			}
			if err != nil {
				return err
			}

			return openFailureError(results)
		},
	}

	cmd.Flags().StringVar(&opts.by, "by", report.ByLocation.String(), "field to tally by: machine, color, location, event or parts")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "jq expression selecting the records to count")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, `print "<label>: <count>" lines instead of a table`)
	cmd.Flags().IntVar(&opts.width, "width", 0, "wrap the table to this many columns (default terminal width, 0 disables)")
	return cmd
}
