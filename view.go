package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/CatherineTower/air-ride-statistics/report"
)

func newViewCmd(root *rootOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "view <file>...",
		Short: "Browse tallies for every field in the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			records, results := s.readFiles(args)

			expr := s.settings.Filter
			if cmd.Flags().Changed("filter") {
				expr = filter
			}
			if records, err = filterRecords(s, expr, records); err != nil {
				return err
			}

			tallies := make([]*report.Tally, 0, len(report.Dimensions))
			for _, dim := range report.Dimensions {
				tallies = append(tallies, report.Count(records, s.vocabulary(), s.labels, dim))
			}

			screen, err := report.OpenScreen()
			if err != nil {
				return err
			}

			// The screen puts the terminal in raw mode until the view ends.
			restore := s.logger.SetRawMode(true)
			defer restore()

			ctx, cancel := context.WithCancel(cmd.Context())
			cleanupOsSignals := setupOsSignals(ctx, cancel, s.logger)
			defer cleanupOsSignals()

			if err := report.NewView(screen, tallies).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return openFailureError(results)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "jq expression selecting the records to count")
	return cmd
}
