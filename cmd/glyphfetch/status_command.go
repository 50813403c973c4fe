package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glyphfetch/internal/assets"
	"glyphfetch/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configured symbols, local asset state, and environment health",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			fetcher := assets.NewFetcher(cfg.AssetBaseURL(), cfg.Paths.AssetDir, nil, nil)
			runner := assets.NewRunner(fetcher, cfg.Assets.Symbols, nil)
			statuses, planErr := runner.Plan()

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "present"
				switch status.Outcome {
				case assets.OutcomePending:
					state = "missing"
				case assets.OutcomeFailed:
					state = "error"
				}
				rows = append(rows, []string{status.Symbol, status.Key.String(), status.Name, state})
			}
			fmt.Fprintln(out, renderTable([]string{"Symbol", "Key", "Name", "State"}, rows))

			summary := assets.Summarize(statuses)
			fmt.Fprintln(out, renderSummaryLine(summary, true))
			fmt.Fprintln(out)

			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, result := range preflight.RunAll(cmd.Context(), cfg) {
				kind := statusError
				if result.Passed {
					kind = statusOK
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			if planErr != nil {
				return planErr
			}
			return nil
		},
	}
}
