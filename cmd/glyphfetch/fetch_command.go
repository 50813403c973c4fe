package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"glyphfetch/internal/assets"
	"glyphfetch/internal/logging"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download missing assets for the configured symbols",
		Long: "Fetch resolves every configured symbol to its codepoint key and downloads\n" +
			"the corresponding PNG unless it is already present. Runs are idempotent:\n" +
			"re-running after a failure only transfers what is still missing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			client := &http.Client{Timeout: cfg.RequestTimeoutDuration()}
			fetcher := assets.NewFetcher(cfg.AssetBaseURL(), cfg.Paths.AssetDir, client, logger)
			runner := assets.NewRunner(fetcher, cfg.Assets.Symbols, logger)

			var statuses []assets.ItemStatus
			var runErr error
			if dryRun {
				statuses, runErr = runner.Plan()
			} else {
				statuses, runErr = runner.Run(cmd.Context())
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, status := range statuses {
				fmt.Fprintln(out, renderItemLine(status, colorize))
			}
			fmt.Fprintln(out, renderSummaryLine(assets.Summarize(statuses), dryRun))

			if runErr != nil {
				return fmt.Errorf("fetch run aborted: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve keys and report presence without downloading")
	return cmd
}
