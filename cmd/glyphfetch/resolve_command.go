package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glyphfetch/internal/codepoint"
)

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "resolve SYMBOL...",
		Short:       "Print the codepoint key for one or more symbols",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, symbol := range args {
				key, err := codepoint.Resolve(symbol)
				if err != nil {
					return err
				}
				name := codepoint.DisplayName(symbol)
				if name != "" {
					fmt.Fprintf(out, "%s\t%s\t%s\n", symbol, key, name)
				} else {
					fmt.Fprintf(out, "%s\t%s\n", symbol, key)
				}
			}
			return nil
		},
	}
}
