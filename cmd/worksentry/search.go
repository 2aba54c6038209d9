package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/worksentry/worksentry/internal/cli"
	"github.com/worksentry/worksentry/internal/models"
)

func newSearchCmd() *cobra.Command {
	var mode string
	var limit int
	var fuzzy, prefix bool
	var format string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a one-shot search against the index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := openEngine(cmd)
			if err != nil {
				return err
			}
			defer engine.Close()

			query := args[0]
			var results []models.SearchResult
			switch models.QueryMode(mode) {
			case models.ModeExact:
				results, err = engine.SearchExact(query, limit)
			case models.ModeEnhanced:
				results, err = engine.SearchEnhanced(query, limit, fuzzy, prefix)
			default:
				results, err = engine.SearchLauncher(query, limit)
			}
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			return cli.WriteResults(os.Stdout, results, cli.OutputFormat(format))
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(models.ModeLauncher), "query mode: exact, enhanced, or launcher")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", true, "enable fuzzy matching in enhanced mode")
	cmd.Flags().BoolVar(&prefix, "prefix", true, "enable prefix matching in enhanced mode")
	cmd.Flags().StringVar(&format, "format", string(cli.OutputText), "output format: text, compact, or json")
	return cmd
}
