package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print document count and on-disk index size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := openEngine(cmd)
			if err != nil {
				return err
			}
			defer engine.Close()

			stats, err := engine.Stats()
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "documents:  %d\n", stats.DocumentCount)
			fmt.Fprintf(cmd.OutOrStdout(), "size:       %d bytes\n", stats.SizeBytes)
			fmt.Fprintf(cmd.OutOrStdout(), "index path: %s\n", stats.IndexPath)
			return nil
		},
	}
}
