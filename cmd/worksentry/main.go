// Command worksentry is the CLI entry point for the indexing and
// retrieval subsystem: a long-running server mode plus one-shot
// search/index/watch/rebuild/stats operations against the same Index
// Store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "worksentry",
		Short: "A desktop personal search engine's indexing and retrieval subsystem",
	}
	root.PersistentFlags().String("config", defaultConfigPath, "runtime config file path")
	root.PersistentFlags().String("index-path", "", "index directory, overrides the config file's storage.index_path")

	root.AddCommand(
		newServeCmd(),
		newSearchCmd(),
		newIndexCmd(),
		newWatchCmd(),
		newRebuildCmd(),
		newStatsCmd(),
		newTUICmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "worksentry version %s\n", version)
			return nil
		},
	}
}
