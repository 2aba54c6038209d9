package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index <path>...",
		Short: "Index one or more folders or files into the store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := openEngine(cmd)
			if err != nil {
				return err
			}
			defer engine.Close()

			for _, path := range args {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("stat %s: %w", path, err)
				}
				if info.IsDir() {
					if err := engine.IndexFolder(path); err != nil {
						return fmt.Errorf("indexing folder %s: %w", path, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "indexed folder %s\n", path)
					continue
				}
				indexed, err := engine.IndexFile(path)
				if err != nil {
					return fmt.Errorf("indexing file %s: %w", path, err)
				}
				if indexed {
					fmt.Fprintf(cmd.OutOrStdout(), "indexed file %s\n", path)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "skipped %s: not a regular file or unrecognized extension\n", path)
				}
			}
			return nil
		},
	}
}
