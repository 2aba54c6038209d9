package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worksentry/worksentry/internal/config"
)

func newRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Clear the index and re-index every watched folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cfg, err := openEngine(cmd)
			if err != nil {
				return err
			}
			defer engine.Close()

			userConfigPath, err := config.UserConfigPath()
			if err != nil {
				return fmt.Errorf("resolving user config path: %w", err)
			}
			userCfg, err := config.LoadUserConfig(userConfigPath)
			if err != nil {
				return fmt.Errorf("loading user config: %w", err)
			}

			folders := append([]string(nil), cfg.Watch.Directories...)
			folders = append(folders, userCfg.IndexedFolders...)

			if err := engine.Rebuild(folders); err != nil {
				return fmt.Errorf("rebuild: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rebuilt index over %d folder(s)\n", len(folders))
			return nil
		},
	}
}
