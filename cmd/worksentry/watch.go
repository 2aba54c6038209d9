package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worksentry/worksentry/internal/config"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Manage the set of folders the server watches and indexes",
	}
	cmd.AddCommand(newWatchAddCmd(), newWatchRemoveCmd(), newWatchListCmd())
	return cmd
}

func newWatchAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <folder>",
		Short: "Add a folder to the watched set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, cfg, err := loadUserConfigForEdit()
			if err != nil {
				return err
			}
			for _, f := range cfg.IndexedFolders {
				if f == args[0] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is already watched\n", args[0])
					return nil
				}
			}
			cfg.IndexedFolders = append(cfg.IndexedFolders, args[0])
			if err := config.SaveUserConfig(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", args[0])
			return nil
		},
	}
}

func newWatchRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <folder>",
		Short: "Remove a folder from the watched set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, cfg, err := loadUserConfigForEdit()
			if err != nil {
				return err
			}
			kept := cfg.IndexedFolders[:0]
			for _, f := range cfg.IndexedFolders {
				if f != args[0] {
					kept = append(kept, f)
				}
			}
			cfg.IndexedFolders = kept
			if err := config.SaveUserConfig(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}

func newWatchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the currently watched folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadUserConfigForEdit()
			if err != nil {
				return err
			}
			if len(cfg.IndexedFolders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no folders watched")
				return nil
			}
			for _, f := range cfg.IndexedFolders {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

func loadUserConfigForEdit() (string, config.UserConfig, error) {
	path, err := config.UserConfigPath()
	if err != nil {
		return "", config.UserConfig{}, fmt.Errorf("resolving user config path: %w", err)
	}
	cfg, err := config.LoadUserConfig(path)
	if err != nil {
		return "", config.UserConfig{}, fmt.Errorf("loading user config: %w", err)
	}
	return path, cfg, nil
}
