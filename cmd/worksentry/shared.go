package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/worksentry/worksentry/internal/config"
	"github.com/worksentry/worksentry/internal/core"
	"github.com/worksentry/worksentry/pkg/utils"
)

const defaultConfigPath = "/usr/local/etc/worksentry/config.yaml"

// loadRuntimeConfig loads the YAML runtime config, falling back to
// in-process defaults (no file) when the default path doesn't exist —
// convenient for local development without a system-wide install.
func loadRuntimeConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && path == defaultConfigPath {
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config file not found at %s: %w", path, err)
	}
	return config.Load(path)
}

// openEngine resolves the index path from flags/config and opens the
// core Engine against it.
func openEngine(cmd *cobra.Command) (*core.Engine, *config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	indexPathOverride, _ := cmd.Flags().GetString("index-path")

	cfg, err := loadRuntimeConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	indexPath := cfg.Storage.IndexPath
	if indexPathOverride != "" {
		indexPath = indexPathOverride
	}
	absIndexPath, err := filepath.Abs(indexPath)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving index path: %w", err)
	}

	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	engine, err := core.Init(absIndexPath, core.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return engine, cfg, nil
}
