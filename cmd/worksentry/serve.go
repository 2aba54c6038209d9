package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/worksentry/worksentry/internal/config"
	"github.com/worksentry/worksentry/internal/server"
	"github.com/worksentry/worksentry/pkg/utils"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the long-running server: watched folders plus the HTTP query interface",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	engine, cfg, err := openEngine(cmd)
	if err != nil {
		return err
	}
	defer engine.Close()

	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	userConfigPath, err := config.UserConfigPath()
	if err != nil {
		return fmt.Errorf("resolving user config path: %w", err)
	}
	userCfg, err := config.LoadUserConfig(userConfigPath)
	if err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}

	folders := append(append([]string(nil), cfg.Watch.Directories...), userCfg.IndexedFolders...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := engine.StartWatcher(ctx, folders)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	srv := server.New(engine, w, &cfg.Server, logger, userConfigPath)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
