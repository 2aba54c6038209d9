// Package server exposes the Query interface (§6) over HTTP: search,
// folder management, rebuild, stats, reveal, and config operations,
// plus a Prometheus /metrics endpoint.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/worksentry/worksentry/internal/config"
	"github.com/worksentry/worksentry/internal/core"
	"github.com/worksentry/worksentry/internal/watcher"
)

// Server is the HTTP server exposing the core Engine's operations.
type Server struct {
	engine  *core.Engine
	watcher *watcher.Watcher
	cfg     *config.ServerConfig
	logger  *zap.Logger
	http    *http.Server

	userConfigPath string
	userConfigMu   sync.Mutex
}

// New creates a server over engine. watcher is optional; when nil, folder
// add/remove still index or delete the folder's documents but add or
// remove no watch, and the folder list is empty. userConfigPath, if
// non-empty, enables get_config/set_hotkey persistence against the JSON
// preference file.
func New(engine *core.Engine, w *watcher.Watcher, cfg *config.ServerConfig, logger *zap.Logger, userConfigPath string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: engine, watcher: w, cfg: cfg, logger: logger, userConfigPath: userConfigPath}
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Post("/folders", s.handleAddFolder)
		r.Delete("/folders", s.handleRemoveFolder)
		r.Get("/folders", s.handleListFolders)
		r.Post("/rebuild", s.handleRebuild)
		r.Get("/document-count", s.handleDocumentCount)
		r.Get("/stats", s.handleStats)
		r.Post("/open-file", s.handleOpenFile)
		r.Get("/config", s.handleGetConfig)
		r.Post("/config/hotkey", s.handleSetHotkey)
	})
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.http = &http.Server{Addr: addr, Handler: s.router()}
	s.logger.Info("starting server", zap.String("addr", addr))
	return s.http.ListenAndServe()
}

// Stop gracefully shuts down the HTTP server and, if present, the watcher.
func (s *Server) Stop(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
