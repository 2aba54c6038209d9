package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/worksentry/worksentry/internal/config"
	"github.com/worksentry/worksentry/internal/models"
	"github.com/worksentry/worksentry/internal/reveal"
)

type searchRequest struct {
	Query  string          `json:"query"`
	Mode   models.QueryMode `json:"mode"`
	Limit  int             `json:"limit"`
	Fuzzy  bool            `json:"fuzzy"`
	Prefix bool            `json:"prefix"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	mode := string(req.Mode)
	if mode == "" {
		mode = string(models.ModeLauncher)
	}
	defer observeSearch(mode, time.Now())

	var (
		results []models.SearchResult
		err     error
	)
	switch req.Mode {
	case models.ModeExact:
		results, err = s.engine.SearchExact(req.Query, limit)
	case models.ModeEnhanced:
		results, err = s.engine.SearchEnhanced(req.Query, limit, req.Fuzzy, req.Prefix)
	default:
		results, err = s.engine.SearchLauncher(req.Query, limit)
	}
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, results)
}

type folderRequest struct {
	Path string `json:"path"`
}

func (s *Server) handleAddFolder(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		s.respondError(w, http.StatusBadRequest, "path is required")
		return
	}
	abs, err := filepath.Abs(req.Path)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid path")
		return
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		s.respondError(w, http.StatusNotFound, "directory not found")
		return
	}
	if s.watcher != nil {
		if err := s.watcher.AddDirectory(abs, true); err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	if err := s.engine.IndexFolder(abs); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.recordIndexOperation("add_folder")
	s.persistIndexedFolders()
	s.respondJSON(w, http.StatusCreated, map[string]string{"path": abs, "status": "added"})
}

func (s *Server) handleRemoveFolder(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		var req folderRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		path = req.Path
	}
	if path == "" {
		s.respondError(w, http.StatusBadRequest, "path is required")
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid path")
		return
	}
	if s.watcher != nil {
		if err := s.watcher.RemoveDirectory(abs); err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	if err := s.engine.DeleteFolder(abs); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.recordIndexOperation("remove_folder")
	s.persistIndexedFolders()
	s.respondJSON(w, http.StatusOK, map[string]string{"path": abs, "status": "removed"})
}

func (s *Server) handleListFolders(w http.ResponseWriter, r *http.Request) {
	var dirs []string
	if s.watcher != nil {
		dirs = s.watcher.Directories()
	}
	s.respondJSON(w, http.StatusOK, dirs)
}

func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	var folders []string
	if s.watcher != nil {
		folders = s.watcher.Directories()
	}
	if err := s.engine.Rebuild(folders); err != nil {
		s.logger.Error("rebuild failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.recordIndexOperation("rebuild")
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "rebuilt"})
}

func (s *Server) handleDocumentCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.engine.DocumentCount()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]uint64{"document_count": count})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.engine.Stats()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleOpenFile(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		s.respondError(w, http.StatusBadRequest, "path is required")
		return
	}
	if err := reveal.File(req.Path); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "opened"})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	if s.userConfigPath == "" {
		s.respondError(w, http.StatusNotImplemented, "user config not enabled")
		return
	}
	s.userConfigMu.Lock()
	cfg, err := config.LoadUserConfig(s.userConfigPath)
	s.userConfigMu.Unlock()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleSetHotkey(w http.ResponseWriter, r *http.Request) {
	if s.userConfigPath == "" {
		s.respondError(w, http.StatusNotImplemented, "user config not enabled")
		return
	}
	var hotkey config.Hotkey
	if err := json.NewDecoder(r.Body).Decode(&hotkey); err != nil || hotkey.Key == "" {
		s.respondError(w, http.StatusBadRequest, "key is required")
		return
	}
	s.userConfigMu.Lock()
	defer s.userConfigMu.Unlock()
	cfg, err := config.LoadUserConfig(s.userConfigPath)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	cfg.Hotkey = hotkey
	if err := config.SaveUserConfig(s.userConfigPath, cfg); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// persistIndexedFolders syncs the watcher's current directory list into
// the user config file, best-effort; a failure here does not fail the
// triggering request.
func (s *Server) persistIndexedFolders() {
	if s.userConfigPath == "" || s.watcher == nil {
		return
	}
	s.userConfigMu.Lock()
	defer s.userConfigMu.Unlock()
	cfg, err := config.LoadUserConfig(s.userConfigPath)
	if err != nil {
		s.logger.Warn("failed to load user config for persisting folders", zap.Error(err))
		return
	}
	cfg.IndexedFolders = s.watcher.Directories()
	if err := config.SaveUserConfig(s.userConfigPath, cfg); err != nil {
		s.logger.Warn("failed to persist indexed folders", zap.Error(err))
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
