// Package config holds the two configuration surfaces: the user-facing
// JSON preference file (indexed folders, hotkey, browser search toggle)
// and the YAML runtime/server config adapted from the teacher's own
// config layer.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Hotkey is the global-hotkey binding the UI shell registers.
type Hotkey struct {
	Modifiers []string `json:"modifiers"`
	Key       string   `json:"key"`
}

// UserConfig is the pretty-printed JSON preference file at
// <user-config-dir>/worksentry/config.json.
type UserConfig struct {
	IndexedFolders      []string `json:"indexed_folders"`
	Hotkey              Hotkey   `json:"hotkey"`
	EnableBrowserSearch bool     `json:"enable_browser_search"`
}

// DefaultUserConfig is returned when no config file exists yet.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		IndexedFolders:      nil,
		Hotkey:              Hotkey{Modifiers: []string{"Alt"}, Key: "Space"},
		EnableBrowserSearch: false,
	}
}

// UserConfigPath returns <user-config-dir>/worksentry/config.json.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(dir, "worksentry", "config.json"), nil
}

// LoadUserConfig reads the preference file. File absence yields all
// defaults; missing individual fields within an existing file also take
// defaults, since UserConfig's zero values match DefaultUserConfig's
// zero-ish fields except Hotkey, which is reapplied when empty.
func LoadUserConfig(path string) (UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultUserConfig(), nil
		}
		return UserConfig{}, fmt.Errorf("reading user config: %w", err)
	}
	cfg := DefaultUserConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return UserConfig{}, fmt.Errorf("parsing user config: %w", err)
	}
	if cfg.Hotkey.Key == "" {
		cfg.Hotkey = DefaultUserConfig().Hotkey
	}
	return cfg, nil
}

// SaveUserConfig writes cfg as pretty-printed JSON atomically: marshal to
// a uuid-suffixed temp file in the same directory, then rename over the
// target, so a reader never observes a partially written file.
func SaveUserConfig(path string, cfg UserConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling user config: %w", err)
	}
	tmpPath := filepath.Join(dir, fmt.Sprintf(".config-%s.json.tmp", uuid.NewString()))
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp config file into place: %w", err)
	}
	return nil
}
