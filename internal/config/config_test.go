package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaultsAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worksentry.yaml")
	body := "watch:\n  directories:\n    - ./docs\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults not applied: %+v", cfg.Server)
	}
	if cfg.Storage.IndexPath == "" {
		t.Error("expected a default index path")
	}
	want := filepath.Join(dir, "docs")
	if len(cfg.Watch.Directories) != 1 || cfg.Watch.Directories[0] != want {
		t.Errorf("Watch.Directories = %v, want [%s]", cfg.Watch.Directories, want)
	}
	if !cfg.Watch.RecursiveOrDefault() {
		t.Error("expected recursive default true when directories are configured")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worksentry.yaml")
	cfg := &Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: 9090},
		Storage: StorageConfig{IndexPath: filepath.Join(dir, "index")},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Server.Host != "0.0.0.0" || loaded.Server.Port != 9090 {
		t.Errorf("loaded server config = %+v", loaded.Server)
	}
}

func TestUserConfigDefaultsOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	cfg, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("LoadUserConfig: %v", err)
	}
	want := DefaultUserConfig()
	if cfg.Hotkey != want.Hotkey || cfg.EnableBrowserSearch != want.EnableBrowserSearch {
		t.Errorf("LoadUserConfig() = %+v, want defaults %+v", cfg, want)
	}
}

func TestUserConfigSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	cfg := UserConfig{
		IndexedFolders:      []string{"/home/alice/docs", "/home/alice/code"},
		Hotkey:              Hotkey{Modifiers: []string{"Control", "Shift"}, Key: "K"},
		EnableBrowserSearch: true,
	}
	if err := SaveUserConfig(path, cfg); err != nil {
		t.Fatalf("SaveUserConfig: %v", err)
	}
	loaded, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("LoadUserConfig: %v", err)
	}
	if len(loaded.IndexedFolders) != 2 || loaded.IndexedFolders[0] != "/home/alice/docs" {
		t.Errorf("IndexedFolders = %v", loaded.IndexedFolders)
	}
	if loaded.Hotkey.Key != "K" || len(loaded.Hotkey.Modifiers) != 2 {
		t.Errorf("Hotkey = %+v", loaded.Hotkey)
	}
	if !loaded.EnableBrowserSearch {
		t.Error("EnableBrowserSearch should round-trip true")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "config.json" {
			t.Errorf("leftover temp file after save: %s", e.Name())
		}
	}
}

func TestUserConfigMissingHotkeyFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"indexed_folders":["/a"]}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("LoadUserConfig: %v", err)
	}
	if cfg.Hotkey.Key != "Space" {
		t.Errorf("Hotkey = %+v, want default Space binding", cfg.Hotkey)
	}
}
