package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestLoadRuntimeConfigDefaultsWhenDefaultPathMissing(t *testing.T) {
	cfg, err := loadRuntimeConfig(defaultConfigPath)
	if err != nil {
		t.Fatalf("loadRuntimeConfig: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestLoadRuntimeConfigMissingExplicitPathErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := loadRuntimeConfig(filepath.Join(dir, "nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit config path")
	}
}

func TestLoadRuntimeConfigReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  host: \"127.0.0.1\"\n  port: 9000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadRuntimeConfig(path)
	if err != nil {
		t.Fatalf("loadRuntimeConfig: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
}

func TestOpenEngineUsesIndexPathOverride(t *testing.T) {
	dir := t.TempDir()
	cmd := &cobra.Command{}
	cmd.Flags().String("config", defaultConfigPath, "")
	cmd.Flags().String("index-path", filepath.Join(dir, "idx"), "")

	engine, _, err := openEngine(cmd)
	if err != nil {
		t.Fatalf("openEngine: %v", err)
	}
	defer engine.Close()

	if _, err := engine.DocumentCount(); err != nil {
		t.Errorf("DocumentCount: %v", err)
	}
}
