package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if cfg.ServerURL == "" || cfg.Keys.Submit == "" {
		t.Fatalf("defaults not populated: %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "server_url = \"https://docs.example.net\"\nlog_level = \"debug\"\n\n[keys]\nsubmit = \"ctrl+enter\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if cfg.ServerURL != "https://docs.example.net" {
		t.Fatalf("server_url = %q", cfg.ServerURL)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level = %q", cfg.LogLevel)
	}
	if cfg.Keys.Submit != "ctrl+enter" {
		t.Fatalf("keys.submit = %q", cfg.Keys.Submit)
	}
	// Empty paths fall back to defaults.
	if cfg.DBPath != DefaultDBName || cfg.LogPath != DefaultLogName {
		t.Fatalf("path fallbacks missing: db=%q log=%q", cfg.DBPath, cfg.LogPath)
	}
}
