package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadRuntimeConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "textctl.toml")
	content := `
default_command = "escape"
log_level = "debug"
log_no_color = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadRuntimeConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DefaultCommand != "escape" {
		t.Fatalf("unexpected default command: %q", cfg.DefaultCommand)
	}
	if !cfg.LogLevelSet || cfg.LogLevel != zerolog.DebugLevel {
		t.Fatalf("unexpected log level: set=%v level=%v", cfg.LogLevelSet, cfg.LogLevel)
	}
	if !cfg.LogNoColorSet || !cfg.LogNoColor {
		t.Fatalf("unexpected no-color: set=%v value=%v", cfg.LogNoColorSet, cfg.LogNoColor)
	}
}

func TestLoadRuntimeConfigDefaultsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "textctl.toml")
	if err := os.WriteFile(path, []byte("log_no_color = false\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadRuntimeConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DefaultCommand != "help" {
		t.Fatalf("unexpected default command: %q", cfg.DefaultCommand)
	}
	if cfg.LogLevelSet {
		t.Fatalf("log level should be unset, got %v", cfg.LogLevel)
	}
	if !cfg.LogNoColorSet || cfg.LogNoColor {
		t.Fatalf("configured false must still mark the field set: set=%v value=%v", cfg.LogNoColorSet, cfg.LogNoColor)
	}
}

func TestLoadRuntimeConfigRejectsUnknownLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "textctl.toml")
	if err := os.WriteFile(path, []byte("log_level = \"chatty\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadRuntimeConfig(path); err == nil {
		t.Fatal("expected unknown log level to fail")
	}
}

func TestLoadRuntimeConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	if _, err := loadRuntimeConfig(path); err == nil {
		t.Fatal("expected missing config file to fail")
	}
}
