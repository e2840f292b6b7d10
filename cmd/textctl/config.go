package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/danmuck/dispatch/internal/logging"
)

type fileConfig struct {
	DefaultCommand string `toml:"default_command"`
	LogLevel       string `toml:"log_level"`
	LogNoColor     bool   `toml:"log_no_color"`
}

// runtimeConfig holds textctl settings resolved from defaults and the
// optional config file. The Set flags distinguish "configured false"
// from "absent" for the logging overlay.
type runtimeConfig struct {
	DefaultCommand string
	LogLevel       zerolog.Level
	LogLevelSet    bool
	LogNoColor     bool
	LogNoColorSet  bool
}

func defaultRuntimeConfig() runtimeConfig {
	return runtimeConfig{DefaultCommand: "help"}
}

func loadRuntimeConfig(path string) (runtimeConfig, error) {
	cfg := defaultRuntimeConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runtimeConfig{}, fmt.Errorf("load textctl config: %w", err)
	}

	if meta.IsDefined("default_command") {
		cmd := strings.TrimSpace(raw.DefaultCommand)
		if cmd != "" {
			cfg.DefaultCommand = cmd
		}
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return runtimeConfig{}, fmt.Errorf("load textctl config: unknown log level %q", raw.LogLevel)
		}
		cfg.LogLevel = lvl
		cfg.LogLevelSet = true
	}

	if meta.IsDefined("log_no_color") {
		cfg.LogNoColor = raw.LogNoColor
		cfg.LogNoColorSet = true
	}

	return cfg, nil
}
