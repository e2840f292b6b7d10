package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danmuck/dispatch"
	"github.com/danmuck/dispatch/internal/commands/dumpme"
	"github.com/danmuck/dispatch/internal/commands/escape"
	"github.com/danmuck/dispatch/internal/logging"
)

const identity = "textctl"

// EnvConfigPath points textctl at an explicit config file.
const EnvConfigPath = "TEXTCTL_CONFIG"

func main() {
	_ = godotenv.Load()

	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "textctl: %v\n", err)
		os.Exit(1)
	}
	configureLogging(cfg)

	reg := dispatch.NewRegistry()
	if err := registerCommands(reg); err != nil {
		fmt.Fprintf(os.Stderr, "textctl: %v\n", err)
		os.Exit(1)
	}

	d := dispatch.New(dispatch.Config{
		Identity:       identity,
		DefaultCommand: cfg.DefaultCommand,
		Loader:         reg,
	})
	if err := d.Run("", os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "textctl: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig loads the TOML config named by TEXTCTL_CONFIG, falling
// back to ./textctl.toml when present.
func resolveConfig() (runtimeConfig, error) {
	path := strings.TrimSpace(os.Getenv(EnvConfigPath))
	if path != "" {
		return loadRuntimeConfig(path)
	}
	if _, err := os.Stat("textctl.toml"); err == nil {
		return loadRuntimeConfig("textctl.toml")
	}
	return defaultRuntimeConfig(), nil
}

func configureLogging(cfg runtimeConfig) {
	lc := logging.RuntimeConfig(identity)
	if cfg.LogLevelSet {
		lc.Level = cfg.LogLevel
	}
	if cfg.LogNoColorSet {
		lc.NoColor = cfg.LogNoColor
	}
	logging.Apply(lc.WithEnvOverrides())
}

func registerCommands(reg *dispatch.Registry) error {
	if err := dumpme.Register(reg, identity); err != nil {
		return err
	}
	return escape.Register(reg, identity)
}
