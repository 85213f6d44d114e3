package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Root      string // directory relative source paths are resolved against
	RulesPath string // .hcl file, .toml file or directory of .hcl files; empty means built-in rules

	LogFormat string
	LogLevel  string
	Plain     bool // ASCII markers instead of emoji in the report
}

// NewConfig validates cfg, applies defaults and makes Root absolute.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", cfg.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root %s: %w", cfg.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", cfg.Root)
	}
	cfg.Root = root

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}
