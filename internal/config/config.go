// Package config loads ui-bridge-mcp settings from a YAML file with
// environment variable overrides for the runner address.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/qontinui/ui-bridge-mcp/internal/bridge"
)

// Config holds runner connection and server settings.
type Config struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	Timeout          time.Duration `yaml:"timeout"`
	DiscoveryTimeout time.Duration `yaml:"discovery_timeout"`
	LogLevel         string        `yaml:"log_level"`
	LogJSON          bool          `yaml:"log_json"`
}

// Default returns the built-in configuration: runner on localhost (or the
// WSL2 Windows host) at port 9876.
func Default() Config {
	return Config{
		Port:             bridge.DefaultPort,
		Timeout:          bridge.DefaultTimeout,
		DiscoveryTimeout: bridge.DiscoveryTimeout,
		LogLevel:         "info",
	}
}

// DefaultPath returns the standard config file location, or "" if the user
// config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ui-bridge-mcp.yaml")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Environment variables QONTINUI_RUNNER_HOST and
// QONTINUI_RUNNER_PORT override the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No file is fine; env and defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if env := os.Getenv("QONTINUI_RUNNER_HOST"); env != "" {
		cfg.Host = env
	} else if cfg.Host == "" {
		cfg.Host = bridge.DetectHost()
	}
	cfg.Port = bridge.DetectPort(cfg.Port)

	if cfg.Timeout <= 0 {
		cfg.Timeout = bridge.DefaultTimeout
	}
	if cfg.DiscoveryTimeout <= 0 {
		cfg.DiscoveryTimeout = bridge.DiscoveryTimeout
	}
	return cfg, nil
}
