package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qontinui/ui-bridge-mcp/internal/bridge"
)

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("QONTINUI_RUNNER_HOST", "")
	t.Setenv("QONTINUI_RUNNER_PORT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != bridge.DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, bridge.DefaultPort)
	}
	if cfg.Host == "" {
		t.Error("Host should be auto-detected, got empty")
	}
	if cfg.Timeout != bridge.DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, bridge.DefaultTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("QONTINUI_RUNNER_HOST", "")
	t.Setenv("QONTINUI_RUNNER_PORT", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "host: runner.local\nport: 4000\ntimeout: 5s\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "runner.local" {
		t.Errorf("Host = %q, want runner.local", cfg.Host)
	}
	if cfg.Port != 4000 {
		t.Errorf("Port = %d, want 4000", cfg.Port)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("QONTINUI_RUNNER_HOST", "10.1.2.3")
	t.Setenv("QONTINUI_RUNNER_PORT", "4444")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("host: runner.local\nport: 4000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "10.1.2.3" {
		t.Errorf("Host = %q, want env override", cfg.Host)
	}
	if cfg.Port != 4444 {
		t.Errorf("Port = %d, want env override", cfg.Port)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("host: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
