package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadServiceConfigOverlay(t *testing.T) {
	path := writeConfig(t, `
transport = "http"
listen_addr = ":9090"
log_level = "debug"
`)
	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("loadServiceConfig: %v", err)
	}
	if cfg.Transport != "http" {
		t.Fatalf("transport = %q", cfg.Transport)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("listen_addr = %q", cfg.ListenAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level = %q", cfg.LogLevel)
	}
	if !cfg.LogConsole {
		t.Fatalf("log_console must keep its default when absent")
	}
}

func TestLoadServiceConfigKeepsDefaultsForEmptyFile(t *testing.T) {
	cfg, err := loadServiceConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("loadServiceConfig: %v", err)
	}
	if cfg != DefaultServiceConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadServiceConfigRejectsUnknownTransport(t *testing.T) {
	if _, err := loadServiceConfig(writeConfig(t, `transport = "carrier_pigeon"`)); err == nil {
		t.Fatalf("unknown transport must fail")
	}
}

func TestLoadServiceConfigMissingFile(t *testing.T) {
	if _, err := loadServiceConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("missing file must fail")
	}
}
