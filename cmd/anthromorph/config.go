package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ServiceConfig carries the serve-time settings. Taxonomy source selection
// stays with the ANTHROMORPH_* environment factory so the same binary can
// run unchanged across deployments; the config file only shapes transport
// and logging.
type ServiceConfig struct {
	Transport  string
	ListenAddr string
	LogLevel   string
	LogConsole bool
}

func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Transport:  "stdio",
		ListenAddr: ":8080",
		LogLevel:   "info",
		LogConsole: true,
	}
}

// anthromorph config.toml key mapping to runtime settings.
type fileConfig struct {
	Transport  string `toml:"transport"`
	ListenAddr string `toml:"listen_addr"`
	LogLevel   string `toml:"log_level"`
	LogConsole bool   `toml:"log_console"`
}

// loadServiceConfig overlays a TOML file onto the defaults. Keys absent
// from the file keep their default values.
func loadServiceConfig(path string) (ServiceConfig, error) {
	cfg := DefaultServiceConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return ServiceConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("transport") {
		cfg.Transport = strings.TrimSpace(raw.Transport)
	}
	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_console") {
		cfg.LogConsole = raw.LogConsole
	}

	switch cfg.Transport {
	case "stdio", "http":
	default:
		return ServiceConfig{}, fmt.Errorf("load config: unsupported transport %q (expected stdio or http)", cfg.Transport)
	}

	return cfg, nil
}
