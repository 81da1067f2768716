package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tikzgo/tikzgo/pkg/compile"
)

// Config holds user configuration loaded from the TOML config file.
type Config struct {
	Compiler CompilerConfig `toml:"compiler"`
	Cache    CacheConfig    `toml:"cache"`
	Server   ServerConfig   `toml:"server"`
}

// CompilerConfig configures the LaTeX toolchain.
type CompilerConfig struct {
	// Quiet suppresses latexmk output.
	Quiet bool `toml:"quiet"`
	// DPI is the rasterization resolution for PNG previews.
	DPI int `toml:"dpi"`
}

// CacheConfig configures the compiled PDF cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
	// Redis is a Redis address (host:port). Empty means file-backed cache.
	Redis string `toml:"redis"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Addr string `toml:"addr"`
	// Store selects the gallery backend: "file" or "mongo".
	Store    string `toml:"store"`
	MongoURI string `toml:"mongo_uri"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Compiler: CompilerConfig{Quiet: true, DPI: compile.DefaultDPI},
		Cache:    CacheConfig{Enabled: true},
		Server:   ServerConfig{Addr: ":8080", Store: "file"},
	}
}

// ConfigPath returns the default config file location
// (~/.config/tikzgo/config.toml).
func ConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads the config file at path, falling back to the default
// location when path is empty. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Compiler.DPI <= 0 {
		cfg.Compiler.DPI = compile.DefaultDPI
	}
	return cfg, nil
}
