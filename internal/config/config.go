// Package config loads the keyhelp configuration file.
//
// The file is YAML (config.yaml) or TOML (config.toml), chosen by extension.
// A missing file is not an error: defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"sigs.k8s.io/yaml"

	"github.com/renato0307/keyhelp/internal/diagram"
	"github.com/renato0307/keyhelp/internal/logging"
	"github.com/renato0307/keyhelp/internal/messages"
	"github.com/renato0307/keyhelp/internal/ui"
)

// EnvConfig overrides the config file location.
const EnvConfig = "KEYHELP_CONFIG"

// DefaultMaxResults caps the result list.
const DefaultMaxResults = 50

// Config represents the application configuration.
type Config struct {
	Theme      string    `json:"theme" toml:"theme"`
	Mode       string    `json:"mode" toml:"mode"`       // animation or legend
	Catalog    string    `json:"catalog" toml:"catalog"` // empty = embedded LazyVim catalog
	MaxResults int       `json:"max_results" toml:"max_results"`
	Log        LogConfig `json:"log" toml:"log"`
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	File       string `json:"file" toml:"file"`
	Level      string `json:"level" toml:"level"`
	Format     string `json:"format" toml:"format"`
	MaxSizeMB  int    `json:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" toml:"max_backups"`
}

// Default returns a configuration with defaults.
func Default() *Config {
	return &Config{
		Theme:      "charm",
		Mode:       diagram.ModeAnimation.String(),
		MaxResults: DefaultMaxResults,
		Log: LogConfig{
			Level:      "info",
			Format:     string(logging.FormatText),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads the config at path, or at the default location when path is
// empty.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = FilePath(); err != nil {
			return nil, err
		}
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, messages.WrapError(err, "reading config %s", path)
	}

	if err := cfg.decode(path, data); err != nil {
		return nil, messages.WrapError(err, "decoding config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, messages.WrapError(err, "config %s", path)
	}
	return cfg, nil
}

func (cfg *Config) decode(path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Validate rejects settings the app cannot honour.
func (cfg *Config) Validate() error {
	if _, err := diagram.ParseMode(cfg.Mode); err != nil {
		return err
	}
	if !knownTheme(cfg.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(ui.AvailableThemes(), ", "))
	}
	if cfg.MaxResults < 0 {
		return fmt.Errorf("max_results must not be negative, got %d", cfg.MaxResults)
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(cfg.Log.Format); err != nil {
		return err
	}
	return nil
}

// DiagramMode returns the configured start mode.
func (cfg *Config) DiagramMode() diagram.Mode {
	m, _ := diagram.ParseMode(cfg.Mode)
	return m
}

// Limit returns MaxResults, with zero meaning the default.
func (cfg *Config) Limit() int {
	if cfg.MaxResults == 0 {
		return DefaultMaxResults
	}
	return cfg.MaxResults
}

// LoggingConfig converts the log section for logging.Init.
func (cfg *Config) LoggingConfig() logging.Config {
	level, _ := logging.ParseLevel(cfg.Log.Level)
	format, _ := logging.ParseFormat(cfg.Log.Format)
	return logging.Config{
		FilePath:   cfg.Log.File,
		Level:      level,
		Format:     format,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}
}

func knownTheme(name string) bool {
	if name == "" {
		return true
	}
	for _, t := range ui.AvailableThemes() {
		if t == name {
			return true
		}
	}
	return false
}

// FilePath returns $KEYHELP_CONFIG, or config.yaml in Dir.
func FilePath() (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Dir returns the XDG configuration directory for keyhelp.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "keyhelp"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "keyhelp"), nil
	}
	return filepath.Join(home, ".config", "keyhelp"), nil
}
