package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"rkshell/internal/logging"
	"rkshell/internal/theme"
)

const appName = "rkshell"

type Config struct {
	Theme       string `toml:"theme"`
	Color       string `toml:"color"`
	Prompt      string `toml:"prompt"`
	Interactive string `toml:"interactive"`
	HelpFile    string `toml:"help_file"`
	HistoryFile string `toml:"history_file"`
	MaxHistory  int    `toml:"max_history"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
}

var defaultConfig = Config{
	Theme:       theme.Random,
	Color:       string(theme.ColorAuto),
	Prompt:      "rkshell> ",
	Interactive: "auto",
	MaxHistory:  1000,
	LogLevel:    "info",
}

// Default returns the built-in configuration with file paths under dir.
func Default(dir string) *Config {
	cfg := defaultConfig
	cfg.HelpFile = filepath.Join(dir, "commands.json")
	cfg.HistoryFile = filepath.Join(dir, "history")
	cfg.LogFile = filepath.Join(dir, "rkshell.log")
	return &cfg
}

// Load reads the config file at path over the defaults. An empty path uses
// the standard location. A missing file is created with the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		configDir, err := Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(configDir, "config.toml")
	}

	config := Default(filepath.Dir(path))

	if err := config.loadFromFile(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if err := config.Save(path); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(c)
}

// Validate rejects values the shell cannot start with.
func (c *Config) Validate() error {
	if c.Theme != "" && c.Theme != theme.Random {
		if _, ok := theme.Lookup(c.Theme); !ok {
			return fmt.Errorf("unknown theme %q (want one of %v or %q)", c.Theme, theme.Names(), theme.Random)
		}
	}
	if _, err := theme.ParseColorMode(c.Color); err != nil {
		return err
	}
	if _, err := ParseMode(c.Interactive); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel, false); err != nil {
		return err
	}
	if c.MaxHistory < 0 {
		return fmt.Errorf("max_history must not be negative, got %d", c.MaxHistory)
	}
	return nil
}

// Mode is a tri-state switch: auto, always or never.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways, ModeNever:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Dir returns the directory holding config.toml.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", appName), nil
}
