// Package config provides configuration for the tada binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultTheme     = "classic"
)

// Environment variable names.
const (
	EnvLogLevel  = "TADA_LOG_LEVEL"
	EnvLogFormat = "TADA_LOG_FORMAT"
	EnvLogFile   = "TADA_LOG_FILE"
	EnvTheme     = "TADA_THEME"
	EnvSeed      = "TADA_SEED"
)

// Flag names.
const (
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagLogFile   = "log-file"
	FlagTheme     = "theme"
	FlagSeed      = "seed"
)

// Config holds the application configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	LogFile   string // empty = stderr, or discarded while the TUI runs
	Theme     string
	SeedPath  string // empty = built-in seed list
}

// Validation errors.
var (
	ErrInvalidLogLevel  = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("log format must be one of: text, json")
	ErrInvalidTheme     = errors.New("theme must be one of: classic, neon, mono")
)

// Defaults returns the configuration before environment and flags apply.
func Defaults() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Theme:     DefaultTheme,
	}
}

// Load reads configuration from environment variables with defaults,
// then applies any flags that were set explicitly on fs. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := Defaults()
	cfg.loadFromEnv()

	if fs != nil {
		if err := cfg.loadFromFlags(fs); err != nil {
			return nil, fmt.Errorf("loading config from flags: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(FlagLogFormat, d.LogFormat, "log format (text, json)")
	fs.String(FlagLogFile, "", "write logs to this file")
	fs.String(FlagTheme, d.Theme, "color theme (classic, neon, mono)")
	fs.String(FlagSeed, "", "YAML or JSON file with the initial list")
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv(EnvLogFormat); val != "" {
		c.LogFormat = val
	}
	if val := os.Getenv(EnvLogFile); val != "" {
		c.LogFile = val
	}
	if val := os.Getenv(EnvTheme); val != "" {
		c.Theme = val
	}
	if val := os.Getenv(EnvSeed); val != "" {
		c.SeedPath = val
	}
}

// loadFromFlags overrides values only for flags the user changed, so the
// environment keeps priority over flag defaults.
func (c *Config) loadFromFlags(fs *pflag.FlagSet) error {
	targets := map[string]*string{
		FlagLogLevel:  &c.LogLevel,
		FlagLogFormat: &c.LogFormat,
		FlagLogFile:   &c.LogFile,
		FlagTheme:     &c.Theme,
		FlagSeed:      &c.SeedPath,
	}
	for name, dst := range targets {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		val, err := fs.GetString(name)
		if err != nil {
			return fmt.Errorf("parsing --%s: %w", name, err)
		}
		*dst = val
	}
	return nil
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return ErrInvalidLogLevel
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return ErrInvalidLogFormat
	}

	validThemes := map[string]bool{"classic": true, "neon": true, "mono": true}
	if !validThemes[c.Theme] {
		return ErrInvalidTheme
	}
	return nil
}
