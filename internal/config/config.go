// Package config provides configuration management for bbc.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

// Config holds the bbc configuration. The limits are always written since
// 0 disables a limit and must survive a reload.
type Config struct {
	DefaultFormat string `yaml:"default_format,omitempty"`
	ColorFormat   string `yaml:"color_format,omitempty"`
	MaxDepth      int    `yaml:"max_depth"`
	MaxInputBytes int    `yaml:"max_input_bytes"`
	Listen        string `yaml:"listen,omitempty"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	opts := bbcode.DefaultOptions()
	return &Config{
		DefaultFormat: string(bbcode.FormatHTML),
		ColorFormat:   string(bbcode.ColorFormatHex),
		MaxDepth:      opts.MaxDepth,
		MaxInputBytes: opts.MaxInputBytes,
		Listen:        "127.0.0.1:8080",
	}
}

// RenderFormats returns the accepted render formats.
func RenderFormats() []string {
	var names []string
	for _, f := range bbcode.Formats() {
		names = append(names, string(f))
	}
	return names
}

// ValidateRenderFormat checks that format is one of RenderFormats.
func ValidateRenderFormat(format string) error {
	for _, f := range bbcode.Formats() {
		if string(f) == format {
			return nil
		}
	}
	return fmt.Errorf("invalid render format %q: must be one of %v", format, RenderFormats())
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.DefaultFormat != "" {
		if err := ValidateRenderFormat(c.DefaultFormat); err != nil {
			return err
		}
	}
	if err := bbcode.ValidateColorFormat(c.ColorFormat); err != nil {
		return err
	}
	if c.MaxDepth < 0 {
		return errors.New("max_depth must not be negative")
	}
	if c.MaxInputBytes < 0 {
		return errors.New("max_input_bytes must not be negative")
	}
	return nil
}

// ParseOptions returns the parser limits described by the config.
func (c *Config) ParseOptions() bbcode.Options {
	return bbcode.Options{
		MaxDepth:      c.MaxDepth,
		MaxInputBytes: c.MaxInputBytes,
	}
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Numeric variables that do not parse are reported as an error.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("BBC_FORMAT"); v != "" {
		c.DefaultFormat = v
	}
	if v := os.Getenv("BBC_COLOR_FORMAT"); v != "" {
		c.ColorFormat = v
	}
	if v := os.Getenv("BBC_LISTEN"); v != "" {
		c.Listen = v
	}
	if err := envInt("BBC_MAX_DEPTH", &c.MaxDepth); err != nil {
		return err
	}
	return envInt("BBC_MAX_INPUT_BYTES", &c.MaxInputBytes)
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = n
	return nil
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bbc", "config.yml")
	}

	// Fall back to ~/.config/bbc/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".bbc", "config.yml")
	}

	return filepath.Join(home, ".config", "bbc", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path. Fields missing from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file is not an error; a malformed one is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
