// Package config handles scadgen configuration loading.
package config

import (
	"fmt"
	"time"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all command settings.
type Config struct {
	// Output is the .scad file to write; empty means stdout.
	Output string `yaml:"output"`

	// Detail is written as $fn when positive and the script sets none.
	Detail int `yaml:"detail"`

	Color   string        `yaml:"color"`
	Timeout time.Duration `yaml:"timeout"`

	// Defines maps global names to expressions evaluated before the
	// script runs.
	Defines map[string]string `yaml:"defines"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output:  "",
		Detail:  0,
		Color:   ColorAuto,
		Timeout: 5 * time.Second,
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: must be auto, always or never, got %q", c.Color)
	}
	if c.Detail < 0 {
		return fmt.Errorf("detail: must not be negative, got %d", c.Detail)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout: must be positive, got %s", c.Timeout)
	}
	for name := range c.Defines {
		if name == "" {
			return fmt.Errorf("defines: empty name")
		}
	}
	return nil
}
