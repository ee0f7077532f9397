// Package config provides configuration management for clean-history.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields. Command-line flags take precedence
// over everything loaded here.
package config

import (
	"fmt"
	"strings"

	cherrors "github.com/chazuruo/clean-history/internal/errors"
	"github.com/chazuruo/clean-history/internal/shell"
)

// DefaultThreshold is the entry length at which continued entries are
// removed when nothing else is configured.
const DefaultThreshold = 2

// Report output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the top-level configuration struct for clean-history.
type Config struct {
	Clean  CleanConfig  `toml:"clean"`
	Backup BackupConfig `toml:"backup"`
}

// CleanConfig contains history cleaning settings.
type CleanConfig struct {
	// Threshold is the line count at which a continued entry is dropped.
	Threshold int `toml:"threshold"`

	// Shell forces a shell profile instead of detecting one.
	// Valid values: "", "zsh", "bash", "fish".
	Shell string `toml:"shell"`

	// Output is the report format.
	// Valid values: "text", "json", "yaml".
	Output string `toml:"output"`
}

// BackupConfig contains backup settings.
type BackupConfig struct {
	// Dir replaces the per-shell backup directory. Relative paths are
	// resolved against the home directory.
	Dir string `toml:"dir"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		Clean: CleanConfig{
			Threshold: DefaultThreshold,
			Shell:     "",
			Output:    OutputText,
		},
		Backup: BackupConfig{
			Dir: "",
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	if c.Clean.Threshold < 0 {
		return invalid("clean.threshold", "must be >= 0; got %d", c.Clean.Threshold)
	}

	if c.Clean.Shell != "" {
		if _, ok := shell.Lookup(c.Clean.Shell); !ok {
			return invalid("clean.shell", "must be one of: %s; got %q",
				strings.Join(shell.Names(), ", "), c.Clean.Shell)
		}
	}

	validOutputs := map[string]bool{
		OutputText: true,
		OutputJSON: true,
		OutputYAML: true,
	}
	if !validOutputs[c.Clean.Output] {
		return invalid("clean.output", "must be one of: text, json, yaml; got %q", c.Clean.Output)
	}

	return nil
}

func invalid(key, format string, args ...any) error {
	return &cherrors.ConfigError{
		Key: key,
		Err: fmt.Errorf("%w: %s", cherrors.ErrInvalid, fmt.Sprintf(format, args...)),
	}
}
