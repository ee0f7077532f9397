package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	cherrors "github.com/chazuruo/clean-history/internal/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CLEANHISTORY_"

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. $XDG_CONFIG_HOME/clean-history/config.toml
// 2. ~/.config/clean-history/config.toml
func DetectConfigPath() string {
	var candidates []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "clean-history", "config.toml"))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(homeDir, ".config", "clean-history", "config.toml"))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &cherrors.ConfigError{Path: path, Err: fmt.Errorf("%w: config file", cherrors.ErrNotFound)}
		}
		return nil, &cherrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", cherrors.ErrIO, err)}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &cherrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", cherrors.ErrInvalid, err)}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		if ce, ok := cherrors.AsConfigError(err); ok {
			ce.Path = path
		}
		return nil, err
	}

	return cfg, nil
}

// LoadWithDefaults loads the config at path, or the detected config file
// when path is empty. Without a config file the defaults are used. Env
// overrides apply in both cases.
func LoadWithDefaults(path string) (*Config, error) {
	if path == "" {
		path = DetectConfigPath()
	}
	if path != "" {
		return Load(path)
	}

	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: CLEANHISTORY_<SECTION>_<FIELD>
//
// Examples:
// - CLEANHISTORY_CLEAN_THRESHOLD overrides [clean].threshold
// - CLEANHISTORY_BACKUP_DIR overrides [backup].dir
func applyEnvOverrides(c *Config) error {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(EnvPrefix + key); ok && val != "" {
			*target = val
		}
	}

	applyInt := func(key string, target *int) error {
		val, ok := os.LookupEnv(EnvPrefix + key)
		if !ok || val == "" {
			return nil
		}
		i, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return &cherrors.ConfigError{Key: EnvPrefix + key, Err: fmt.Errorf("%w: %q is not an integer", cherrors.ErrInvalid, val)}
		}
		*target = i
		return nil
	}

	// Clean section
	if err := applyInt("CLEAN_THRESHOLD", &c.Clean.Threshold); err != nil {
		return err
	}
	applyString("CLEAN_SHELL", &c.Clean.Shell)
	applyString("CLEAN_OUTPUT", &c.Clean.Output)

	// Backup section
	applyString("BACKUP_DIR", &c.Backup.Dir)

	c.Clean.Shell = strings.ToLower(strings.TrimSpace(c.Clean.Shell))
	c.Clean.Output = strings.ToLower(strings.TrimSpace(c.Clean.Output))
	return nil
}

// BackupDir resolves the configured backup directory against home.
// It returns "" when no override is configured.
func (c *Config) BackupDir(home string) string {
	dir := c.Backup.Dir
	switch {
	case dir == "":
		return ""
	case dir == "~":
		return home
	case strings.HasPrefix(dir, "~/"):
		return filepath.Join(home, strings.TrimPrefix(dir, "~/"))
	case filepath.IsAbs(dir):
		return dir
	}
	return filepath.Join(home, dir)
}
