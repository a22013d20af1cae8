// Package config provides thread-safe run configuration for orbit-setup.
// Values are plain strings keyed by the constants in keys.go, with typed
// accessors on top. Nothing is persisted: the only state this tool leaves
// behind is the files it writes.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/zoro11031/orbit-setup/internal/common"
)

// Config holds run options with thread-safe access
type Config struct {
	data map[string]string
	mu   sync.RWMutex
}

// New creates a new Config instance with no overrides
func New() *Config {
	return &Config{
		data: make(map[string]string),
	}
}

// GetOrDefault retrieves a value or returns default if not found (thread-safe)
// First checks the config, then the Defaults table, then the provided fallback
func (c *Config) GetOrDefault(key, defaultValue string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if value, exists := c.data[key]; exists {
		return value
	}
	if tableDefault, exists := Defaults[key]; exists {
		return tableDefault
	}
	return defaultValue
}

// Set validates and sets a configuration value (thread-safe)
func (c *Config) Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = value
	return nil
}

// TargetDir returns the cleaned target directory
func (c *Config) TargetDir() string {
	return filepath.Clean(c.GetOrDefault(KeyTargetDir, DefaultTargetDir))
}

// DirPerms returns the mode used when creating directories
func (c *Config) DirPerms() os.FileMode {
	return c.perms(KeyDirPerms, 0755)
}

// FilePerms returns the mode used when creating files
func (c *Config) FilePerms() os.FileMode {
	return c.perms(KeyFilePerms, 0644)
}

// DryRun reports whether writes should be skipped
func (c *Config) DryRun() bool {
	v, err := strconv.ParseBool(c.GetOrDefault(KeyDryRun, "false"))
	return err == nil && v
}

func (c *Config) perms(key string, fallback os.FileMode) os.FileMode {
	mode, err := parsePerms(c.GetOrDefault(key, ""))
	if err != nil {
		return fallback
	}
	return mode
}

func parsePerms(value string) (os.FileMode, error) {
	n, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal permissions: %s", value)
	}
	return os.FileMode(n), nil
}

func validate(key, value string) error {
	switch key {
	case KeyTargetDir:
		return common.ValidateDirPath(value)
	case KeyDirPerms, KeyFilePerms:
		mode, err := parsePerms(value)
		if err != nil {
			return err
		}
		return common.ValidatePerms(mode)
	case KeyDryRun:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid boolean for %s: %s", key, value)
		}
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
