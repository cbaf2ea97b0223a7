// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/errors"
)

// Environment variables read by LoadFromEnv and ApplyEnvOverrides.
const (
	EnvConfigPath = "THRESHOLD_REPORTER_CONFIG"
	EnvThreshold  = "THRESHOLD_REPORTER_THRESHOLD"
	EnvLogLevel   = "THRESHOLD_REPORTER_LOG_LEVEL"
)

// Default config file names to search for
var defaultConfigFiles = []string{
	".threshold-reporter.yaml",
	".threshold-reporter.yml",
}

// Load loads configuration from a specific file path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.ValidationError("config validation failed", err).WithContext("path", path)
	}

	return &cfg, nil
}

// LoadDefault searches for and loads configuration from default locations
// Search order:
// 1. Current directory
// 2. Parent directories (up to root)
// A file that exists but fails to load is an error. No file at all yields
// DefaultConfig.
func LoadDefault() (*Config, error) {
	path, err := findInParents(".")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// LoadFromEnv loads config from environment variable path
// THRESHOLD_REPORTER_CONFIG can override the config file path
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}
	return LoadDefault()
}

// ApplyEnvOverrides applies THRESHOLD_REPORTER_* variables on top of cfg.
func ApplyEnvOverrides(cfg *Config) error {
	if val := os.Getenv(EnvThreshold); val != "" {
		threshold, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return errors.InputError(fmt.Sprintf("invalid %s", EnvThreshold), err).WithContext("value", val)
		}
		cfg.Threshold = threshold
	}
	if val := os.Getenv(EnvLogLevel); val != "" {
		cfg.Global.LogLevel = val
		if err := cfg.Validate(); err != nil {
			return errors.ValidationError(fmt.Sprintf("invalid %s", EnvLogLevel), err)
		}
	}
	return nil
}

// findInParents returns the first config file found walking up from
// startDir, or "" when there is none.
func findInParents(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.ConfigError("failed to resolve working directory", err)
	}

	for {
		for _, filename := range defaultConfigFiles {
			configPath := filepath.Join(dir, filename)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			// Reached root
			break
		}
		dir = parentDir
	}

	return "", nil
}
