// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for threshold-reporter.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Project Config: ./.threshold-reporter.yaml or a parent directory
// 3. Environment Variables: THRESHOLD_REPORTER_*
// 4. Command-line flags
package config

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
)

// Config represents the complete application configuration.
type Config struct {
	Threshold int          `yaml:"threshold"`
	Items     []int        `yaml:"items"`
	Format    string       `yaml:"format"`
	Color     bool         `yaml:"color"`
	Global    GlobalConfig `yaml:"global"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}
