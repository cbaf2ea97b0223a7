// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

// DefaultThreshold is used when no config file is present.
const DefaultThreshold = 10

// DefaultItems returns the items reported when none are configured.
func DefaultItems() []int {
	return []int{5, 15, 8, 20, 3}
}

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Threshold: DefaultThreshold,
		Items:     DefaultItems(),
		Format:    FormatText,
		Color:     false,
		Global: GlobalConfig{
			LogLevel: "warn",
		},
	}
}

// applyDefaults fills optional fields left empty by a config file.
// Threshold and Items are not defaulted once a file exists: zero and an
// empty list are valid values.
func applyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if cfg.Global.LogLevel == "" {
		cfg.Global.LogLevel = "warn"
	}
}
