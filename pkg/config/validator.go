// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validFormats   = []string{FormatText, FormatTable}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if !slices.Contains(validFormats, strings.ToLower(c.Format)) {
		return &ValidationError{
			Field:   "format",
			Value:   c.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validFormats, ", ")),
		}
	}
	if !slices.Contains(validLogLevels, strings.ToLower(c.Global.LogLevel)) {
		return &ValidationError{
			Field:   "global.log_level",
			Value:   c.Global.LogLevel,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
		}
	}
	return nil
}

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error for %s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}
