// Package errors provides typed errors for threshold-reporter
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrValidation indicates a configuration value failed validation
	ErrValidation
	// ErrInput indicates an item or threshold could not be parsed
	ErrInput
	// ErrOutput indicates a report could not be rendered
	ErrOutput
)

// ReporterError is the base error type for all threshold-reporter errors
type ReporterError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// Error returns the error message
func (e *ReporterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *ReporterError) Unwrap() error {
	return e.Cause
}

// New creates a new ReporterError
func New(errType ErrorType, message string, cause error) *ReporterError {
	return &ReporterError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithContext adds context to the error
func (e *ReporterError) WithContext(key string, value any) *ReporterError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var rerr *ReporterError
	if err == nil {
		return false
	}
	if errors.As(err, &rerr) {
		return rerr.Type == errType
	}
	return false
}

func (et ErrorType) String() string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrValidation:
		return "VALIDATION"
	case ErrInput:
		return "INPUT"
	case ErrOutput:
		return "OUTPUT"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *ReporterError {
	return New(ErrConfig, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *ReporterError {
	return New(ErrValidation, message, cause)
}

// InputError creates an input parsing error
func InputError(message string, cause error) *ReporterError {
	return New(ErrInput, message, cause)
}

// OutputError creates an output rendering error
func OutputError(message string, cause error) *ReporterError {
	return New(ErrOutput, message, cause)
}
