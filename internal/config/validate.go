// validate.go checks a parsed kitchen config for values the CLI cannot act
// on. Numeric fields are deliberately left alone: the arithmetic accepts
// any integer.
package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a specific validation failure in a config file.
type ValidationError struct {
	// Field is the config key that failed validation (e.g., "output").
	Field string

	// Message describes what's wrong with the field value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// Validate returns every problem found in cfg (empty list = valid).
func Validate(cfg *Config) []ValidationError {
	var errors []ValidationError

	if cfg.Output != "" {
		switch strings.ToLower(cfg.Output) {
		case OutputText, OutputJSON:
		default:
			errors = append(errors, ValidationError{
				Field:   "output",
				Message: fmt.Sprintf("unknown output format %q (valid: %s, %s)", cfg.Output, OutputText, OutputJSON),
			})
		}
	}

	return errors
}
