package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "limits.near")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateLimits()...)
	errors = append(errors, c.validatePriority()...)
	errors = append(errors, c.validateDisplay()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateLimits() []ValidationError {
	var errors []ValidationError
	l := c.Limits

	if l.Low <= 0 {
		errors = append(errors, ValidationError{"limits.low", l.Low, "must be greater than 0"})
	}
	if l.Near < l.Low {
		errors = append(errors, ValidationError{"limits.near", l.Near, "must be at least limits.low"})
	}
	if l.Weekly < l.Near {
		errors = append(errors, ValidationError{"limits.weekly", l.Weekly, "must be at least limits.near"})
	}
	if l.Weekly <= 0 {
		errors = append(errors, ValidationError{"limits.weekly", l.Weekly, "must be greater than 0"})
	}
	return errors
}

func (c *Config) validatePriority() []ValidationError {
	var errors []ValidationError
	for i, name := range c.Priority.Names {
		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("priority.names[%d]", i),
				Value:   name,
				Message: "must not be empty",
			})
		}
	}
	return errors
}

func (c *Config) validateDisplay() []ValidationError {
	if c.Display.Width < 0 {
		return []ValidationError{{"display.width", c.Display.Width, "must be 0 (auto) or positive"}}
	}
	return nil
}

func (c *Config) validateLogging() []ValidationError {
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		return []ValidationError{{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of %v", ValidLogLevels()),
		}}
	}
	return nil
}
