package console

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a console parameter is out of range.
var ErrInvalidConfig = errors.New("console: invalid configuration")

// ConfigError names the parameter that failed validation.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("console: invalid %s: %v", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
