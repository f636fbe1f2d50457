package config

import (
	"errors"
	"fmt"
)

var (
	ErrNotANumber    = errors.New("not a number")
	ErrOutOfRange    = errors.New("out of range")
	ErrUnknownValue  = errors.New("unknown value")
	ErrInvalidConfig = errors.New("invalid configuration file")
)

// ConfigError describes a rejected or adjusted configuration value.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
