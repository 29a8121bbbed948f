package workday

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a RESTClient is constructed
	// with an empty base URL or token.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidConfiguration is the sentinel error wrapped by [ConfigError].
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ConfigError is returned when connector configuration fetched from a
// configuration service is missing or incomplete.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return e.Reason
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(field, reason string) *ConfigError {
	return &ConfigError{
		Field:  field,
		Reason: reason,
		Err:    ErrInvalidConfiguration,
	}
}
