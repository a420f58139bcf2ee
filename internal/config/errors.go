package config

import "errors"

var (
	// ErrMissingRequiredConfig is returned when one or more of the repository
	// settings (owner, name, token) are empty after all sources are merged.
	// The wrapping error names every missing variable.
	ErrMissingRequiredConfig = errors.New("missing required configuration")

	// ErrInvalidPort indicates that the listening port is not a number in
	// the 1..65535 range.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidLogLevel indicates that the log level cannot be parsed by
	// zerolog.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
