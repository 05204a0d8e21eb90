package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment or a file cannot be decoded into the config struct
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be loaded
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrReadingFile is returned when a config file cannot be opened
	ErrReadingFile = errors.New("failed to read config file")

	// ErrNilPointer is returned when a nil pointer is provided to a loader
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
