package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when no database DSN is provided.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: DSN is required")

	// ErrUnknownDBDriver is returned when the configured driver is neither
	// "postgres" nor "sqlite".
	ErrUnknownDBDriver = errors.New("unknown database driver")

	// ErrInvalidAuthConfigs is returned when the token sign key or token
	// duration is missing after all sources and defaults were applied.
	ErrInvalidAuthConfigs = errors.New("invalid auth configs")
)
