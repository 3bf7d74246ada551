package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid endpoint settings
	// (for example, missing feed URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or settings path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidImagesConfigs indicates an unknown image backend or a
	// backend missing its required settings.
	ErrInvalidImagesConfigs = errors.New("invalid images configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, negative intervals).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates a catalog server without a listen
	// address, feed document or usage log file.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
