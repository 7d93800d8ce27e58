package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (missing sign keys or an unknown environment label).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid credential store settings
	// (empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
