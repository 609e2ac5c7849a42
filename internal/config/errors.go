package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or contradictory.
var (
	// ErrInvalidStorageConfigs indicates missing database settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates missing or invalid server settings
	// (for example, no HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates contradictory application settings,
	// such as auth test mode enabled in production.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates invalid verifier settings
	// (for example, an empty keys URL or a non-positive TTL).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
