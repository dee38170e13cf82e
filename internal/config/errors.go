package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrUnknownDBDriver indicates that the configured database driver is
	// neither "sqlite3" nor "pgx".
	ErrUnknownDBDriver = errors.New("unknown database driver")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN for the postgres backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
