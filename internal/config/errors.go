package config

import "errors"

// Validation errors returned by [AppConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid settings database
	// configuration (for example, an empty or in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application defaults
	// (for example, a non-positive iteration count or an empty algorithm).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCryptoConfigs indicates an unknown cipher executor backend.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
)
