package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or inconsistent.
var (
	// ErrInvalidAuthConfigs indicates an unusable handshake configuration
	// (for example, a header name is set but the secret is still "NONE").
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid peer client settings
	// (for example, missing peer address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
