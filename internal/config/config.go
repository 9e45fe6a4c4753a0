// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// None is the sentinel value meaning "not configured".
const None = "NONE"

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags and an optional JSON
// file, then completed with defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Auth holds the shared-secret handshake settings used by both the
	// callee (verification) and the caller (token issuing).
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds the callee's listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the caller's peer address and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds the handshake configuration. Every field defaults to "NONE".
type Auth struct {
	// HeaderName is the request header carrying the token. "NONE" disables
	// the handshake system-wide.
	// Env: AUTH_HEADER_NAME
	HeaderName string `env:"HEADER_NAME"`

	// Token is the shared secret. Only its SHA-256 hex digest is sent.
	// Env: AUTH_TOKEN
	Token string `env:"TOKEN"`

	// PathPatterns lists the inbound routes that require verification.
	// Empty or a leading "NONE" wires verification onto no routes.
	// Env: AUTH_PATH_PATTERNS (comma separated)
	PathPatterns []string `env:"PATH_PATTERNS" envSeparator:","`

	// CallUniqueID is the unique call-id value. When set, callers send it and
	// callees treat its header as an internal-call marker.
	// Env: AUTH_CALL_UNIQUE_ID
	CallUniqueID string `env:"CALL_UNIQUE_ID"`
}

// Enabled reports whether the handshake is switched on.
func (a Auth) Enabled() bool {
	return a.HeaderName != "" && a.HeaderName != None
}

// Server holds network and timeout settings for the callee.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading request headers.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the outbound peer client.
type Adapter struct {
	// HTTPAddress is the peer base URL or host:port.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, defaults and validates the configuration
// from all sources, reading flags from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetServerConfig is GetStructuredConfig plus the checks the callee needs.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg, cfg.Server.validate()
}

// GetClientConfig is GetStructuredConfig plus the checks the caller needs.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg, cfg.Adapter.validate()
}
