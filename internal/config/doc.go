// Package config provides configuration loading, merging, and validation
// for the peer authentication binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (a field set by a higher source is kept; lower sources only fill
// fields that are still empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// After merging, every unset handshake field falls back to the "NONE"
// sentinel, which disables the corresponding feature.
//
// The main entry points are [GetServerConfig] for the callee and
// [GetClientConfig] for the caller.
package config
