// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"strings"

	"github.com/MKhiriev/go-internal-auth/internal/crypto"
)

// None is the sentinel configuration value meaning "not configured".
const None = "NONE"

// SharedSecret is the process-wide handshake configuration: the header that
// carries the token and the secret it is derived from. It is built once at
// startup and never mutated, so a single *SharedSecret is shared by the
// Issuer and the Verifier without locking.
type SharedSecret struct {
	headerName string
	value      string
	token      string
}

// NewSharedSecret builds a SharedSecret and precomputes its token. A blank
// header name or [None] yields a disabled secret.
func NewSharedSecret(headerName, value string) *SharedSecret {
	s := &SharedSecret{
		headerName: strings.TrimSpace(headerName),
		value:      value,
	}
	if s.Enabled() {
		s.token = crypto.SHA256HexString(value)
	}
	return s
}

// Enabled reports whether the handshake is switched on.
func (s *SharedSecret) Enabled() bool {
	return s != nil && s.headerName != "" && s.headerName != None
}

// HeaderName returns the configured header name.
func (s *SharedSecret) HeaderName() string {
	return s.headerName
}

// Token returns hex(SHA-256(secret)), the value sent on the wire.
// It is empty when the secret is disabled.
func (s *SharedSecret) Token() string {
	return s.token
}
