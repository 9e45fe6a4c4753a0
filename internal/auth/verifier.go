// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"crypto/subtle"
	"strings"
)

// Verifier checks the token header of an inbound request against the shared
// secret.
type Verifier struct {
	secret *SharedSecret
}

// NewVerifier returns a Verifier bound to secret.
func NewVerifier(secret *SharedSecret) *Verifier {
	return &Verifier{secret: secret}
}

// Verify returns nil when the request is allowed, [ErrMissingToken] when the
// token header is absent or blank, and [ErrTokenMismatch] when it does not
// equal hex(SHA-256(secret)). A disabled secret allows everything.
//
// The comparison runs in constant time over the full value.
func (v *Verifier) Verify(d RequestDescriptor) error {
	if !v.secret.Enabled() {
		return nil
	}

	got := d.Headers.Get(v.secret.HeaderName())
	if strings.TrimSpace(got) == "" {
		return ErrMissingToken
	}

	if subtle.ConstantTimeCompare([]byte(got), []byte(v.secret.Token())) != 1 {
		return ErrTokenMismatch
	}

	return nil
}
