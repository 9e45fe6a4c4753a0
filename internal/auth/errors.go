// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

// Rejection reasons returned by [Verifier.Verify] and [Guard.Check]. Both are
// terminal for the request: the transport answers 401 and never forwards it.
var (
	// ErrMissingToken means the token header is absent or blank.
	ErrMissingToken = errors.New("internal auth token is missing")

	// ErrTokenMismatch means the token header does not match the shared secret.
	ErrTokenMismatch = errors.New("internal auth token mismatch")
)

// IsRejected reports whether err is one of the rejection reasons.
func IsRejected(err error) bool {
	return errors.Is(err, ErrMissingToken) || errors.Is(err, ErrTokenMismatch)
}
