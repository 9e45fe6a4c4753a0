// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "github.com/MKhiriev/go-internal-auth/internal/logger"

// Guard is the callee side of the handshake: classify first, verify only
// what classified as internal.
type Guard struct {
	secret     *SharedSecret
	classifier *Classifier
	verifier   *Verifier
}

// NewGuard wires a Classifier and a Verifier around secret.
func NewGuard(secret *SharedSecret, uniqueCallID string, logger *logger.Logger) *Guard {
	return &Guard{
		secret:     secret,
		classifier: NewClassifier(uniqueCallID, logger),
		verifier:   NewVerifier(secret),
	}
}

// Enabled reports whether the handshake is switched on process-wide.
func (g *Guard) Enabled() bool {
	return g.secret.Enabled()
}

// Check returns the classification and nil when the request may proceed, or
// a rejection error from the Verifier. Requests that do not classify as
// internal always proceed.
func (g *Guard) Check(d RequestDescriptor) (Classification, error) {
	if !g.Enabled() {
		return Classification{}, nil
	}

	c := g.classifier.Classify(d)
	if !c.Internal {
		return c, nil
	}

	return c, g.verifier.Verify(d)
}
