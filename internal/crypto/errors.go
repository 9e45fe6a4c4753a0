// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned by [SelfCheck] when one of the
	// primitives cannot be used in the running environment. It must abort
	// process startup; it is never produced per request.
	ErrUnsupportedAlgorithm = errors.New("cryptographic algorithm is not supported")

	// ErrInvalidCiphertext is returned by [DecryptAES] when the decoded
	// ciphertext is empty, not a whole number of blocks, or carries broken
	// padding (usually a wrong password).
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrRSADecrypt is returned when an RSA ciphertext cannot be decrypted
	// with the private key at hand.
	ErrRSADecrypt = errors.New("rsa decryption failed")
)
