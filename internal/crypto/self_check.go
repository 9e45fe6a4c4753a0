// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"fmt"
)

// sha256ABC is the FIPS 180-2 known answer for SHA-256("abc").
const sha256ABC = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

// SelfCheck exercises every primitive of the toolkit once: a SHA-256 known
// answer, an AES round trip and an RSA round trip with a fresh pair.
//
// Any failure is reported as [ErrUnsupportedAlgorithm]. Binaries call it
// before serving traffic and refuse to start when it fails.
func SelfCheck() error {
	if got := SHA256HexString("abc"); got != sha256ABC {
		return fmt.Errorf("%w: sha-256 known answer mismatch", ErrUnsupportedAlgorithm)
	}

	sample := []byte("self-check")

	sealed, err := EncryptAES(sample, "self-check")
	if err != nil {
		return fmt.Errorf("%w: aes: %w", ErrUnsupportedAlgorithm, err)
	}
	opened, err := DecryptAES(sealed, "self-check")
	if err != nil || !bytes.Equal(opened, sample) {
		return fmt.Errorf("%w: aes round trip failed", ErrUnsupportedAlgorithm)
	}

	pair, err := GenerateRSAKeyPair()
	if err != nil {
		return fmt.Errorf("%w: rsa: %w", ErrUnsupportedAlgorithm, err)
	}
	sealed, err = pair.Encrypt(sample)
	if err != nil {
		return fmt.Errorf("%w: rsa: %w", ErrUnsupportedAlgorithm, err)
	}
	opened, err = pair.Decrypt(sealed)
	if err != nil || !bytes.Equal(opened, sample) {
		return fmt.Errorf("%w: rsa round trip failed", ErrUnsupportedAlgorithm)
	}

	return nil
}
