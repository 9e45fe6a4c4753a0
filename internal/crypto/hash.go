// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the SHA-256 digest of data as a 64 character lowercase
// hex string, two zero-padded digits per byte.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SHA256HexString is [SHA256Hex] over the UTF-8 bytes of s.
func SHA256HexString(s string) string {
	return SHA256Hex([]byte(s))
}
