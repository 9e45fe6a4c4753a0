// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const rsaKeyBits = 2048

// EncryptRSA encrypts plaintext (RSA-OAEP, SHA-256) with the public half of a
// 2048-bit key pair generated for this call only, and returns standard
// Base64. The private half is discarded.
//
// Because [DecryptRSA] generates its own unrelated pair, a ciphertext from
// EncryptRSA can not be decrypted by a later DecryptRSA call. Callers that need
// a working round trip must use [RSAKeyPair].
func EncryptRSA(plaintext []byte) (string, error) {
	pair, err := GenerateRSAKeyPair()
	if err != nil {
		return "", err
	}
	return pair.Encrypt(plaintext)
}

// DecryptRSA decrypts ciphertext with the private half of a 2048-bit key pair
// generated for this call only. For any ciphertext produced outside this call
// it returns [ErrRSADecrypt] (wrapped); see [EncryptRSA].
func DecryptRSA(ciphertext string) ([]byte, error) {
	pair, err := GenerateRSAKeyPair()
	if err != nil {
		return nil, err
	}
	return pair.Decrypt(ciphertext)
}

// RSAKeyPair holds one RSA key pair so that Encrypt and Decrypt share key
// material. It is immutable after creation and safe for concurrent use.
type RSAKeyPair struct {
	private *rsa.PrivateKey
}

// GenerateRSAKeyPair creates a fresh 2048-bit pair.
func GenerateRSAKeyPair() (*RSAKeyPair, error) {
	key, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate rsa key: %w", err)
	}
	return &RSAKeyPair{private: key}, nil
}

// PublicKey returns the public half of the pair.
func (p *RSAKeyPair) PublicKey() *rsa.PublicKey {
	return &p.private.PublicKey
}

// Encrypt encrypts plaintext with the pair's public key and returns standard
// Base64. Plaintext longer than the OAEP limit (190 bytes for 2048 bits)
// is rejected.
func (p *RSAKeyPair) Encrypt(plaintext []byte) (string, error) {
	out, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, &p.private.PublicKey, plaintext, nil)
	if err != nil {
		return "", fmt.Errorf("rsa encrypt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt for ciphertexts produced by the same pair.
func (p *RSAKeyPair) Decrypt(ciphertext string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	out, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, p.private, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRSADecrypt, err)
	}
	return out, nil
}
