// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// EncryptAES encrypts plaintext with a key taken directly from the SHA-256
// digest of password and returns the ciphertext as standard Base64.
//
// There is no KDF iteration, salt or IV: blocks are encrypted independently
// (ECB) after PKCS#7 padding. The output is only meant to be read back by
// [DecryptAES]; it does not interoperate with AES implementations that
// expect an explicit IV.
func EncryptAES(plaintext []byte, password string) (string, error) {
	block, err := newAESBlock(password)
	if err != nil {
		return "", err
	}

	bs := block.BlockSize()
	padded := pkcs7Pad(plaintext, bs)
	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += bs {
		block.Encrypt(out[i:i+bs], padded[i:i+bs])
	}

	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptAES reverses [EncryptAES]. It returns [ErrInvalidCiphertext]
// (wrapped) when the input is not a whole number of blocks or the padding
// does not check out, which is what a wrong password looks like.
func DecryptAES(ciphertext string, password string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	block, err := newAESBlock(password)
	if err != nil {
		return nil, err
	}

	bs := block.BlockSize()
	if len(raw) == 0 || len(raw)%bs != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrInvalidCiphertext, len(raw), bs)
	}

	out := make([]byte, len(raw))
	for i := 0; i < len(raw); i += bs {
		block.Decrypt(out[i:i+bs], raw[i:i+bs])
	}

	return pkcs7Unpad(out, bs)
}

// newAESBlock feeds the 32 byte password digest straight into aes.NewCipher.
func newAESBlock(password string) (cipher.Block, error) {
	key := sha256.Sum256([]byte(password))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return block, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+n)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("%w: bad padding", ErrInvalidCiphertext)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrInvalidCiphertext)
		}
	}
	return data[:len(data)-n], nil
}
