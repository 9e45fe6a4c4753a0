// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto is the stateless cryptographic toolkit used by the internal
// call authentication handshake and by services that need simple symmetric or
// asymmetric helpers.
//
// Every function builds its cipher or digest instance per call and shares no
// mutable state, so all of them are safe for concurrent use.
//
// The toolkit contains:
//   - SHA-256 hashing rendered as lowercase hex ([SHA256Hex]);
//   - password based AES in the platform default block mode ([EncryptAES],
//     [DecryptAES]);
//   - RSA helpers that generate a fresh key pair on every call ([EncryptRSA],
//     [DecryptRSA]) and an opt-in persisted pair ([RSAKeyPair]);
//   - Base64 text codec ([EncodeBase64], [DecodeBase64]);
//   - a startup check ([SelfCheck]) that fails with [ErrUnsupportedAlgorithm]
//     when a primitive is unusable in the running environment.
package crypto
