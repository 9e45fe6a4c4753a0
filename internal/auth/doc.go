// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth implements the shared-secret handshake that lets one internal
// service prove to another that an HTTP request comes from a trusted internal
// caller.
//
// The caller side runs an [Issuer], which stamps every outgoing request with
// a configured header carrying hex(SHA-256(secret)). The callee side runs a
// [Guard], a deliberate two stage filter:
//
//  1. a [Classifier] decides from spoofable heuristics whether the request
//     looks like internal traffic;
//  2. only if it does, a [Verifier] checks the token header.
//
// A request that does not classify as internal is allowed through without any
// token check. Classification is a traffic filter, not a security boundary,
// and this fail-open behaviour is part of the contract every existing caller
// relies on.
//
// The header name "NONE" (see [None]) disables the handshake for the whole
// process: the Issuer stamps nothing and the Verifier allows everything.
package auth
