// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the caller application runtime.
//
// It checks the configured peer and then performs one authenticated internal
// call against the peer's protected echo route.
package client
