// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound side of internal calls: clients that
// talk to peer services.
//
// The primary abstraction is [PeerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPPeerAdapter]) whose every request is stamped with the internal
// auth header by an [auth.Issuer].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-internal-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/peer_adapter_mock.go -package=mock

// PeerAdapter defines transport-agnostic communication with a peer service.
// Implementations attach the internal auth header and map transport-level
// errors to the sentinel values defined in this package.
type PeerAdapter interface {
	// Health fetches GET /api/health of the peer.
	Health(ctx context.Context) (models.ServiceHealth, error)

	// Version fetches GET /api/version of the peer.
	Version(ctx context.Context) (string, error)

	// Echo posts req to the peer's protected echo route. A peer that rejects
	// the internal auth token answers 401, surfaced as [ErrUnauthorized].
	Echo(ctx context.Context, req models.EchoRequest) (models.EchoResponse, error)
}
