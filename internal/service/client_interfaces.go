package service

import (
	"context"

	"github.com/MKhiriev/go-internal-auth/models"
)

// ClientPeerService is the caller side of an internal call: it talks to a
// peer through an adapter that stamps the internal auth header on every
// request.
type ClientPeerService interface {
	// CheckPeer fetches the peer's version and health. Returns ErrPeerUnhealthy
	// (wrapped) when the peer answers but does not report "ok".
	CheckPeer(ctx context.Context) (models.PeerStatus, error)

	// Echo sends message to the peer's protected echo route and returns what
	// the peer observed about the call. Returns ErrEmptyEchoMessage for a
	// blank message without calling the peer.
	Echo(ctx context.Context, message string) (models.EchoResponse, error)
}
