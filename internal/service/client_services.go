package service

import (
	"github.com/MKhiriev/go-internal-auth/internal/adapter"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
)

// ClientServices groups the caller-side services.
type ClientServices struct {
	PeerService ClientPeerService
}

func NewClientServices(peerAdapter adapter.PeerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		PeerService: NewClientPeerService(peerAdapter, logger),
	}
}
