package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-internal-auth/internal/adapter"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/models"
)

const healthyStatus = "ok"

type clientPeerService struct {
	adapter adapter.PeerAdapter

	logger *logger.Logger
}

func NewClientPeerService(peerAdapter adapter.PeerAdapter, logger *logger.Logger) ClientPeerService {
	return &clientPeerService{adapter: peerAdapter, logger: logger}
}

func (s *clientPeerService) CheckPeer(ctx context.Context) (models.PeerStatus, error) {
	health, err := s.adapter.Health(ctx)
	if err != nil {
		return models.PeerStatus{}, fmt.Errorf("peer health: %w", err)
	}
	if health.Status != healthyStatus {
		return models.PeerStatus{Health: health}, fmt.Errorf("%w: status %q", ErrPeerUnhealthy, health.Status)
	}

	version, err := s.adapter.Version(ctx)
	if err != nil {
		return models.PeerStatus{Health: health}, fmt.Errorf("peer version: %w", err)
	}

	s.logger.Debug().
		Str("peer_version", version).
		Bool("peer_internal_auth", health.InternalAuth).
		Msg("peer checked")

	return models.PeerStatus{Version: version, Health: health}, nil
}

func (s *clientPeerService) Echo(ctx context.Context, message string) (models.EchoResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.EchoResponse{}, ErrEmptyEchoMessage
	}

	resp, err := s.adapter.Echo(ctx, models.EchoRequest{Message: message})
	if err != nil {
		return models.EchoResponse{}, fmt.Errorf("peer echo: %w", err)
	}

	s.logger.Debug().
		Str("rule", resp.Rule).
		Str("trace_id", resp.TraceID).
		Msg("peer accepted internal call")

	return resp, nil
}
