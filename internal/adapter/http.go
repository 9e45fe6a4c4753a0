package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-internal-auth/internal/auth"
	"github.com/MKhiriev/go-internal-auth/internal/config"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/utils"
	"github.com/MKhiriev/go-internal-auth/models"
)

const (
	healthPath  = "/api/health"
	versionPath = "/api/version"
	echoPath    = "/api/internal/echo"
)

type httpPeerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPeerAdapter constructs an HTTP/REST implementation of [PeerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress, applies the request
// timeout and registers issuer as a request middleware so that every call
// carries the internal auth header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPPeerAdapter(adapterCfg config.Adapter, issuer *auth.Issuer, logger *logger.Logger) (PeerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
		utils.WithRequestMiddleware(issuer.Middleware()),
	)

	logger.Info().Str("peer", baseURL).Msg("http peer adapter created")

	return &httpPeerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [PeerAdapter].
func (h *httpPeerAdapter) Health(ctx context.Context) (models.ServiceHealth, error) {
	var health models.ServiceHealth

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get(healthPath)
	if err != nil {
		return models.ServiceHealth{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceHealth{}, err
	}

	return health, nil
}

// Version implements [PeerAdapter]. The peer answers with a plain text body.
func (h *httpPeerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Echo implements [PeerAdapter].
func (h *httpPeerAdapter) Echo(ctx context.Context, req models.EchoRequest) (models.EchoResponse, error) {
	var echo models.EchoResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&echo).
		Post(echoPath)
	if err != nil {
		return models.EchoResponse{}, fmt.Errorf("echo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("path", echoPath).Msg("peer rejected internal call")
		return models.EchoResponse{}, err
	}

	return echo, nil
}
