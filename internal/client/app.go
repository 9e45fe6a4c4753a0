package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/service"
)

// DefaultMessage is sent to the peer when none is configured.
const DefaultMessage = "ping"

var errNoServices = errors.New("client services are not provided")

type App struct {
	services *service.ClientServices
	message  string

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, message string, logger *logger.Logger) (*App, error) {
	if services == nil || services.PeerService == nil {
		return nil, errNoServices
	}
	if message == "" {
		message = DefaultMessage
	}

	return &App{services: services, message: message, logger: logger}, nil
}

// Run checks the peer and then performs one internal call. A rejected call
// surfaces as an error wrapping adapter.ErrUnauthorized.
func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	status, err := a.services.PeerService.CheckPeer(ctx)
	if err != nil {
		return fmt.Errorf("check peer: %w", err)
	}

	a.logger.Info().
		Str("peer_version", status.Version).
		Bool("peer_internal_auth", status.Health.InternalAuth).
		Msg("peer is healthy")

	echo, err := a.services.PeerService.Echo(ctx, a.message)
	if err != nil {
		return fmt.Errorf("internal call: %w", err)
	}

	a.logger.Info().
		Str("message", echo.Message).
		Str("path", echo.Path).
		Str("rule", echo.Rule).
		Str("trace_id", echo.TraceID).
		Msg("internal call accepted")

	return nil
}
