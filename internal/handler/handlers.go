package handler

import (
	"github.com/MKhiriev/go-internal-auth/internal/auth"
	"github.com/MKhiriev/go-internal-auth/internal/config"
	"github.com/MKhiriev/go-internal-auth/internal/handler/http"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers of the callee. guard enforces the
// handshake on the routes matched by cfg.Auth.PathPatterns.
func NewHandlers(services *service.Services, guard *auth.Guard, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, guard, cfg.Auth.PathPatterns, logger),
	}, nil
}
