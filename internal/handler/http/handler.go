package http

import (
	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/service"
	"github.com/MKhiriev/go-internal-auth/internal/utils"
	"github.com/MKhiriev/go-internal-auth/internal/validators"
)

type Handler struct {
	services  *service.Services
	guard     Guard
	patterns  *PathPatterns
	traceIDs  *utils.TraceIDGenerator
	validator validators.Validator

	logger *logger.Logger
}

// NewHandler returns a Handler. patterns are the protected path patterns;
// empty or a leading "NONE" protects nothing.
func NewHandler(services *service.Services, guard Guard, patterns []string, logger *logger.Logger) *Handler {
	h := &Handler{
		services:  services,
		guard:     guard,
		patterns:  NewPathPatterns(patterns),
		traceIDs:  utils.NewTraceIDGenerator(),
		validator: validators.NewEchoValidator(),
		logger:    logger,
	}

	logger.Info().
		Bool("internal_auth", guard.Enabled()).
		Strs("protected_paths", h.patterns.List()).
		Msg("http handler created")

	return h
}
