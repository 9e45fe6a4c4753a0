package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-internal-auth/internal/config"
	"github.com/MKhiriev/go-internal-auth/internal/handler"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) {
	s.httpServer.Shutdown(ctx)
}

// run binds the address, then serves until ctx is done or serving fails.
// On ctx cancellation it shuts down within shutdownTimeout.
func (s *server) run(ctx context.Context) error {
	l, err := s.httpServer.Listen()
	if err != nil {
		return err
	}

	served := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", l.Addr().String()).Msg("launching HTTP server")
		served <- s.httpServer.Serve(l)
	}()

	select {
	case err = <-served:
		if err != nil {
			return fmt.Errorf("HTTP server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.Shutdown(shutdownCtx)

	if err = <-served; err != nil {
		return err
	}
	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
