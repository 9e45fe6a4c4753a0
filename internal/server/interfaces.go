package server

import "context"

// Server defines the lifecycle contract of the callee.
//
// Implementations block in [Server.RunServer] until shutdown is requested
// and release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT arrives. It returns early with an error when the address cannot
	// be bound or serving fails.
	RunServer() error

	// Shutdown gracefully stops the server, waiting at most until ctx ends.
	Shutdown(ctx context.Context)
}
