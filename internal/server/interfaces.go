package server

import "context"

// Server defines the lifecycle contract of the transport server.
//
// Implementations block in [Server.RunServer] until shutdown is requested
// and release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A graceful stop returns nil; a failure to listen is returned as an error.
	RunServer() error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
