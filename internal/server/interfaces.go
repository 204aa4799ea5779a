package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is cancelled or a termination signal arrives,
// then shuts every transport down gracefully.
type Server interface {
	RunServer(ctx context.Context) error
}

// transport is a single listener managed by the server.
type transport interface {
	// RunServer starts serving requests and blocks until the transport stops.
	RunServer() error

	// Shutdown gracefully stops the transport, giving up when ctx is done.
	Shutdown(ctx context.Context) error
}
