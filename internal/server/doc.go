// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP and gRPC server lifecycles and the
// background workers, including startup, signal handling, and graceful
// shutdown of all enabled transports.
package server
