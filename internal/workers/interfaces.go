// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// ReadinessChecker reports whether the application can serve requests.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// StatusPublisher receives the outcome of every readiness probe.
type StatusPublisher interface {
	SetServing(serving bool)
}
