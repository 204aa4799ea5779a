package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg. The readiness
// probe only runs when there is somewhere to publish its result.
func NewWorkers(cfg config.Workers, checker ReadinessChecker, publisher StatusPublisher, logger *logger.Logger) *Workers {
	w := &Workers{}
	if publisher != nil && cfg.HealthCheckInterval > 0 {
		w.workers = append(w.workers, NewHealthProbe(checker, publisher, cfg.HealthCheckInterval, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
