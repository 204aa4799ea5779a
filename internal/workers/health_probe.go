package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
)

// HealthProbe periodically checks readiness and publishes the result.
// A probe is bounded by its interval so a hung database cannot stall it.
type HealthProbe struct {
	checker   ReadinessChecker
	publisher StatusPublisher
	interval  time.Duration

	logger *logger.Logger
}

func NewHealthProbe(checker ReadinessChecker, publisher StatusPublisher, interval time.Duration, logger *logger.Logger) *HealthProbe {
	return &HealthProbe{
		checker:   checker,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

// Run probes once immediately and then on every tick until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	serving := p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if now := p.probe(ctx); now != serving {
				p.logger.Info().Bool("serving", now).Msg("readiness changed")
				serving = now
			}
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.checker.CheckReadiness(probeCtx)
	if err != nil && ctx.Err() != nil {
		// shutting down, keep the last published status
		return false
	}
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "HealthProbe.probe").Msg("readiness check failed")
	}

	p.publisher.SetServing(err == nil)
	return err == nil
}
