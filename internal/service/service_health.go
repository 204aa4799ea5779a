package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
)

// Pinger is anything that can report whether its backing connection is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	db Pinger

	logger *logger.Logger
}

func NewHealthService(db Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

// CheckReadiness pings the database and wraps any failure in ErrNotReady.
func (h *healthService) CheckReadiness(ctx context.Context) error {
	if err := h.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}
	return nil
}
