package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/store"
	"github.com/MKhiriev/go-turf-booking/models"
)

type turfService struct {
	turfRepository store.TurfRepository

	logger *logger.Logger
}

func NewTurfService(turfRepository store.TurfRepository, logger *logger.Logger) TurfService {
	return &turfService{
		turfRepository: turfRepository,
		logger:         logger,
	}
}

func (t *turfService) CreateTurf(ctx context.Context, turf models.NewTurf) (models.Turf, error) {
	created, err := t.turfRepository.CreateTurf(ctx, turf.Turf())
	if err != nil {
		return models.Turf{}, fmt.Errorf("error creating turf: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("turf_id", created.TurfID).Msg("turf created")
	return created, nil
}

func (t *turfService) ListTurfs(ctx context.Context) ([]models.Turf, error) {
	turfs, err := t.turfRepository.ListTurfs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing turfs: %w", err)
	}
	if turfs == nil {
		turfs = []models.Turf{}
	}

	return turfs, nil
}

func (t *turfService) UpdateTurf(ctx context.Context, turfID int64, upd models.TurfUpdate) (models.Turf, error) {
	updated, err := t.turfRepository.UpdateTurf(ctx, turfID, upd)
	if err != nil {
		return models.Turf{}, fmt.Errorf("error updating turf %d: %w", turfID, err)
	}

	return updated, nil
}

func (t *turfService) DeleteTurf(ctx context.Context, turfID int64) error {
	if err := t.turfRepository.DeleteTurf(ctx, turfID); err != nil {
		return fmt.Errorf("error deleting turf %d: %w", turfID, err)
	}

	logger.FromContext(ctx).Info().Int64("turf_id", turfID).Msg("turf deleted")
	return nil
}
