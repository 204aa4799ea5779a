package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-turf-booking/internal/validators"
	"github.com/MKhiriev/go-turf-booking/models"
)

type TurfValidationService struct {
	inner     TurfService
	validator validators.Validator
}

func NewTurfValidationService() TurfServiceWrapper {
	return &TurfValidationService{
		validator: validators.NewInputValidator(),
	}
}

func (v *TurfValidationService) CreateTurf(ctx context.Context, turf models.NewTurf) (models.Turf, error) {
	if err := v.validator.Validate(ctx, turf); err != nil {
		return models.Turf{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateTurf(ctx, turf)
}

func (v *TurfValidationService) ListTurfs(ctx context.Context) ([]models.Turf, error) {
	return v.inner.ListTurfs(ctx)
}

func (v *TurfValidationService) UpdateTurf(ctx context.Context, turfID int64, upd models.TurfUpdate) (models.Turf, error) {
	if turfID <= 0 {
		return models.Turf{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidTurfID)
	}
	if err := v.validator.Validate(ctx, upd); err != nil {
		return models.Turf{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateTurf(ctx, turfID, upd)
}

func (v *TurfValidationService) DeleteTurf(ctx context.Context, turfID int64) error {
	if turfID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidTurfID)
	}

	return v.inner.DeleteTurf(ctx, turfID)
}

func (v *TurfValidationService) Wrap(wrapped TurfService) TurfService {
	v.inner = wrapped
	return v
}
