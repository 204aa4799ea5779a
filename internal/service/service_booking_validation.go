package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-turf-booking/internal/validators"
	"github.com/MKhiriev/go-turf-booking/models"
)

// BookingValidationService rejects malformed input before the wrapped
// BookingService touches the store.
type BookingValidationService struct {
	inner     BookingService
	validator validators.Validator
}

func NewBookingValidationService() BookingServiceWrapper {
	return &BookingValidationService{
		validator: validators.NewInputValidator(),
	}
}

func (v *BookingValidationService) CreateBooking(ctx context.Context, userID int64, booking models.NewBooking) (models.Booking, error) {
	if err := validateOwner(userID); err != nil {
		return models.Booking{}, err
	}
	if err := v.validator.Validate(ctx, booking); err != nil {
		return models.Booking{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateBooking(ctx, userID, booking)
}

func (v *BookingValidationService) ListBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	if err := validateOwner(userID); err != nil {
		return nil, err
	}

	return v.inner.ListBookings(ctx, userID)
}

func (v *BookingValidationService) UpdateBooking(ctx context.Context, userID int64, bookingID string, upd models.BookingUpdate) (models.Booking, error) {
	if err := validateOwnerAndBooking(userID, bookingID); err != nil {
		return models.Booking{}, err
	}
	if err := v.validator.Validate(ctx, upd); err != nil {
		return models.Booking{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateBooking(ctx, userID, bookingID, upd)
}

func (v *BookingValidationService) DeleteBooking(ctx context.Context, userID int64, bookingID string) error {
	if err := validateOwnerAndBooking(userID, bookingID); err != nil {
		return err
	}

	return v.inner.DeleteBooking(ctx, userID, bookingID)
}

func (v *BookingValidationService) Wrap(wrapped BookingService) BookingService {
	v.inner = wrapped
	return v
}

func validateOwner(userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return nil
}

func validateOwnerAndBooking(userID int64, bookingID string) error {
	if err := validateOwner(userID); err != nil {
		return err
	}
	if strings.TrimSpace(bookingID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidBookingID)
	}
	return nil
}
