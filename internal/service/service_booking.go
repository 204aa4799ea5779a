package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/store"
	"github.com/MKhiriev/go-turf-booking/internal/utils"
	"github.com/MKhiriev/go-turf-booking/models"
)

// maxIDAttempts bounds how often CreateBooking draws a new identifier after
// a primary key collision.
const maxIDAttempts = 3

// bookingService is the booking ledger. It assigns identifiers and owners;
// the repository enforces owner scoping on every read and write.
type bookingService struct {
	bookingRepository store.BookingRepository

	ids   utils.IDGenerator
	clock utils.Clock

	logger *logger.Logger
}

func NewBookingService(bookingRepository store.BookingRepository, ids utils.IDGenerator, clock utils.Clock, logger *logger.Logger) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		ids:               ids,
		clock:             clock,
		logger:            logger,
	}
}

// CreateBooking stamps the caller as owner, assigns a fresh UUID and the
// creation time, and persists the booking. The turf details are stored as
// given; no turf lookup or slot conflict check is made.
func (b *bookingService) CreateBooking(ctx context.Context, userID int64, booking models.NewBooking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	newBooking := booking.Booking(userID)
	newBooking.CreatedAt = b.clock.Now()

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		newBooking.ID = b.ids.Generate()

		created, err := b.bookingRepository.CreateBooking(ctx, newBooking)
		if err == nil {
			log.Info().Str("booking_id", created.ID).Int64("user_id", userID).Msg("booking created")
			return created, nil
		}
		if !errors.Is(err, store.ErrBookingIDConflict) {
			return models.Booking{}, fmt.Errorf("error creating booking: %w", err)
		}
		log.Warn().Int("attempt", attempt).Msg("booking id collision, regenerating")
	}

	return models.Booking{}, ErrBookingIDGenerationFailed
}

func (b *bookingService) ListBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	bookings, err := b.bookingRepository.ListBookings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	return bookings, nil
}

func (b *bookingService) UpdateBooking(ctx context.Context, userID int64, bookingID string, upd models.BookingUpdate) (models.Booking, error) {
	updated, err := b.bookingRepository.UpdateBooking(ctx, userID, bookingID, upd)
	if err != nil {
		return models.Booking{}, fmt.Errorf("error updating booking: %w", err)
	}

	return updated, nil
}

func (b *bookingService) DeleteBooking(ctx context.Context, userID int64, bookingID string) error {
	if err := b.bookingRepository.DeleteBooking(ctx, userID, bookingID); err != nil {
		return fmt.Errorf("error deleting booking: %w", err)
	}

	logger.FromContext(ctx).Info().Str("booking_id", bookingID).Int64("user_id", userID).Msg("booking deleted")
	return nil
}
