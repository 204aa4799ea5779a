package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/models"
)

// bookingRepository is the SQL-backed implementation of [BookingRepository].
// Reads, updates and deletes always filter on both id and user_id.
type bookingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookingRepository constructs a SQL-backed [BookingRepository].
func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		db:     db,
		logger: logger,
	}
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.TurfName, &b.Location, &b.Price, &b.Date, &b.Time, &b.UserID, &b.CreatedAt)
	return b, err
}

// CreateBooking inserts a booking whose ID, UserID and CreatedAt are
// already set by the caller.
//
// Error handling:
//   - primary key violation → [ErrBookingIDConflict].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateBookingQuery(r.db.builder, booking)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.CreateBooking").Msg("error building query")
		return models.Booking{}, err
	}

	created, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Error().Str("func", "*bookingRepository.CreateBooking").Str("booking_id", booking.ID).Msg("booking id collision")
			return models.Booking{}, ErrBookingIDConflict
		}
		log.Err(err).Str("func", "*bookingRepository.CreateBooking").Msg("error inserting booking")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *bookingRepository) ListBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBookingsQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListBookings").Msg("error building query")
		return nil, err
	}

	bookings, err := withRetry(ctx, r.db.errorClassificator, func() ([]models.Booking, error) {
		return r.queryBookings(ctx, query, args)
	})
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListBookings").Int64("user_id", userID).Msg("error listing bookings")
		return nil, err
	}

	return bookings, nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args []any) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookings, nil
}

func (r *bookingRepository) GetBooking(ctx context.Context, userID int64, bookingID string) (models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBookingQuery(r.db.builder, userID, bookingID)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.GetBooking").Msg("error building query")
		return models.Booking{}, err
	}

	booking, err := withRetry(ctx, r.db.errorClassificator, func() (models.Booking, error) {
		return scanBooking(r.db.QueryRowContext(ctx, query, args...))
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, ErrBookingNotFound
		}
		log.Err(err).Str("func", "*bookingRepository.GetBooking").Msg("error selecting booking")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return booking, nil
}

// UpdateBooking applies upd to the caller's booking and returns it as
// stored. An empty update returns the current booking unchanged.
func (r *bookingRepository) UpdateBooking(ctx context.Context, userID int64, bookingID string, upd models.BookingUpdate) (models.Booking, error) {
	if upd.IsEmpty() {
		return r.GetBooking(ctx, userID, bookingID)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookingQuery(r.db.builder, userID, bookingID, upd)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.UpdateBooking").Msg("error building query")
		return models.Booking{}, err
	}

	updated, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, ErrBookingNotFound
		}
		log.Err(err).Str("func", "*bookingRepository.UpdateBooking").Msg("error updating booking")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *bookingRepository) DeleteBooking(ctx context.Context, userID int64, bookingID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookingQuery(r.db.builder, userID, bookingID)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.DeleteBooking").Msg("error building query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.DeleteBooking").Msg("error deleting booking")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.DeleteBooking").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
