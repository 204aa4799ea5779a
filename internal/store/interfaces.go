package store

import (
	"context"

	"github.com/MKhiriev/go-turf-booking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID set.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TurfRepository persists the turf catalog.
type TurfRepository interface {
	CreateTurf(ctx context.Context, turf models.Turf) (models.Turf, error)
	// ListTurfs returns every turf ordered by identifier, never nil.
	ListTurfs(ctx context.Context) ([]models.Turf, error)
	GetTurf(ctx context.Context, turfID int64) (models.Turf, error)
	// UpdateTurf applies the non-nil fields of upd and returns the stored turf.
	UpdateTurf(ctx context.Context, turfID int64, upd models.TurfUpdate) (models.Turf, error)
	DeleteTurf(ctx context.Context, turfID int64) error
}

// BookingRepository persists bookings. Every method except CreateBooking
// takes the owner and matches on both owner and booking id, so a booking
// owned by someone else is reported as ErrBookingNotFound.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	// ListBookings returns the owner's bookings in creation order, never nil.
	ListBookings(ctx context.Context, userID int64) ([]models.Booking, error)
	GetBooking(ctx context.Context, userID int64, bookingID string) (models.Booking, error)
	UpdateBooking(ctx context.Context, userID int64, bookingID string, upd models.BookingUpdate) (models.Booking, error)
	DeleteBooking(ctx context.Context, userID int64, bookingID string) error
}

// ErrorClassificator inspects driver errors for a specific SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY
	// constraint failure.
	IsUniqueViolation(err error) bool
}
