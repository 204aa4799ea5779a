package service

import (
	"context"

	"github.com/MKhiriev/go-turf-booking/models"
)

// AuthService registers users, verifies credentials and issues and checks
// session tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TurfService manages the turf catalog.
type TurfService interface {
	CreateTurf(ctx context.Context, turf models.NewTurf) (models.Turf, error)
	ListTurfs(ctx context.Context) ([]models.Turf, error)
	UpdateTurf(ctx context.Context, turfID int64, upd models.TurfUpdate) (models.Turf, error)
	DeleteTurf(ctx context.Context, turfID int64) error
}

// BookingService manages bookings on behalf of an authenticated owner.
// Every method takes the caller's user ID; bookings of other users are
// reported as store.ErrBookingNotFound.
type BookingService interface {
	CreateBooking(ctx context.Context, userID int64, booking models.NewBooking) (models.Booking, error)
	ListBookings(ctx context.Context, userID int64) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, userID int64, bookingID string, upd models.BookingUpdate) (models.Booking, error)
	DeleteBooking(ctx context.Context, userID int64, bookingID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the service can reach its dependencies.
type HealthService interface {
	CheckReadiness(ctx context.Context) error
}

// AuthServiceWrapper, TurfServiceWrapper and BookingServiceWrapper define
// middleware composition for the corresponding services. Implementations
// wrap an existing service to add behavior such as validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type TurfServiceWrapper interface {
	Wrap(TurfService) TurfService
}

type BookingServiceWrapper interface {
	Wrap(BookingService) BookingService
}
