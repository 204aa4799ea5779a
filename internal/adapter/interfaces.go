// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the turf-booking API.
//
// The primary abstraction is [ServerAdapter], which decouples the turfctl
// commands from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-turf-booking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// turf-booking server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login exchanges credentials for a bearer token, stores it via SetToken
	// and returns it.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	ListTurfs(ctx context.Context) ([]models.Turf, error)
	CreateTurf(ctx context.Context, turf models.NewTurf) error
	UpdateTurf(ctx context.Context, turfID int64, upd models.TurfUpdate) (models.Turf, error)
	DeleteTurf(ctx context.Context, turfID int64) error

	// The booking calls require a token.
	ListBookings(ctx context.Context) ([]models.Booking, error)
	CreateBooking(ctx context.Context, booking models.NewBooking) error
	UpdateBooking(ctx context.Context, bookingID string, upd models.BookingUpdate) (models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) error

	// ServerVersion returns the plain-text version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
