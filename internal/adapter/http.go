package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/models"
)

type httpServerAdapter struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /register and expects 201.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. On success the token from the response
// body is stored via SetToken and returned.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&tokenResp).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if strings.TrimSpace(tokenResp.Token) == "" {
		return "", ErrEmptyToken
	}

	h.SetToken(tokenResp.Token)
	return h.Token(), nil
}

// ListTurfs implements [ServerAdapter].
func (h *httpServerAdapter) ListTurfs(ctx context.Context) ([]models.Turf, error) {
	turfs := make([]models.Turf, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&turfs).
		Get("/turfs")
	if err != nil {
		return nil, fmt.Errorf("list turfs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return turfs, nil
}

// CreateTurf implements [ServerAdapter].
func (h *httpServerAdapter) CreateTurf(ctx context.Context, turf models.NewTurf) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(turf).
		Post("/turfs")
	if err != nil {
		return fmt.Errorf("create turf request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateTurf implements [ServerAdapter]. It returns the turf as stored after
// the update.
func (h *httpServerAdapter) UpdateTurf(ctx context.Context, turfID int64, upd models.TurfUpdate) (models.Turf, error) {
	var updated models.Turf

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(turfID, 10)).
		SetBody(upd).
		SetResult(&updated).
		Put("/turfs/{id}")
	if err != nil {
		return models.Turf{}, fmt.Errorf("update turf request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Turf{}, err
	}

	return updated, nil
}

// DeleteTurf implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTurf(ctx context.Context, turfID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(turfID, 10)).
		Delete("/turfs/{id}")
	if err != nil {
		return fmt.Errorf("delete turf request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListBookings implements [ServerAdapter]. Only the caller's bookings are
// returned by the server.
func (h *httpServerAdapter) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)

	resp, err := h.authedRequest(ctx).
		SetResult(&bookings).
		Get("/bookings")
	if err != nil {
		return nil, fmt.Errorf("list bookings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return bookings, nil
}

// CreateBooking implements [ServerAdapter].
func (h *httpServerAdapter) CreateBooking(ctx context.Context, booking models.NewBooking) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(booking).
		Post("/bookings")
	if err != nil {
		return fmt.Errorf("create booking request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateBooking implements [ServerAdapter].
func (h *httpServerAdapter) UpdateBooking(ctx context.Context, bookingID string, upd models.BookingUpdate) (models.Booking, error) {
	var updated models.Booking

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", bookingID).
		SetBody(upd).
		SetResult(&updated).
		Put("/bookings/{id}")
	if err != nil {
		return models.Booking{}, fmt.Errorf("update booking request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Booking{}, err
	}

	return updated, nil
}

// DeleteBooking implements [ServerAdapter].
func (h *httpServerAdapter) DeleteBooking(ctx context.Context, bookingID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", bookingID).
		Delete("/bookings/{id}")
	if err != nil {
		return fmt.Errorf("delete booking request: %w", err)
	}

	return mapHTTPError(resp)
}

// ServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
