package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/service"
	"github.com/MKhiriev/go-turf-booking/models"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	registerFn    func(ctx context.Context, c models.Credentials) (models.User, error)
	loginFn       func(ctx context.Context, c models.Credentials) (models.User, error)
	createTokenFn func(ctx context.Context, u models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, token string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, c models.Credentials) (models.User, error) {
	return m.registerFn(ctx, c)
}

func (m *mockAuthService) Login(ctx context.Context, c models.Credentials) (models.User, error) {
	return m.loginFn(ctx, c)
}

func (m *mockAuthService) CreateToken(ctx context.Context, u models.User) (models.Token, error) {
	return m.createTokenFn(ctx, u)
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{UserID: 1}, nil
	}
	return m.parseTokenFn(ctx, token)
}

// ---- Mock: TurfService ----

type mockTurfService struct {
	createFn func(ctx context.Context, t models.NewTurf) (models.Turf, error)
	listFn   func(ctx context.Context) ([]models.Turf, error)
	updateFn func(ctx context.Context, id int64, upd models.TurfUpdate) (models.Turf, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockTurfService) CreateTurf(ctx context.Context, t models.NewTurf) (models.Turf, error) {
	return m.createFn(ctx, t)
}

func (m *mockTurfService) ListTurfs(ctx context.Context) ([]models.Turf, error) {
	return m.listFn(ctx)
}

func (m *mockTurfService) UpdateTurf(ctx context.Context, id int64, upd models.TurfUpdate) (models.Turf, error) {
	return m.updateFn(ctx, id, upd)
}

func (m *mockTurfService) DeleteTurf(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// ---- Mock: BookingService ----

type mockBookingService struct {
	createFn func(ctx context.Context, userID int64, b models.NewBooking) (models.Booking, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Booking, error)
	updateFn func(ctx context.Context, userID int64, id string, upd models.BookingUpdate) (models.Booking, error)
	deleteFn func(ctx context.Context, userID int64, id string) error
}

func (m *mockBookingService) CreateBooking(ctx context.Context, userID int64, b models.NewBooking) (models.Booking, error) {
	return m.createFn(ctx, userID, b)
}

func (m *mockBookingService) ListBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	return m.listFn(ctx, userID)
}

func (m *mockBookingService) UpdateBooking(ctx context.Context, userID int64, id string, upd models.BookingUpdate) (models.Booking, error) {
	return m.updateFn(ctx, userID, id, upd)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, userID int64, id string) error {
	return m.deleteFn(ctx, userID, id)
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Mock: HealthService ----

type mockHealthService struct {
	err error
}

func (m *mockHealthService) CheckReadiness(_ context.Context) error {
	return m.err
}

// ---- Helpers ----

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:        ":0",
		CORSAllowedOrigins: []string{"*"},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	if services.HealthService == nil {
		services.HealthService = &mockHealthService{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	return NewHandler(services, testServerConfig(), logger.Nop()).Init()
}

func doRequest(router http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
