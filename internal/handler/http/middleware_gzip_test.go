package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-turf-booking/internal/service"
	"github.com/MKhiriev/go-turf-booking/internal/store"
	"github.com/MKhiriev/go-turf-booking/models"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, r io.Reader) []byte {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return data
}

func catalogRouter(t *testing.T, turfs []models.Turf) http.Handler {
	t.Helper()
	return newTestRouter(t, &service.Services{TurfService: &mockTurfService{
		listFn: func(_ context.Context) ([]models.Turf, error) { return turfs, nil },
	}})
}

func TestGZip_TurfListIsCompressedOnRequest(t *testing.T) {
	turfs := []models.Turf{
		{TurfID: 1, Name: "Arena", Location: "North", Price: 40},
		{TurfID: 2, Name: "Dome", Location: "South", Price: 55.5},
	}
	router := catalogRouter(t, turfs)

	rr := doRequest(router, http.MethodGet, "/turfs", "", "Accept-Encoding", "gzip")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Contains(t, rr.Header().Values("Vary"), "Accept-Encoding")
	assert.Empty(t, rr.Header().Get("Content-Length"))

	var got []models.Turf
	require.NoError(t, json.Unmarshal(gunzip(t, rr.Body), &got))
	assert.Equal(t, turfs, got)
}

func TestGZip_TurfListIsPlainWithoutAcceptEncoding(t *testing.T) {
	router := catalogRouter(t, []models.Turf{{TurfID: 1, Name: "Arena", Location: "North", Price: 40}})

	rr := doRequest(router, http.MethodGet, "/turfs", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `[{"_id":1,"name":"Arena","location":"North","price":40}]`, rr.Body.String())
}

func TestGZip_CompressedBookingBodyIsInflated(t *testing.T) {
	var got models.NewBooking
	router := newTestRouter(t, &service.Services{
		AuthService: authAs(4),
		BookingService: &mockBookingService{
			createFn: func(_ context.Context, userID int64, b models.NewBooking) (models.Booking, error) {
				got = b
				return b.Booking(userID), nil
			},
		},
	})

	body := gzipBytes(t, `{"turfName":"Arena","location":"North","price":40,"date":"2026-11-02","time":"18:00"}`)
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", bearer)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"message":"Booking created successfully"}`, rr.Body.String())
	assert.Equal(t, "Arena", got.TurfName)
	assert.Equal(t, "18:00", got.Time)
}

func TestGZip_CorruptBookingBodyIsRejected(t *testing.T) {
	called := false
	router := newTestRouter(t, &service.Services{
		AuthService: authAs(4),
		BookingService: &mockBookingService{
			createFn: func(_ context.Context, _ int64, b models.NewBooking) (models.Booking, error) {
				called = true
				return models.Booking{}, nil
			},
		},
	})

	rr := doRequest(router, http.MethodPost, "/bookings", `{"turfName":"Arena"}`,
		"Content-Encoding", "gzip", "Authorization", bearer)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid gzip data"}`, rr.Body.String())
}

func TestGZip_ErrorResponseKeepsStatus(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: authAs(4),
		BookingService: &mockBookingService{
			updateFn: func(_ context.Context, _ int64, _ string, _ models.BookingUpdate) (models.Booking, error) {
				return models.Booking{}, store.ErrBookingNotFound
			},
		},
	})

	rr := doRequest(router, http.MethodPut, "/bookings/b-1", `{"time":"11:00"}`,
		"Accept-Encoding", "gzip", "Authorization", bearer)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"error":"Booking not found"}`, string(gunzip(t, rr.Body)))
}

func TestGZip_ConcurrentTurfListsShareWriters(t *testing.T) {
	turfs := make([]models.Turf, 50)
	for i := range turfs {
		turfs[i] = models.Turf{TurfID: int64(i + 1), Name: strings.Repeat("turf", 10), Location: "Center", Price: 30}
	}
	router := catalogRouter(t, turfs)

	want, err := json.Marshal(turfs)
	require.NoError(t, err)

	var wg sync.WaitGroup
	bodies := make([][]byte, 20)
	for i := range bodies {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rr := doRequest(router, http.MethodGet, "/turfs", "", "Accept-Encoding", "gzip")
			if rr.Code == http.StatusOK {
				bodies[i] = rr.Body.Bytes()
			}
		}(i)
	}
	wg.Wait()

	for i, compressed := range bodies {
		require.NotNil(t, compressed, "request %d failed", i)
		assert.Less(t, len(compressed), len(want), "request %d not compressed", i)
		assert.JSONEq(t, string(want), string(gunzip(t, bytes.NewReader(compressed))), "request %d", i)
	}
}

func TestGZipResponseWriter_NoBodyIsNotEncoded(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/turfs", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := 0
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed++ }}
	assert.NoError(t, rc.Close())
	assert.Equal(t, 1, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}
