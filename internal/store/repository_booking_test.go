package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/models"
)

var bookingRowColumns = []string{"id", "turf_name", "location", "price", "booking_date", "booking_time", "user_id", "created_at"}

func sampleBooking(id string, userID int64, createdAt time.Time) models.Booking {
	return models.Booking{
		ID:        id,
		TurfName:  "Arena",
		Location:  "North",
		Price:     40,
		Date:      "2026-05-01",
		Time:      "18:00",
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

func TestBookingRepository_CreateBooking_IDConflict(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (id,turf_name,location,price,booking_date,booking_time,user_id,created_at)")).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateBooking(testContext(), sampleBooking("dup", 1, time.Now()))
	assert.ErrorIs(t, err, ErrBookingIDConflict)
}

func TestBookingRepository_GetBooking_ScopedByOwner(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1 AND user_id = $2")).
		WithArgs("b-1", int64(2)).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns))

	_, err := repo.GetBooking(testContext(), 2, "b-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_DeleteBooking_ScopedByOwner(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1 AND user_id = $2")).
		WithArgs("b-1", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteBooking(testContext(), 2, "b-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingRepository_ListBookings_EmptyIsNotNil(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("FROM bookings WHERE user_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns))

	bookings, err := repo.ListBookings(testContext(), 1)
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestBookingRepository_SQLite_OwnerScoping(t *testing.T) {
	repo := NewBookingRepository(newSQLiteDB(t), logger.Nop())
	ctx := testContext()

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	const owner, stranger = int64(1), int64(2)

	first, err := repo.CreateBooking(ctx, sampleBooking("b-1", owner, base))
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, sampleBooking("b-2", owner, base.Add(time.Minute)))
	require.NoError(t, err)

	_, err = repo.CreateBooking(ctx, sampleBooking("b-1", stranger, base))
	assert.ErrorIs(t, err, ErrBookingIDConflict)

	own, err := repo.ListBookings(ctx, owner)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "b-1", own[0].ID)
	assert.Equal(t, "b-2", own[1].ID)

	others, err := repo.ListBookings(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, others)

	_, err = repo.UpdateBooking(ctx, stranger, "b-1", models.BookingUpdate{Price: ptr(0.0)})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, repo.DeleteBooking(ctx, stranger, "b-1"), ErrBookingNotFound)

	unchanged, err := repo.GetBooking(ctx, owner, "b-1")
	require.NoError(t, err)
	assert.Equal(t, first.Price, unchanged.Price)

	updated, err := repo.UpdateBooking(ctx, owner, "b-1", models.BookingUpdate{Time: ptr("20:00")})
	require.NoError(t, err)
	assert.Equal(t, "20:00", updated.Time)
	assert.Equal(t, owner, updated.UserID)
	assert.Equal(t, "2026-05-01", updated.Date)

	require.NoError(t, repo.DeleteBooking(ctx, owner, "b-1"))
	_, err = repo.GetBooking(ctx, owner, "b-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
