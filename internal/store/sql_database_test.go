package store

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/migrations"
	"github.com/MKhiriev/go-turf-booking/models"
)

func TestNewDB_PlaceholderFormatPerDialect(t *testing.T) {
	tests := []struct {
		name      string
		dialect   string
		wantQuery string
	}{
		{"postgres uses dollar placeholders", migrations.DialectPostgres, "SELECT id FROM bookings WHERE user_id = $1"},
		{"sqlite uses question marks", migrations.DialectSQLite, "SELECT id FROM bookings WHERE user_id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _ := newTestDB(t)
			db := newDB(conn, tt.dialect, NewSQLiteErrorClassifier(), logger.Nop())

			query, args, err := db.builder.Select("id").From("bookings").Where(sq.Eq{"user_id": 1}).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{1}, args)
			assert.Equal(t, tt.dialect, db.Dialect())
		})
	}
}

func TestNewDB_PostgresRepositorySendsDollarPlaceholders(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())
	repo := NewTurfRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT turf_id, name, location, price FROM turfs WHERE turf_id = $1").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(turfRowColumns).AddRow(5, "Arena", "North", 40.0))

	turf, err := repo.GetTurf(testContext(), 5)
	require.NoError(t, err)
	assert.Equal(t, models.Turf{TurfID: 5, Name: "Arena", Location: "North", Price: 40}, turf)
	assert.NoError(t, mock.ExpectationsWereMet())
}
