package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/models"
)

var userRowColumns = []string{"user_id", "email", "password_hash", "created_at"}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestUserRepository_CreateUser_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	user := models.User{Email: "john@example.com", PasswordHash: "hash", CreatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email,password_hash,created_at)")).
		WithArgs(user.Email, user.PasswordHash, now).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, user.Email, user.PasswordHash, now))

	created, err := repo.CreateUser(testContext(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, user.Email, created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(testContext(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserRepository_CreateUser_DriverError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(testContext(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserRepository_FindUserByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, email, password_hash, created_at FROM users WHERE email = $1")).
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(5, "john@example.com", "hash", now))

	found, err := repo.FindUserByEmail(testContext(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(5), found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(testContext(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_SQLite_DuplicateEmail(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := testContext()

	user := models.User{Email: "a@b.c", PasswordHash: "h", CreatedAt: time.Now().UTC()}
	created, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Positive(t, created.UserID)

	_, err = repo.CreateUser(ctx, user)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := repo.FindUserByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
}
