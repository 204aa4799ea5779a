package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-turf-booking/models"
)

const (
	usersTable    = "users"
	turfsTable    = "turfs"
	bookingsTable = "bookings"
)

var (
	userColumns    = []string{"user_id", "email", "password_hash", "created_at"}
	turfColumns    = []string{"turf_id", "name", "location", "price"}
	bookingColumns = []string{"id", "turf_name", "location", "price", "booking_date", "booking_time", "user_id", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func wrapBuildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

// ── users ────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("email", "password_hash", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// ── turfs ────────────────────────────────────────────────────────────────────

func buildCreateTurfQuery(b sq.StatementBuilderType, turf models.Turf) (string, []any, error) {
	query, args, err := b.Insert(turfsTable).
		Columns("name", "location", "price").
		Values(turf.Name, turf.Location, turf.Price).
		Suffix(returning(turfColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildListTurfsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(turfColumns...).
		From(turfsTable).
		OrderBy("turf_id").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildGetTurfQuery(b sq.StatementBuilderType, turfID int64) (string, []any, error) {
	query, args, err := b.Select(turfColumns...).
		From(turfsTable).
		Where(sq.Eq{"turf_id": turfID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildUpdateTurfQuery sets only the non-nil fields of upd. The caller must
// not pass an empty update: squirrel rejects an UPDATE without SET.
func buildUpdateTurfQuery(b sq.StatementBuilderType, turfID int64, upd models.TurfUpdate) (string, []any, error) {
	ub := b.Update(turfsTable)
	if upd.Name != nil {
		ub = ub.Set("name", *upd.Name)
	}
	if upd.Location != nil {
		ub = ub.Set("location", *upd.Location)
	}
	if upd.Price != nil {
		ub = ub.Set("price", *upd.Price)
	}

	query, args, err := ub.
		Where(sq.Eq{"turf_id": turfID}).
		Suffix(returning(turfColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteTurfQuery(b sq.StatementBuilderType, turfID int64) (string, []any, error) {
	query, args, err := b.Delete(turfsTable).
		Where(sq.Eq{"turf_id": turfID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// ── bookings ─────────────────────────────────────────────────────────────────

func buildCreateBookingQuery(b sq.StatementBuilderType, booking models.Booking) (string, []any, error) {
	query, args, err := b.Insert(bookingsTable).
		Columns(bookingColumns...).
		Values(booking.ID, booking.TurfName, booking.Location, booking.Price,
			booking.Date, booking.Time, booking.UserID, booking.CreatedAt).
		Suffix(returning(bookingColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildListBookingsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.Select(bookingColumns...).
		From(bookingsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildGetBookingQuery(b sq.StatementBuilderType, userID int64, bookingID string) (string, []any, error) {
	query, args, err := b.Select(bookingColumns...).
		From(bookingsTable).
		Where(sq.Eq{"id": bookingID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildUpdateBookingQuery sets only the non-nil fields of upd, scoped to the
// owner. id and user_id are never part of the SET clause.
func buildUpdateBookingQuery(b sq.StatementBuilderType, userID int64, bookingID string, upd models.BookingUpdate) (string, []any, error) {
	ub := b.Update(bookingsTable)
	if upd.TurfName != nil {
		ub = ub.Set("turf_name", *upd.TurfName)
	}
	if upd.Location != nil {
		ub = ub.Set("location", *upd.Location)
	}
	if upd.Price != nil {
		ub = ub.Set("price", *upd.Price)
	}
	if upd.Date != nil {
		ub = ub.Set("booking_date", *upd.Date)
	}
	if upd.Time != nil {
		ub = ub.Set("booking_time", *upd.Time)
	}

	query, args, err := ub.
		Where(sq.Eq{"id": bookingID, "user_id": userID}).
		Suffix(returning(bookingColumns)).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteBookingQuery(b sq.StatementBuilderType, userID int64, bookingID string) (string, []any, error) {
	query, args, err := b.Delete(bookingsTable).
		Where(sq.Eq{"id": bookingID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}
