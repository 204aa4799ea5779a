package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the requested email.
	ErrUserNotFound = errors.New("user not found")

	// ErrTurfNotFound is returned when a query, update or delete targets a
	// turf id that does not exist.
	ErrTurfNotFound = errors.New("turf not found")

	// ErrBookingNotFound is returned when no booking matches both the
	// requested id and the caller. A booking owned by another user is
	// indistinguishable from a nonexistent one.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingIDConflict is returned when a generated booking id collides
	// with an existing primary key.
	ErrBookingIDConflict = errors.New("booking id already exists")

	// ErrUnsupportedDSN is returned when no DSN is configured.
	ErrUnsupportedDSN = errors.New("empty or unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without a result set (DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
