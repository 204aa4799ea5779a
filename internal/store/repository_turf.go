package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/models"
)

type turfRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTurfRepository constructs a SQL-backed [TurfRepository].
func NewTurfRepository(db *DB, logger *logger.Logger) TurfRepository {
	logger.Debug().Msg("creating turf repository")
	return &turfRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTurf(row rowScanner) (models.Turf, error) {
	var t models.Turf
	err := row.Scan(&t.TurfID, &t.Name, &t.Location, &t.Price)
	return t, err
}

func (r *turfRepository) CreateTurf(ctx context.Context, turf models.Turf) (models.Turf, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateTurfQuery(r.db.builder, turf)
	if err != nil {
		log.Err(err).Str("func", "*turfRepository.CreateTurf").Msg("error building query")
		return models.Turf{}, err
	}

	created, err := scanTurf(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*turfRepository.CreateTurf").Msg("error inserting turf")
		return models.Turf{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *turfRepository) ListTurfs(ctx context.Context) ([]models.Turf, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTurfsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*turfRepository.ListTurfs").Msg("error building query")
		return nil, err
	}

	turfs, err := withRetry(ctx, r.db.errorClassificator, func() ([]models.Turf, error) {
		return r.queryTurfs(ctx, query, args)
	})
	if err != nil {
		log.Err(err).Str("func", "*turfRepository.ListTurfs").Msg("error listing turfs")
		return nil, err
	}

	return turfs, nil
}

func (r *turfRepository) queryTurfs(ctx context.Context, query string, args []any) ([]models.Turf, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	turfs := make([]models.Turf, 0)
	for rows.Next() {
		t, err := scanTurf(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		turfs = append(turfs, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return turfs, nil
}

func (r *turfRepository) GetTurf(ctx context.Context, turfID int64) (models.Turf, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTurfQuery(r.db.builder, turfID)
	if err != nil {
		log.Err(err).Str("func", "*turfRepository.GetTurf").Msg("error building query")
		return models.Turf{}, err
	}

	turf, err := withRetry(ctx, r.db.errorClassificator, func() (models.Turf, error) {
		return scanTurf(r.db.QueryRowContext(ctx, query, args...))
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Turf{}, ErrTurfNotFound
		}
		log.Err(err).Str("func", "*turfRepository.GetTurf").Msg("error selecting turf")
		return models.Turf{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return turf, nil
}

// UpdateTurf applies upd and returns the turf as stored. An empty update
// returns the current turf unchanged.
func (r *turfRepository) UpdateTurf(ctx context.Context, turfID int64, upd models.TurfUpdate) (models.Turf, error) {
	if upd.IsEmpty() {
		return r.GetTurf(ctx, turfID)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTurfQuery(r.db.builder, turfID, upd)
	if err != nil {
		log.Err(err).Str("func", "*turfRepository.UpdateTurf").Msg("error building query")
		return models.Turf{}, err
	}

	updated, err := scanTurf(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Turf{}, ErrTurfNotFound
		}
		log.Err(err).Str("func", "*turfRepository.UpdateTurf").Msg("error updating turf")
		return models.Turf{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *turfRepository) DeleteTurf(ctx context.Context, turfID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTurfQuery(r.db.builder, turfID)
	if err != nil {
		log.Err(err).Str("func", "*turfRepository.DeleteTurf").Msg("error building query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*turfRepository.DeleteTurf").Msg("error deleting turf")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*turfRepository.DeleteTurf").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTurfNotFound
	}

	return nil
}
