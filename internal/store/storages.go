package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/internal/logger"
)

// Storages aggregates every repository used by the service layer together
// with the connections that back them.
type Storages struct {
	UserRepository    UserRepository
	TurfRepository    TurfRepository
	BookingRepository BookingRepository

	DB    *DB
	Redis *redis.Client
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories. When cfg.Cache.RedisURL is set the turf
// repository is wrapped with the redis list cache. A redis that cannot be
// reached at startup is logged and skipped.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	storages := NewStoragesFromDB(db, log)

	if cfg.Cache.RedisURL != "" {
		client, err := NewRedisClient(ctx, cfg.Cache, log)
		if err != nil {
			log.Warn().Err(err).Str("func", "NewStorages").Msg("turf cache disabled")
			return storages, nil
		}
		storages.Redis = client
		storages.TurfRepository = NewCachedTurfRepository(storages.TurfRepository, client, cfg.Cache.TurfListTTL, log)
	}

	return storages, nil
}

// NewStoragesFromDB builds the repositories over an already migrated
// connection without any cache.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		TurfRepository:    NewTurfRepository(db, log),
		BookingRepository: NewBookingRepository(db, log),
		DB:                db,
	}
}

// Ping reports whether the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the database pool and the redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
