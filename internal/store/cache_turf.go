package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/models"
)

const cacheKeyPrefix = "turfbooking"

// turfListKey returns the redis key holding the JSON-encoded turf list.
func turfListKey() string {
	return fmt.Sprintf("%s:turfs:all", cacheKeyPrefix)
}

// turfGenerationKey returns the redis key counting turf list invalidations.
func turfGenerationKey() string {
	return fmt.Sprintf("%s:turfs:generation", cacheKeyPrefix)
}

var errStaleTurfList = errors.New("turf list changed while loading")

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// NewRedisClient parses cfg.RedisURL and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("invalid redis url")
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Debug().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// cachedTurfRepository decorates a [TurfRepository] with a read-through
// cache of the full turf list. Redis failures never fail a request: reads
// fall through to the wrapped repository and writes only log.
type cachedTurfRepository struct {
	next   TurfRepository
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedTurfRepository wraps next with a redis-backed list cache.
func NewCachedTurfRepository(next TurfRepository, client *redis.Client, ttl time.Duration, logger *logger.Logger) TurfRepository {
	logger.Debug().Dur("ttl", ttl).Msg("creating cached turf repository")
	return &cachedTurfRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *cachedTurfRepository) ListTurfs(ctx context.Context) ([]models.Turf, error) {
	log := logger.FromContext(ctx)

	data, err := c.client.Get(ctx, turfListKey()).Bytes()
	switch {
	case err == nil:
		turfs := make([]models.Turf, 0)
		if err = json.Unmarshal(data, &turfs); err == nil {
			return turfs, nil
		}
		log.Warn().Err(err).Str("func", "*cachedTurfRepository.ListTurfs").Msg("corrupt cache entry")
	case errors.Is(err, redis.Nil):
		// miss
	default:
		log.Warn().Err(err).Str("func", "*cachedTurfRepository.ListTurfs").Msg("cache read failed")
	}

	generation, genErr := c.generation(ctx, c.client)

	turfs, err := c.next.ListTurfs(ctx)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		log.Warn().Err(genErr).Str("func", "*cachedTurfRepository.ListTurfs").Msg("cache generation read failed")
		return turfs, nil
	}

	if err = c.store(ctx, turfs, generation); err != nil {
		log.Warn().Err(err).Str("func", "*cachedTurfRepository.ListTurfs").Msg("cache write skipped")
	}

	return turfs, nil
}

func (c *cachedTurfRepository) GetTurf(ctx context.Context, turfID int64) (models.Turf, error) {
	return c.next.GetTurf(ctx, turfID)
}

func (c *cachedTurfRepository) CreateTurf(ctx context.Context, turf models.Turf) (models.Turf, error) {
	created, err := c.next.CreateTurf(ctx, turf)
	if err != nil {
		return models.Turf{}, err
	}
	c.invalidate(ctx)
	return created, nil
}

func (c *cachedTurfRepository) UpdateTurf(ctx context.Context, turfID int64, upd models.TurfUpdate) (models.Turf, error) {
	updated, err := c.next.UpdateTurf(ctx, turfID, upd)
	if err != nil {
		return models.Turf{}, err
	}
	c.invalidate(ctx)
	return updated, nil
}

func (c *cachedTurfRepository) DeleteTurf(ctx context.Context, turfID int64) error {
	if err := c.next.DeleteTurf(ctx, turfID); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// generation reads the invalidation counter; a missing key counts as zero.
func (c *cachedTurfRepository) generation(ctx context.Context, cmd stringGetter) (int64, error) {
	n, err := cmd.Get(ctx, turfGenerationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// store writes turfs only if no invalidation happened since generation was
// read.
func (c *cachedTurfRepository) store(ctx context.Context, turfs []models.Turf, generation int64) error {
	data, err := json.Marshal(turfs)
	if err != nil {
		return err
	}

	return c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.generation(ctx, tx)
		if err != nil {
			return err
		}
		if current != generation {
			return errStaleTurfList
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, turfListKey(), data, c.ttl)
			return nil
		})
		return err
	}, turfGenerationKey())
}

func (c *cachedTurfRepository) invalidate(ctx context.Context) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, turfGenerationKey())
		pipe.Del(ctx, turfListKey())
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*cachedTurfRepository.invalidate").Msg("cache invalidation failed")
	}
}
