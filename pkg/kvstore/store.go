// Package kvstore provides the persistent key value storage used by the cache and the favorites.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lolscope/pkg/config"
	"lolscope/pkg/database"
	"lolscope/pkg/redis"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a key is absent or expired.
var ErrNotFound = errors.New("key not found")

// Store is a byte oriented key value store.
// A ttl of zero stores the value without expiration.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Supported backends.
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// New creates the store selected by the configuration.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Store, error) {
	logger = logger.With().Str("backend", cfg.Store.Backend).Logger()

	switch cfg.Store.Backend {
	case BackendMemory:
		logger.Info().Msg("using in-memory store, data will not survive restarts")
		return NewMemoryStore(time.Minute), nil

	case BackendBadger:
		store, err := OpenBadgerStore(cfg.Store.BadgerPath)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.Store.BadgerPath).Msg("opened badger store")
		return store, nil

	case BackendRedis:
		client := redis.NewClient(cfg.Redis)
		if err := client.Ping(ctx); err != nil {
			client.Close()
			return nil, fmt.Errorf("couldn't reach redis: %w", err)
		}
		logger.Info().Str("host", cfg.Redis.Host).Msg("connected to redis")
		return NewRedisStore(client), nil

	case BackendPostgres:
		db, err := database.NewConnection(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		logger.Info().Msg("connected to postgres")
		return NewPostgresStore(db), nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
