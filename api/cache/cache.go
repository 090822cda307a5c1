package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"lolscope/pkg/kvstore"
	"lolscope/pkg/metrics"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Default values used when none is given.
const (
	DefaultPrefix = "lol-app-cache-"
	DefaultTTL    = 5 * time.Minute
)

// Entry is the envelope persisted for every cached value.
// Timestamps are unix milliseconds.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	Expiry    int64           `json:"expiry"`
}

// Cache is a TTL cache over a key value store.
// Storage faults are logged and reported as misses.
type Cache struct {
	store      kvstore.Store
	prefix     string
	defaultTTL time.Duration
	now        func() time.Time
	logger     zerolog.Logger
}

// Option customizes a cache.
type Option func(*Cache)

// WithClock replaces the clock used for the expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithDefaultTTL sets the ttl used when a non positive one is given.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.defaultTTL = ttl
		}
	}
}

// NewCache creates a cache namespaced by prefix.
func NewCache(store kvstore.Store, prefix string, logger zerolog.Logger, opts ...Option) *Cache {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	c := &Cache{
		store:      store,
		prefix:     prefix,
		defaultTTL: DefaultTTL,
		now:        time.Now,
		logger:     logger.With().Str("component", "cache").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GenerateKey joins the type and its params with dashes.
func GenerateKey(keyType string, params ...string) string {
	return strings.Join(append([]string{keyType}, params...), "-")
}

// Set stores the value, replacing any previous entry.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("couldn't serialize cache value")
		return
	}

	now := c.now()
	raw, err := json.Marshal(Entry{
		Data:      data,
		Timestamp: now.UnixMilli(),
		Expiry:    now.Add(ttl).UnixMilli(),
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("couldn't serialize cache entry")
		return
	}

	if err := c.store.Set(ctx, c.prefix+key, raw, ttl); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("couldn't write cache entry")
	}
}

// Get decodes the cached value into dest and reports if it was found.
// Expired and corrupt entries are removed.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	raw, err := c.store.Get(ctx, c.prefix+key)
	if errors.Is(err, kvstore.ErrNotFound) {
		metrics.RecordCacheLookup(metrics.CacheMiss)
		return false
	}
	if err != nil {
		metrics.RecordCacheLookup(metrics.CacheError)
		c.logger.Warn().Err(err).Str("key", key).Msg("couldn't read cache entry")
		return false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil || entry.Data == nil {
		c.discardCorrupt(ctx, key, err)
		return false
	}

	if c.now().UnixMilli() > entry.Expiry {
		metrics.RecordCacheLookup(metrics.CacheExpired)
		c.Remove(ctx, key)
		return false
	}

	if err := json.Unmarshal(entry.Data, dest); err != nil {
		c.discardCorrupt(ctx, key, err)
		return false
	}

	metrics.RecordCacheLookup(metrics.CacheHit)
	return true
}

// discardCorrupt removes a entry that couldn't be decoded.
func (c *Cache) discardCorrupt(ctx context.Context, key string, err error) {
	metrics.RecordCacheLookup(metrics.CacheCorrupt)
	c.logger.Warn().Err(err).Str("key", key).Msg("removing corrupt cache entry")
	c.Remove(ctx, key)
}

// Remove deletes a entry, absent keys are ignored.
func (c *Cache) Remove(ctx context.Context, key string) {
	if err := c.store.Delete(ctx, c.prefix+key); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("couldn't remove cache entry")
	}
}

// ClearAll deletes every entry under the cache prefix.
func (c *Cache) ClearAll(ctx context.Context) int {
	keys, err := c.store.Keys(ctx, c.prefix)
	if err != nil {
		c.logger.Warn().Err(err).Msg("couldn't list cache entries")
		return 0
	}

	removed := 0
	for _, key := range keys {
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("couldn't remove cache entry")
			continue
		}
		removed++
	}

	c.logger.Info().Int("removed", removed).Msg("cleared cache")
	return removed
}
