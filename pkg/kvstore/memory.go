package kvstore

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps the entries in memory with a background cleanup of expired keys.
type MemoryStore struct {
	memoryCache   sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	closeOnce     sync.Once
	now           func() time.Time
}

// Simple memory item.
type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// expired reports if the item has a expiration and it was reached.
func (i *memoryItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}

// NewMemoryStore creates a new memory store.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	ctx, cancel := context.WithCancel(context.Background())
	ms := &MemoryStore{
		cancel:        cancel,
		cleanupTicker: time.NewTicker(cleanupInterval),
		ctx:           ctx,
		now:           time.Now,
	}
	ms.startCleanupWorker()

	return ms
}

// startCleanupWorker starts the background worker for memory cleaning.
func (ms *MemoryStore) startCleanupWorker() {
	ms.wg.Add(1)
	go func() {
		defer ms.wg.Done()
		for {
			select {
			case <-ms.cleanupTicker.C:
				ms.cleanup()
			case <-ms.ctx.Done():
				return
			}
		}
	}()
}

// cleanup go through each key and clean any expired key.
func (ms *MemoryStore) cleanup() {
	now := ms.now()
	ms.memoryCache.Range(func(key, value any) bool {
		if value.(*memoryItem).expired(now) {
			ms.memoryCache.Delete(key)
		}
		return true
	})
}

// Close shutdown the cleanup worker.
func (ms *MemoryStore) Close() error {
	ms.closeOnce.Do(func() {
		ms.cancel()
		ms.cleanupTicker.Stop()
		ms.wg.Wait()
	})
	return nil
}

// Get returns the value of a key.
func (ms *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	value, exists := ms.memoryCache.Load(key)
	if !exists {
		return nil, ErrNotFound
	}

	item := value.(*memoryItem)

	// If the expiration was reached, remove the key.
	if item.expired(ms.now()) {
		ms.memoryCache.CompareAndDelete(key, value)
		return nil, ErrNotFound
	}

	return append([]byte(nil), item.value...), nil
}

// Set a given key on the store.
func (ms *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	item := &memoryItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiresAt = ms.now().Add(ttl)
	}

	ms.memoryCache.Store(key, item)
	return nil
}

// Delete removes a key.
func (ms *MemoryStore) Delete(_ context.Context, key string) error {
	ms.memoryCache.Delete(key)
	return nil
}

// Keys lists the live keys starting with prefix.
func (ms *MemoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	now := ms.now()
	var keys []string
	ms.memoryCache.Range(func(key, value any) bool {
		k := key.(string)
		if strings.HasPrefix(k, prefix) && !value.(*memoryItem).expired(now) {
			keys = append(keys, k)
		}
		return true
	})
	return keys, nil
}
