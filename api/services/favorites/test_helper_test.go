package favoritesservice

import (
	"testing"
	"time"

	"lolscope/pkg/kvstore"

	"github.com/rs/zerolog"
)

// Helper creating a service over a memory store with a clock advancing one minute per call.
func setupTestService(t *testing.T) (*FavoritesService, *kvstore.MemoryStore) {
	t.Helper()

	store := kvstore.NewMemoryStore(time.Hour)
	t.Cleanup(func() { store.Close() })

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	service := NewFavoritesService(&FavoritesServiceDeps{
		Store:        store,
		Logger:       zerolog.Nop(),
		MaxFavorites: 3,
		Clock: func() time.Time {
			now = now.Add(time.Minute)
			return now
		},
	})

	return service, store
}
