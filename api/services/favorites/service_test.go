package favoritesservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"lolscope/api/services/testutil"
	"lolscope/pkg/kvstore"
	"lolscope/pkg/models"
	"lolscope/pkg/riotid"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(value int) *int {
	return &value
}

func TestNewFavoritesServiceDefaults(t *testing.T) {
	store := kvstore.NewMemoryStore(time.Hour)
	defer store.Close()

	service := NewFavoritesService(&FavoritesServiceDeps{Store: store, Logger: zerolog.Nop()})

	assert.Equal(t, DefaultMaxFavorites, service.maxFavorites)
	assert.NotNil(t, service.now)
	assert.Empty(t, service.List())
}

func TestAddAndList(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	added, err := service.Add(ctx, "Faker", "#KR1", intPtr(6))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = service.Add(ctx, "Caps", "EUW", nil)
	require.NoError(t, err)
	assert.True(t, added)

	// Same identity with different case is a no-op.
	added, err = service.Add(ctx, "faker", "kr1", intPtr(7))
	require.NoError(t, err)
	assert.False(t, added)

	favorites := service.List()
	require.Len(t, favorites, 2)
	assert.Equal(t, "caps-euw", favorites[0].Id)
	assert.Equal(t, "faker-kr1", favorites[1].Id)
	assert.Equal(t, "KR1", favorites[1].TagLine)
	assert.Equal(t, 6, *favorites[1].ProfileIconId)
	assert.Nil(t, favorites[0].ProfileIconId)
}

func TestAddInvalidIdentity(t *testing.T) {
	service, _ := setupTestService(t)

	added, err := service.Add(context.Background(), " ", "#", nil)

	assert.ErrorIs(t, err, riotid.ErrInvalidRiotId)
	assert.False(t, added)
	assert.Empty(t, service.List())
}

func TestIsFavorite(t *testing.T) {
	service, _ := setupTestService(t)
	service.Add(context.Background(), "Faker", "KR1", nil)

	tests := []struct {
		name     string
		gameName string
		tagLine  string
		expected bool
	}{
		{name: "exact", gameName: "Faker", tagLine: "KR1", expected: true},
		{name: "different case", gameName: "FAKER", tagLine: "kr1", expected: true},
		{name: "hash tag", gameName: "Faker", tagLine: "#KR1", expected: true},
		{name: "other tag", gameName: "Faker", tagLine: "KR2", expected: false},
		{name: "unknown", gameName: "Nobody", tagLine: "000", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.IsFavorite(tt.gameName, tt.tagLine))
		})
	}
}

func TestRemove(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()
	service.Add(ctx, "Faker", "KR1", nil)

	assert.False(t, service.Remove(ctx, "Nobody", "000"))
	assert.True(t, service.Remove(ctx, "faker", "KR1"))
	assert.False(t, service.IsFavorite("Faker", "KR1"))
	assert.False(t, service.Remove(ctx, "Faker", "KR1"))
}

func TestTouch(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()
	service.Add(ctx, "Faker", "KR1", intPtr(1))
	service.Add(ctx, "Caps", "EUW", nil)

	// Faker becomes the most recently searched and gets the new icon.
	assert.True(t, service.Touch(ctx, "FAKER", "#kr1", intPtr(2)))

	favorites := service.List()
	assert.Equal(t, "faker-kr1", favorites[0].Id)
	assert.Equal(t, 2, *favorites[0].ProfileIconId)

	// A missing icon keeps the previous one.
	assert.True(t, service.Touch(ctx, "Faker", "KR1", nil))
	favorite, ok := service.Get("Faker", "KR1")
	require.True(t, ok)
	assert.Equal(t, 2, *favorite.ProfileIconId)

	// Touch never creates entries.
	assert.False(t, service.Touch(ctx, "Nobody", "000", intPtr(3)))
	assert.Len(t, service.List(), 2)
}

func TestAddEvictsOldestOnFullRegistry(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	service.Add(ctx, "First", "1", nil)
	service.Add(ctx, "Second", "2", nil)
	service.Add(ctx, "Third", "3", nil)
	service.Touch(ctx, "First", "1", nil)

	added, err := service.Add(ctx, "Fourth", "4", nil)
	require.NoError(t, err)
	assert.True(t, added)

	assert.Len(t, service.List(), 3)
	assert.False(t, service.IsFavorite("Second", "2"))
	assert.True(t, service.IsFavorite("First", "1"))
	assert.True(t, service.IsFavorite("Fourth", "4"))
}

func TestMutationsPersistWholeList(t *testing.T) {
	service, store := setupTestService(t)
	ctx := context.Background()

	service.Add(ctx, "Faker", "KR1", nil)
	service.Add(ctx, "Caps", "EUW", nil)
	service.Remove(ctx, "Faker", "KR1")

	raw, err := store.Get(ctx, StorageKey)
	require.NoError(t, err)

	var persisted []models.FavoritePlayer
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "caps-euw", persisted[0].Id)
}

func TestLoad(t *testing.T) {
	service, store := setupTestService(t)
	ctx := context.Background()

	raw := `[
		{"id":"faker-kr1","gameName":"Faker","tagLine":"KR1","lastSearchedAt":"2024-01-01T00:00:00Z"},
		{"id":"dup","gameName":"FAKER","tagLine":"#kr1","lastSearchedAt":"2024-01-02T00:00:00Z"},
		{"id":"","gameName":"","tagLine":"EUW","lastSearchedAt":"2024-01-03T00:00:00Z"},
		{"gameName":"Caps","tagLine":"#EUW","profileIconId":5,"lastSearchedAt":"2024-01-04T00:00:00Z"}
	]`
	require.NoError(t, store.Set(ctx, StorageKey, []byte(raw), 0))

	require.NoError(t, service.Load(ctx))

	favorites := service.List()
	require.Len(t, favorites, 2)
	assert.Equal(t, "caps-euw", favorites[0].Id)
	assert.Equal(t, "EUW", favorites[0].TagLine)
	assert.Equal(t, 5, *favorites[0].ProfileIconId)
	assert.Equal(t, "faker-kr1", favorites[1].Id)
}

func TestDistinctPairsSharingAKeyString(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	added, err := service.Add(ctx, "a-b", "c", nil)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = service.Add(ctx, "a", "b-c", nil)
	assert.ErrorIs(t, err, riotid.ErrInvalidRiotId)
	assert.False(t, added)

	assert.Len(t, service.List(), 1)
	assert.True(t, service.IsFavorite("A-B", "#c"))
	assert.False(t, service.IsFavorite("a", "b-c"))
	assert.False(t, service.Touch(ctx, "a", "b-c", nil))
	assert.False(t, service.Remove(ctx, "a", "b-c"))
	assert.Len(t, service.List(), 1)
}

func TestLoadDedupsByPairNotId(t *testing.T) {
	service, store := setupTestService(t)
	ctx := context.Background()

	raw := `[
		{"id":"same","gameName":"Faker","tagLine":"KR1","lastSearchedAt":"2024-01-02T00:00:00Z"},
		{"id":"same","gameName":"Caps","tagLine":"EUW","lastSearchedAt":"2024-01-01T00:00:00Z"},
		{"id":"other","gameName":"faker","tagLine":"kr1","lastSearchedAt":"2024-01-03T00:00:00Z"},
		{"id":"a-b-c","gameName":"a","tagLine":"b-c","lastSearchedAt":"2024-01-04T00:00:00Z"}
	]`
	require.NoError(t, store.Set(ctx, StorageKey, []byte(raw), 0))

	require.NoError(t, service.Load(ctx))

	favorites := service.List()
	require.Len(t, favorites, 2)
	assert.Equal(t, "faker-kr1", favorites[0].Id)
	assert.Equal(t, "caps-euw", favorites[1].Id)
}

func TestLoadMissingKey(t *testing.T) {
	service, _ := setupTestService(t)

	assert.NoError(t, service.Load(context.Background()))
	assert.Empty(t, service.List())
}

func TestLoadCorruptList(t *testing.T) {
	service, store := setupTestService(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, StorageKey, []byte("{not a list"), 0))

	assert.NoError(t, service.Load(ctx))
	assert.Empty(t, service.List())

	_, err := store.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestLoadStoreFailure(t *testing.T) {
	store := new(testutil.MockStore)
	service := NewFavoritesService(&FavoritesServiceDeps{Store: store, Logger: zerolog.Nop()})
	fault := errors.New("connection refused")
	store.On("Get", mock.Anything, StorageKey).Return(nil, fault)

	assert.ErrorIs(t, service.Load(context.Background()), fault)
	testutil.VerifyAllMocks(t, store)
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	store := new(testutil.MockStore)
	service := NewFavoritesService(&FavoritesServiceDeps{Store: store, Logger: zerolog.Nop()})
	store.On("Set", mock.Anything, StorageKey, mock.Anything, time.Duration(0)).Return(errors.New("disk full"))

	added, err := service.Add(context.Background(), "Faker", "KR1", nil)

	assert.NoError(t, err)
	assert.True(t, added)
	assert.True(t, service.IsFavorite("Faker", "KR1"))
	testutil.VerifyAllMocks(t, store)
}

func TestListReturnsCopy(t *testing.T) {
	service, _ := setupTestService(t)
	service.Add(context.Background(), "Faker", "KR1", nil)

	favorites := service.List()
	favorites[0].GameName = "changed"

	favorite, _ := service.Get("Faker", "KR1")
	assert.Equal(t, "Faker", favorite.GameName)
}
