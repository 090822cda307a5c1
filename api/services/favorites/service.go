package favoritesservice

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"lolscope/pkg/kvstore"
	"lolscope/pkg/models"
	"lolscope/pkg/riotid"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Key holding the whole favorites list.
const StorageKey = "lol-favorites"

// DefaultMaxFavorites is the soft cap of the registry.
const DefaultMaxFavorites = 20

// FavoritesService keeps the favorite players in memory and writes the whole list back on every change.
// The in-memory list is authoritative: write failures are only logged.
type FavoritesService struct {
	mu        sync.RWMutex
	favorites []models.FavoritePlayer

	store        kvstore.Store
	maxFavorites int
	now          func() time.Time
	logger       zerolog.Logger
}

// FavoritesServiceDeps holds what the favorites service is built from.
type FavoritesServiceDeps struct {
	Store        kvstore.Store
	Logger       zerolog.Logger
	MaxFavorites int
	Clock        func() time.Time
}

// NewFavoritesService creates a empty registry, Load fills it from the store.
func NewFavoritesService(deps *FavoritesServiceDeps) *FavoritesService {
	maxFavorites := deps.MaxFavorites
	if maxFavorites <= 0 {
		maxFavorites = DefaultMaxFavorites
	}

	now := deps.Clock
	if now == nil {
		now = time.Now
	}

	return &FavoritesService{
		favorites:    []models.FavoritePlayer{},
		store:        deps.Store,
		maxFavorites: maxFavorites,
		now:          now,
		logger:       deps.Logger.With().Str("component", "favorites").Logger(),
	}
}

// Load replaces the registry with the persisted list.
// A missing key starts empty, a corrupt one is removed.
func (fs *FavoritesService) Load(ctx context.Context) error {
	raw, err := fs.store.Get(ctx, StorageKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var favorites []models.FavoritePlayer
	if err := json.Unmarshal(raw, &favorites); err != nil {
		fs.logger.Warn().Err(err).Msg("discarding corrupt favorites list")
		if err := fs.store.Delete(ctx, StorageKey); err != nil {
			fs.logger.Error().Err(err).Msg("couldn't remove the corrupt favorites list")
		}
		return nil
	}

	// Drop entries without a identity and duplicates.
	loaded := make([]models.FavoritePlayer, 0, len(favorites))
	seen := make(map[pair]bool, len(favorites))
	for _, favorite := range favorites {
		name, tag, err := riotid.Validate(favorite.GameName, favorite.TagLine)
		if err != nil {
			continue
		}

		p := pair{name: strings.ToLower(name), tag: strings.ToLower(tag)}
		if seen[p] {
			continue
		}
		seen[p] = true

		favorite.Id = riotid.Key(name, tag)
		favorite.GameName = name
		favorite.TagLine = tag
		loaded = append(loaded, favorite)
	}

	fs.mu.Lock()
	fs.favorites = loaded
	fs.mu.Unlock()

	fs.logger.Info().Int("count", len(loaded)).Msg("favorites loaded")
	return nil
}

// List returns a copy of the favorites, most recently searched first.
func (fs *FavoritesService) List() []models.FavoritePlayer {
	fs.mu.RLock()
	result := slices.Clone(fs.favorites)
	fs.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastSearchedAt.After(result[j].LastSearchedAt)
	})
	return result
}

// Get returns the favorite matching the pair.
func (fs *FavoritesService) Get(gameName, tagLine string) (models.FavoritePlayer, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	index := fs.indexOf(gameName, tagLine)
	if index < 0 {
		return models.FavoritePlayer{}, false
	}
	return fs.favorites[index], true
}

// IsFavorite checks the pair ignoring case.
func (fs *FavoritesService) IsFavorite(gameName, tagLine string) bool {
	_, ok := fs.Get(gameName, tagLine)
	return ok
}

// Add creates a favorite unless the pair is already present.
// On a full registry the least recently searched favorite is evicted.
func (fs *FavoritesService) Add(ctx context.Context, gameName, tagLine string, profileIconId *int) (bool, error) {
	name, tag, err := riotid.Validate(gameName, tagLine)
	if err != nil {
		return false, err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.indexOf(name, tag) >= 0 {
		return false, nil
	}

	if len(fs.favorites) >= fs.maxFavorites {
		fs.evictOldest()
	}

	fs.favorites = append(fs.favorites, models.FavoritePlayer{
		Id:             riotid.Key(name, tag),
		GameName:       name,
		TagLine:        tag,
		ProfileIconId:  copyIcon(profileIconId),
		LastSearchedAt: fs.now(),
	})
	fs.persist(ctx)

	return true, nil
}

// Remove deletes the favorite matching the pair, if any.
func (fs *FavoritesService) Remove(ctx context.Context, gameName, tagLine string) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	index := fs.indexOf(gameName, tagLine)
	if index < 0 {
		return false
	}

	fs.favorites = slices.Delete(fs.favorites, index, index+1)
	fs.persist(ctx)

	return true
}

// Touch refreshes the search time and icon of a existing favorite.
// Players that aren't favorites are left alone.
func (fs *FavoritesService) Touch(ctx context.Context, gameName, tagLine string, profileIconId *int) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	index := fs.indexOf(gameName, tagLine)
	if index < 0 {
		return false
	}

	fs.favorites[index].LastSearchedAt = fs.now()
	if profileIconId != nil {
		fs.favorites[index].ProfileIconId = copyIcon(profileIconId)
	}
	fs.persist(ctx)

	return true
}

// pair is the case folded identity of a favorite.
type pair struct {
	name string
	tag  string
}

// indexOf must be called with the lock held.
func (fs *FavoritesService) indexOf(gameName, tagLine string) int {
	return slices.IndexFunc(fs.favorites, func(favorite models.FavoritePlayer) bool {
		return riotid.Equal(favorite.GameName, favorite.TagLine, gameName, tagLine)
	})
}

// evictOldest must be called with the write lock held.
func (fs *FavoritesService) evictOldest() {
	oldest := 0
	for i, favorite := range fs.favorites {
		if favorite.LastSearchedAt.Before(fs.favorites[oldest].LastSearchedAt) {
			oldest = i
		}
	}

	fs.logger.Info().Str("id", fs.favorites[oldest].Id).Msg("favorites full, evicting the oldest entry")
	fs.favorites = slices.Delete(fs.favorites, oldest, oldest+1)
}

// persist writes the whole list, must be called with the write lock held.
func (fs *FavoritesService) persist(ctx context.Context) {
	raw, err := json.Marshal(fs.favorites)
	if err != nil {
		fs.logger.Error().Err(err).Msg("couldn't serialize the favorites")
		return
	}

	if err := fs.store.Set(ctx, StorageKey, raw, 0); err != nil {
		fs.logger.Error().Err(err).Msg("couldn't persist the favorites")
	}
}

func copyIcon(icon *int) *int {
	if icon == nil {
		return nil
	}
	value := *icon
	return &value
}
