package testutil

import (
	"context"
	"testing"
	"time"

	"lolscope/fetcher/data"
	"lolscope/pkg/models"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Provider client mock used on the Player service tests.
// ============================================================================

type MockRiotClient struct {
	mock.Mock
}

func (m *MockRiotClient) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*data.Account, error) {
	args := m.Called(ctx, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*data.Account), args.Error(1)
}

func (m *MockRiotClient) GetSummonerByPuuid(ctx context.Context, puuid string) (*data.SummonerByPuuid, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*data.SummonerByPuuid), args.Error(1)
}

func (m *MockRiotClient) GetLeagueEntriesBySummonerId(ctx context.Context, summonerId string) ([]data.LeagueEntry, error) {
	args := m.Called(ctx, summonerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]data.LeagueEntry), args.Error(1)
}

func (m *MockRiotClient) GetLeagueEntriesByPuuid(ctx context.Context, puuid string) ([]data.LeagueEntry, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]data.LeagueEntry), args.Error(1)
}

func (m *MockRiotClient) GetMatchIds(ctx context.Context, puuid string, start int, count int) ([]string, error) {
	args := m.Called(ctx, puuid, start, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRiotClient) GetMatch(ctx context.Context, matchId string) (*models.Match, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

// ============================================================================
// Storage mock used to inject backend faults.
// ============================================================================

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}

// ============================================================================
// Service mocks used on the handler tests.
// ============================================================================

type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) GetPlayerViewModel(ctx context.Context, gameName, tagLine string) (*models.Summoner, error) {
	args := m.Called(ctx, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Summoner), args.Error(1)
}

func (m *MockPlayerService) Refresh(ctx context.Context, gameName, tagLine string) (*models.Summoner, error) {
	args := m.Called(ctx, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Summoner), args.Error(1)
}

func (m *MockPlayerService) Invalidate(ctx context.Context, gameName, tagLine string) error {
	return m.Called(ctx, gameName, tagLine).Error(0)
}

func (m *MockPlayerService) ClearCache(ctx context.Context) int {
	return m.Called(ctx).Int(0)
}

type MockFavoritesService struct {
	mock.Mock
}

func (m *MockFavoritesService) List() []models.FavoritePlayer {
	return m.Called().Get(0).([]models.FavoritePlayer)
}

func (m *MockFavoritesService) Get(gameName, tagLine string) (models.FavoritePlayer, bool) {
	args := m.Called(gameName, tagLine)
	return args.Get(0).(models.FavoritePlayer), args.Bool(1)
}

func (m *MockFavoritesService) IsFavorite(gameName, tagLine string) bool {
	return m.Called(gameName, tagLine).Bool(0)
}

func (m *MockFavoritesService) Add(ctx context.Context, gameName, tagLine string, profileIconId *int) (bool, error) {
	args := m.Called(ctx, gameName, tagLine, profileIconId)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoritesService) Remove(ctx context.Context, gameName, tagLine string) bool {
	return m.Called(ctx, gameName, tagLine).Bool(0)
}

func (m *MockFavoritesService) Touch(ctx context.Context, gameName, tagLine string, profileIconId *int) bool {
	return m.Called(ctx, gameName, tagLine, profileIconId).Bool(0)
}
