package playerservice

import (
	"testing"
	"time"

	"lolscope/api/cache"
	"lolscope/api/services/testutil"
	"lolscope/fetcher/data"
	"lolscope/pkg/config"
	"lolscope/pkg/kvstore"
	"lolscope/pkg/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

var testTTL = config.CacheConfiguration{
	PlayerTTL:   15 * time.Minute,
	AccountTTL:  15 * time.Minute,
	RankTTL:     15 * time.Minute,
	MatchIdsTTL: 10 * time.Minute,
	MatchTTL:    time.Hour,
}

// Helper to initialize the service over a memory store and a mocked provider.
func setupTestService(t *testing.T) (*PlayerService, *testutil.MockRiotClient, *cache.Cache) {
	t.Helper()

	store := kvstore.NewMemoryStore(time.Hour)
	t.Cleanup(func() { store.Close() })

	mockClient := new(testutil.MockRiotClient)
	c := cache.NewCache(store, cache.DefaultPrefix, zerolog.Nop())

	service := NewPlayerService(&PlayerServiceDeps{
		Client:         mockClient,
		Cache:          c,
		CacheConfig:    testTTL,
		MatchCount:     3,
		RequestTimeout: 5 * time.Second,
		Logger:         zerolog.Nop(),
	})

	return service, mockClient, c
}

func strPtr(value string) *string {
	return &value
}

func testMatch(matchId string) *models.Match {
	return &models.Match{
		MatchId:      matchId,
		QueueId:      420,
		GameDuration: 1800,
		Participants: []models.Participant{{Puuid: "puuid-ada", ChampionName: "Ahri", Win: true}},
	}
}

// Helper mocking every provider call of a successful lookup of Ada#EUW.
func mockSuccessfulLookup(client *testutil.MockRiotClient, matchIds []string) {
	client.On("GetAccountByRiotId", mock.Anything, "Ada", "EUW").
		Return(&data.Account{Puuid: "puuid-ada", GameName: "Ada", TagLine: "EUW"}, nil).Once()
	client.On("GetSummonerByPuuid", mock.Anything, "puuid-ada").
		Return(&data.SummonerByPuuid{Id: "summoner-ada", Puuid: "puuid-ada", ProfileIconId: 29, SummonerLevel: 120}, nil)
	client.On("GetLeagueEntriesBySummonerId", mock.Anything, "summoner-ada").
		Return([]data.LeagueEntry{
			{QueueType: strPtr("RANKED_FLEX_SR"), Tier: strPtr("DIAMOND"), Rank: strPtr("I"), LeaguePoints: 80},
			{QueueType: strPtr("RANKED_SOLO_5x5"), Tier: strPtr("GOLD"), Rank: strPtr("II"), LeaguePoints: 45, Wins: 30, Losses: 25},
		}, nil).Once()
	client.On("GetMatchIds", mock.Anything, "puuid-ada", 0, 3).Return(matchIds, nil).Once()
	for _, matchId := range matchIds {
		client.On("GetMatch", mock.Anything, matchId).Return(testMatch(matchId), nil).Once()
	}
}
