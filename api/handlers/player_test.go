package handlers

import (
	"errors"
	"net/http"
	"testing"

	playerservice "lolscope/api/services/player"
	"lolscope/api/services/testutil"
	"lolscope/fetcher/requests"
	"lolscope/pkg/messages"
	"lolscope/pkg/models"
	"lolscope/pkg/riotid"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSummoner() *models.Summoner {
	match := func(id string, queue int, created int64, kills int, win bool) models.Match {
		return models.Match{
			MatchId:      id,
			QueueId:      queue,
			GameDuration: 1200,
			GameCreation: created,
			Participants: []models.Participant{{
				Puuid:                       "puuid-ada",
				ChampionName:                "Ahri",
				TeamId:                      100,
				TeamPosition:                "MIDDLE",
				Kills:                       kills,
				Deaths:                      1,
				TotalMinionsKilled:          160,
				VisionScore:                 20,
				TotalDamageDealtToChampions: 10000,
				Win:                         win,
			}},
		}
	}

	return &models.Summoner{
		Puuid:         "puuid-ada",
		Name:          "Ada",
		Tag:           "EUW",
		ProfileIconId: 29,
		Matches: []models.Match{
			match("EUW1_3", 450, 3000, 9, true),
			match("EUW1_2", 420, 2000, 3, false),
			match("EUW1_1", 420, 1000, 1, true),
		},
	}
}

type summaryResponse struct {
	Result struct {
		Games   int     `json:"games"`
		Wins    int     `json:"wins"`
		Losses  int     `json:"losses"`
		WinRate float64 `json:"winRate"`
		Series  []struct {
			MatchId    string  `json:"matchId"`
			KDA        float64 `json:"kda"`
			KDAAverage float64 `json:"kdaAverage"`
		} `json:"series"`
		TopChampions []struct {
			ChampionName string `json:"championName"`
			Games        int    `json:"games"`
		} `json:"topChampions"`
		Levels struct {
			KDA string `json:"kda"`
		} `json:"levels"`
		Trends struct {
			KDA string `json:"kda"`
		} `json:"trends"`
	} `json:"result"`
}

func TestGetPlayer(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*testutil.MockPlayerService, *testutil.MockFavoritesService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "found",
			path: "/players/Ada/EUW",
			setupMocks: func(ps *testutil.MockPlayerService, fs *testutil.MockFavoritesService) {
				ps.On("GetPlayerViewModel", mock.Anything, "Ada", "EUW").Return(testSummoner(), nil)
				fs.On("Touch", mock.Anything, "Ada", "EUW", intPtr(29)).Return(true)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "refresh",
			path: "/players/Ada/EUW?refresh=true",
			setupMocks: func(ps *testutil.MockPlayerService, fs *testutil.MockFavoritesService) {
				ps.On("Refresh", mock.Anything, "Ada", "EUW").Return(testSummoner(), nil)
				fs.On("Touch", mock.Anything, "Ada", "EUW", intPtr(29)).Return(false)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid refresh flag",
			path:           "/players/Ada/EUW?refresh=maybe",
			setupMocks:     func(*testutil.MockPlayerService, *testutil.MockFavoritesService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			path: "/players/Nobody/000",
			setupMocks: func(ps *testutil.MockPlayerService, fs *testutil.MockFavoritesService) {
				ps.On("GetPlayerViewModel", mock.Anything, "Nobody", "000").Return(nil, playerservice.ErrPlayerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  messages.PlayerNotFound,
		},
		{
			name: "provider rate limited",
			path: "/players/Ada/EUW",
			setupMocks: func(ps *testutil.MockPlayerService, fs *testutil.MockFavoritesService) {
				ps.On("GetPlayerViewModel", mock.Anything, "Ada", "EUW").Return(nil, &requests.APIError{StatusCode: http.StatusTooManyRequests})
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedError:  messages.TooManyRequests,
		},
		{
			name: "invalid identity",
			path: "/players/Ada/%23",
			setupMocks: func(ps *testutil.MockPlayerService, fs *testutil.MockFavoritesService) {
				ps.On("GetPlayerViewModel", mock.Anything, "Ada", "#").Return(nil, riotid.ErrInvalidRiotId)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  riotid.ErrInvalidRiotId.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, mockPlayerService, mockFavoritesService := setupTestHandlers()
			tt.setupMocks(mockPlayerService, mockFavoritesService)

			w := performRequest(engine, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.JSONEq(t, `{"error":"`+tt.expectedError+`"}`, w.Body.String())
			}
			testutil.VerifyAllMocks(t, mockPlayerService, mockFavoritesService)
		})
	}
}

func TestGetPlayerBody(t *testing.T) {
	engine, mockPlayerService, mockFavoritesService := setupTestHandlers()
	mockPlayerService.On("GetPlayerViewModel", mock.Anything, "Ada", "EUW").Return(testSummoner(), nil)
	mockFavoritesService.On("Touch", mock.Anything, "Ada", "EUW", mock.Anything).Return(true)

	w := performRequest(engine, http.MethodGet, "/players/Ada/EUW", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Result struct {
			Puuid      string         `json:"puuid"`
			Name       string         `json:"name"`
			IsFavorite bool           `json:"isFavorite"`
			Matches    []models.Match `json:"matches"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "puuid-ada", body.Result.Puuid)
	assert.Equal(t, "Ada", body.Result.Name)
	assert.True(t, body.Result.IsFavorite)
	assert.Len(t, body.Result.Matches, 3)
}

func TestGetPlayerSummary(t *testing.T) {
	engine, mockPlayerService, _ := setupTestHandlers()
	mockPlayerService.On("GetPlayerViewModel", mock.Anything, "Ada", "EUW").Return(testSummoner(), nil)

	w := performRequest(engine, http.MethodGet, "/players/Ada/EUW/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body summaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 3, body.Result.Games)
	assert.Equal(t, 2, body.Result.Wins)
	assert.Equal(t, 1, body.Result.Losses)
	assert.Equal(t, 66.7, body.Result.WinRate)
	// Only ranked games are on the series, oldest first.
	require.Len(t, body.Result.Series, 2)
	assert.Equal(t, "EUW1_1", body.Result.Series[0].MatchId)
	assert.Equal(t, 1.0, body.Result.Series[0].KDAAverage)
	assert.Equal(t, 2.0, body.Result.Series[1].KDAAverage)
	require.Len(t, body.Result.TopChampions, 1)
	assert.Equal(t, 3, body.Result.TopChampions[0].Games)
	// Average KDA of (1 + 3 + 9) / 3.
	assert.Equal(t, "excellent", body.Result.Levels.KDA)
	assert.Equal(t, "stable", body.Result.Trends.KDA)
}

func TestGetPlayerSummaryFilters(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedGames  int
	}{
		{name: "ranked only", query: "?gameType=ranked", expectedStatus: http.StatusOK, expectedGames: 2},
		{name: "queue ids", query: "?queue=450&queue=440", expectedStatus: http.StatusOK, expectedGames: 1},
		{name: "wins", query: "?result=win", expectedStatus: http.StatusOK, expectedGames: 2},
		{name: "time range", query: "?since=1500&until=2500", expectedStatus: http.StatusOK, expectedGames: 1},
		{name: "champion", query: "?champion=lux", expectedStatus: http.StatusOK, expectedGames: 0},
		{name: "unknown game type", query: "?gameType=arena", expectedStatus: http.StatusBadRequest},
		{name: "unknown result", query: "?result=draw", expectedStatus: http.StatusBadRequest},
		{name: "reversed range", query: "?since=3000&until=1000", expectedStatus: http.StatusBadRequest},
		{name: "malformed queue", query: "?queue=abc", expectedStatus: http.StatusBadRequest},
		{name: "limit out of range", query: "?limit=500", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, mockPlayerService, _ := setupTestHandlers()
			mockPlayerService.On("GetPlayerViewModel", mock.Anything, "Ada", "EUW").Return(testSummoner(), nil).Maybe()

			w := performRequest(engine, http.MethodGet, "/players/Ada/EUW/summary"+tt.query, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				mockPlayerService.AssertNotCalled(t, "GetPlayerViewModel", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			var body summaryResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedGames, body.Result.Games)
		})
	}
}

func TestInvalidatePlayer(t *testing.T) {
	engine, mockPlayerService, _ := setupTestHandlers()
	mockPlayerService.On("Invalidate", mock.Anything, "Ada", "EUW").Return(nil)

	w := performRequest(engine, http.MethodDelete, "/players/Ada/EUW/cache", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockPlayerService.AssertExpectations(t)
}

func TestClearCache(t *testing.T) {
	engine, mockPlayerService, _ := setupTestHandlers()
	mockPlayerService.On("ClearCache", mock.Anything).Return(4)

	w := performRequest(engine, http.MethodDelete, "/cache", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":4}`, w.Body.String())
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "not found", err: playerservice.ErrPlayerNotFound, expectedStatus: http.StatusNotFound},
		{name: "credential", err: &requests.APIError{StatusCode: http.StatusForbidden}, expectedStatus: http.StatusBadGateway},
		{name: "provider down", err: &requests.APIError{StatusCode: http.StatusServiceUnavailable}, expectedStatus: http.StatusServiceUnavailable},
		{name: "transport", err: requests.ErrTransport, expectedStatus: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFor(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.NotContains(t, message, "boom")
		})
	}
}

func TestHealth(t *testing.T) {
	engine, _, _ := setupTestHandlers()

	w := performRequest(engine, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
