package handlers

import (
	"io"
	"net/http/httptest"
	"strings"

	"lolscope/api/services/testutil"

	"github.com/gin-gonic/gin"
)

// Helper registering every handler on a test engine.
func setupTestHandlers() (*gin.Engine, *testutil.MockPlayerService, *testutil.MockFavoritesService) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	mockPlayerService := new(testutil.MockPlayerService)
	mockFavoritesService := new(testutil.MockFavoritesService)

	playerHandler := NewPlayerHandler(&PlayerHandlerDependencies{
		PlayerService:    mockPlayerService,
		FavoritesService: mockFavoritesService,
	})
	favoritesHandler := NewFavoritesHandler(mockFavoritesService)
	cacheHandler := NewCacheHandler(mockPlayerService)

	engine.GET("/players/:gameName/:tagLine", playerHandler.GetPlayer)
	engine.GET("/players/:gameName/:tagLine/summary", playerHandler.GetPlayerSummary)
	engine.DELETE("/players/:gameName/:tagLine/cache", playerHandler.InvalidatePlayer)
	engine.DELETE("/cache", cacheHandler.ClearCache)
	engine.GET("/favorites", favoritesHandler.ListFavorites)
	engine.POST("/favorites", favoritesHandler.AddFavorite)
	engine.GET("/favorites/:gameName/:tagLine", favoritesHandler.GetFavorite)
	engine.DELETE("/favorites/:gameName/:tagLine", favoritesHandler.RemoveFavorite)
	engine.GET("/health", NewHealthHandler().GetHealth)

	return engine, mockPlayerService, mockFavoritesService
}

// Helper executing a request against the engine.
func performRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func intPtr(value int) *int {
	return &value
}

