package modules

import (
	"context"
	"fmt"

	"lolscope/api/handlers"
	"lolscope/fetcher/data"
	"lolscope/pkg/config"
	"lolscope/pkg/kvstore"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ModuleDependencies are the shared resources every handler is built from.
type ModuleDependencies struct {
	Config *config.Config
	Store  kvstore.Store
	Client data.RiotClient
	Logger zerolog.Logger
}

// Module containing the necessary handlers.
type Module struct {
	Router           *gin.Engine
	PlayerHandler    *handlers.PlayerHandler
	FavoritesHandler *handlers.FavoritesHandler
	CacheHandler     *handlers.CacheHandler
	HealthHandler    *handlers.HealthHandler
}

// Create a new module with all the necessary handlers initialized.
func NewModule(ctx context.Context, deps *ModuleDependencies) (*Module, error) {
	router := gin.New()
	router.Use(gin.Recovery())

	// The favorites are loaded once and shared by every request.
	favoritesService, err := initializeFavoritesService(ctx, deps)
	if err != nil {
		return nil, fmt.Errorf("couldn't start the favorites service: %w", err)
	}

	playerService := initializePlayerService(deps)

	return &Module{
		Router: router,
		PlayerHandler: handlers.NewPlayerHandler(&handlers.PlayerHandlerDependencies{
			PlayerService:    playerService,
			FavoritesService: favoritesService,
		}),
		FavoritesHandler: handlers.NewFavoritesHandler(favoritesService),
		CacheHandler:     handlers.NewCacheHandler(playerService),
		HealthHandler:    handlers.NewHealthHandler(),
	}, nil
}
