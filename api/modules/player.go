package modules

import (
	"lolscope/api/cache"
	playerservice "lolscope/api/services/player"
)

func initializePlayerService(deps *ModuleDependencies) *playerservice.PlayerService {
	cacheConfig := deps.Config.Cache
	playerCache := cache.NewCache(deps.Store, cacheConfig.Prefix, deps.Logger)

	return playerservice.NewPlayerService(&playerservice.PlayerServiceDeps{
		Client:         deps.Client,
		Cache:          playerCache,
		CacheConfig:    cacheConfig,
		MatchCount:     deps.Config.Riot.MatchCount,
		RequestTimeout: deps.Config.Server.RequestTimeout,
		Logger:         deps.Logger,
	})
}
