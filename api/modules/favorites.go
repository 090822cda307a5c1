package modules

import (
	"context"

	favoritesservice "lolscope/api/services/favorites"
)

func initializeFavoritesService(ctx context.Context, deps *ModuleDependencies) (*favoritesservice.FavoritesService, error) {
	service := favoritesservice.NewFavoritesService(&favoritesservice.FavoritesServiceDeps{
		Store:        deps.Store,
		Logger:       deps.Logger,
		MaxFavorites: deps.Config.FavoritesMax,
	})

	if err := service.Load(ctx); err != nil {
		return nil, err
	}
	return service, nil
}
