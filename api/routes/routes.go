package routes

import (
	"net/http"

	"lolscope/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

// NewRouter creates the router, the middlewares apply to every route.
func NewRouter(engine *gin.Engine, middlewares ...gin.HandlerFunc) *Router {
	engine.Use(middlewares...)

	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.FavoritesHandler:
			r.registerFavoritesHandler(handler)
		case *handlers.CacheHandler:
			r.registerCacheHandler(handler)
		case *handlers.HealthHandler:
			r.registerHealthHandler(handler)
		}
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	player := r.api.Group("/players/:gameName/:tagLine")
	{
		player.GET("", handler.GetPlayer)
		player.GET("/summary", handler.GetPlayerSummary)
		player.DELETE("/cache", handler.InvalidatePlayer)
	}
}

// Register the favorites handler.
func (r *Router) registerFavoritesHandler(handler *handlers.FavoritesHandler) {
	favorites := r.api.Group("/favorites")
	{
		favorites.GET("", handler.ListFavorites)
		favorites.POST("", handler.AddFavorite)
		favorites.GET("/:gameName/:tagLine", handler.GetFavorite)
		favorites.DELETE("/:gameName/:tagLine", handler.RemoveFavorite)
	}
}

// Register the cache handler.
func (r *Router) registerCacheHandler(handler *handlers.CacheHandler) {
	r.api.DELETE("/cache", handler.ClearCache)
}

// Health and metrics live outside the versioned group.
func (r *Router) registerHealthHandler(handler *handlers.HealthHandler) {
	r.Engine.GET("/health", handler.GetHealth)
	r.Engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler returns the router as a http handler.
func (r *Router) Handler() http.Handler {
	return r.Engine
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
