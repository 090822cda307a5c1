package handlers

import (
	"net/http"

	"lolscope/api/dto"
	"lolscope/api/filters"
	"lolscope/pkg/messages"

	"github.com/gin-gonic/gin"
)

// FavoritesHandler is the handler for the favorites endpoints.
type FavoritesHandler struct {
	favoritesService FavoritesService
}

// NewFavoritesHandler creates a new instance of the favorites handler.
func NewFavoritesHandler(favoritesService FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favoritesService: favoritesService}
}

// ListFavorites returns the favorites, most recently searched first.
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	favorites := h.favoritesService.List()
	c.JSON(http.StatusOK, gin.H{"result": dto.FavoritesList{Favorites: favorites, Count: len(favorites)}})
}

// GetFavorite returns a single favorite.
func (h *FavoritesHandler) GetFavorite(c *gin.Context) {
	var pp filters.PlayerURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite, ok := h.favoritesService.Get(pp.GameName, pp.TagLine)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": messages.FavoriteNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": favorite})
}

// AddFavorite creates a favorite, answering 200 when it already existed.
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	var body filters.FavoriteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := h.favoritesService.Add(c.Request.Context(), body.GameName, body.TagLine, body.ProfileIconId)
	if err != nil {
		writeError(c, err)
		return
	}

	favorite, _ := h.favoritesService.Get(body.GameName, body.TagLine)

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"result": favorite})
}

// RemoveFavorite deletes a favorite.
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	var pp filters.PlayerURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.favoritesService.Remove(c.Request.Context(), pp.GameName, pp.TagLine) {
		c.JSON(http.StatusNotFound, gin.H{"error": messages.FavoriteNotFound})
		return
	}

	c.Status(http.StatusNoContent)
}
