package handlers

import (
	"context"
	"net/http"

	"lolscope/api/converters"
	"lolscope/api/dto"
	"lolscope/api/filters"
	"lolscope/pkg/models"

	"github.com/gin-gonic/gin"
)

// PlayerService is the lookup service used by the player endpoints.
type PlayerService interface {
	GetPlayerViewModel(ctx context.Context, gameName, tagLine string) (*models.Summoner, error)
	Refresh(ctx context.Context, gameName, tagLine string) (*models.Summoner, error)
	Invalidate(ctx context.Context, gameName, tagLine string) error
	ClearCache(ctx context.Context) int
}

// FavoritesService is the favorites registry.
type FavoritesService interface {
	List() []models.FavoritePlayer
	Get(gameName, tagLine string) (models.FavoritePlayer, bool)
	IsFavorite(gameName, tagLine string) bool
	Add(ctx context.Context, gameName, tagLine string, profileIconId *int) (bool, error)
	Remove(ctx context.Context, gameName, tagLine string) bool
	Touch(ctx context.Context, gameName, tagLine string, profileIconId *int) bool
}

// PlayerHandler is the handler for the player endpoints.
type PlayerHandler struct {
	playerService    PlayerService
	favoritesService FavoritesService
}

type PlayerHandlerDependencies struct {
	PlayerService    PlayerService
	FavoritesService FavoritesService
}

// NewPlayerHandler creates a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		playerService:    deps.PlayerService,
		favoritesService: deps.FavoritesService,
	}
}

// GetPlayer handles the player lookup.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	var pp filters.PlayerURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.PlayerLookupParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	lookup := h.playerService.GetPlayerViewModel
	if qp.Refresh {
		lookup = h.playerService.Refresh
	}

	summoner, err := lookup(ctx, pp.GameName, pp.TagLine)
	if err != nil {
		writeError(c, err)
		return
	}

	// Searching a favorite moves it up the list.
	icon := summoner.ProfileIconId
	isFavorite := h.favoritesService.Touch(ctx, pp.GameName, pp.TagLine, &icon)

	c.JSON(http.StatusOK, gin.H{"result": dto.PlayerView{Summoner: summoner, IsFavorite: isFavorite}})
}

// GetPlayerSummary handles requests for the derived statistics of a player.
func (h *PlayerHandler) GetPlayerSummary(c *gin.Context) {
	var pp filters.PlayerURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.PlayerSummaryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := qp.AsMatchFilter()
	if err := filter.Validate(); err != nil {
		writeError(c, err)
		return
	}

	summoner, err := h.playerService.GetPlayerViewModel(c.Request.Context(), pp.GameName, pp.TagLine)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": converters.ConvertPlayerSummary(summoner, filter, qp.Limit)})
}

// InvalidatePlayer removes the cached player.
func (h *PlayerHandler) InvalidatePlayer(c *gin.Context) {
	var pp filters.PlayerURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.playerService.Invalidate(c.Request.Context(), pp.GameName, pp.TagLine); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
