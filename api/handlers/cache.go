package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CacheHandler is the handler for the cache maintenance endpoints.
type CacheHandler struct {
	playerService PlayerService
}

// NewCacheHandler creates a new instance of the cache handler.
func NewCacheHandler(playerService PlayerService) *CacheHandler {
	return &CacheHandler{playerService: playerService}
}

// ClearCache removes every cached entry.
func (h *CacheHandler) ClearCache(c *gin.Context) {
	removed := h.playerService.ClearCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
