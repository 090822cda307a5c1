package handlers

import (
	"context"
	"errors"
	"net/http"

	playerservice "lolscope/api/services/player"
	"lolscope/api/stats"
	"lolscope/fetcher/requests"
	"lolscope/pkg/messages"
	"lolscope/pkg/riotid"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// statusFor maps a service error to the response status and the message shown to clients.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, riotid.ErrInvalidRiotId), errors.Is(err, stats.ErrInvalidFilter):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, playerservice.ErrPlayerNotFound):
		return http.StatusNotFound, messages.PlayerNotFound
	case errors.Is(err, requests.ErrRateLimited):
		return http.StatusTooManyRequests, messages.TooManyRequests
	case errors.Is(err, requests.ErrUnauthorized):
		return http.StatusBadGateway, messages.InvalidCredential
	case errors.Is(err, requests.ErrServer), errors.Is(err, requests.ErrTransport):
		return http.StatusServiceUnavailable, messages.ProviderUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, messages.ProviderUnavailable
	}
	return http.StatusInternalServerError, messages.InternalError
}

// writeError logs and writes the error response.
func writeError(c *gin.Context, err error) {
	status, message := statusFor(err)

	logger := zerolog.Ctx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	} else {
		logger.Debug().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("request rejected")
	}

	c.JSON(status, gin.H{"error": message})
}
