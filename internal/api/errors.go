package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/team-updates-api/internal/service"
)

// respondError is the single boundary between service errors and HTTP.
// Client-safe messages go to the caller; internal causes only to the log.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		log.Error().Err(err).Msg("Unclassified error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	switch svcErr.Kind {
	case service.KindClient:
		c.JSON(http.StatusBadRequest, gin.H{"error": svcErr.Message})
	case service.KindAuth:
		log.Warn().Err(svcErr.Err).Msg("Authentication failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": svcErr.Message})
	case service.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": svcErr.Message})
	case service.KindConfig:
		log.Error().Err(svcErr.Err).Msg("Server configuration error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": svcErr.Message})
	default: // service.KindStore
		log.Error().Err(svcErr.Err).Msg("Store error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": svcErr.Message})
	}
}
