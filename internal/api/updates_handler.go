package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/team-updates-api/internal/service"
)

const defaultListLimit = 20

// UpdatesHandler handles the public read-only updates endpoint
type UpdatesHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUpdatesHandler creates a new UpdatesHandler
func NewUpdatesHandler(services *service.Services, log zerolog.Logger) *UpdatesHandler {
	return &UpdatesHandler{
		services: services,
		log:      log.With().Str("handler", "updates").Logger(),
	}
}

// ListPublished handles GET /v1/updates?limit=
// Returns published updates only, newest published first. The response is
// safe to cache briefly. An absent or unparseable limit falls back to the
// default; an out-of-range one is the caller's error.
func (h *UpdatesHandler) ListPublished(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	list, err := h.services.Update.ListPublished(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=60")
	c.JSON(http.StatusOK, list)
}
