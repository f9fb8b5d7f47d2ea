package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/team-updates-api/internal/models"
	"github.com/team-updates-api/internal/service"
	"github.com/team-updates-api/internal/validation"
)

// AdminUpdatesHandler handles the token-gated updates CRUD endpoints
type AdminUpdatesHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminUpdatesHandler creates a new AdminUpdatesHandler
func NewAdminUpdatesHandler(services *service.Services, log zerolog.Logger) *AdminUpdatesHandler {
	return &AdminUpdatesHandler{
		services: services,
		log:      log.With().Str("handler", "admin_updates").Logger(),
	}
}

// List handles GET /v1/admin/updates
// Returns every update regardless of status, newest created first
func (h *AdminUpdatesHandler) List(c *gin.Context) {
	list, err := h.services.Update.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Create handles POST /v1/admin/updates
// Status is optional and defaults to draft; creating as published stamps the
// publish time
func (h *AdminUpdatesHandler) Create(c *gin.Context) {
	var req models.CreateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCreateUpdate(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	update, err := h.services.Update.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, update)
}

// Replace handles PUT /v1/admin/updates
// Full replace: id, title, body, and status are all required
func (h *AdminUpdatesHandler) Replace(c *gin.Context) {
	var req models.ReplaceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateReplaceUpdate(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	update, err := h.services.Update.Replace(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, update)
}

// Delete handles DELETE /v1/admin/updates?id=
func (h *AdminUpdatesHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.services.Update.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "update deleted"})
}
