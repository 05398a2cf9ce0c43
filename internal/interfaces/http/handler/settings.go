package handler

import (
	"context"

	"github.com/facturation/backend/internal/application/company"
	"github.com/gin-gonic/gin"
)

// SettingsService defines the settings operations the handler depends on
type SettingsService interface {
	Get(ctx context.Context) (*company.SettingsResponse, error)
	Update(ctx context.Context, req company.UpdateSettingsRequest) (*company.SettingsResponse, error)
}

// SettingsHandler handles company settings HTTP requests
type SettingsHandler struct {
	BaseHandler
	service SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /api/v1/parametres
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}

// Update handles PUT /api/v1/parametres
func (h *SettingsHandler) Update(c *gin.Context) {
	var req company.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	settings, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}
