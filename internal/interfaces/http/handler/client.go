package handler

import (
	"context"

	"github.com/facturation/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientService defines the client operations the handler depends on
type ClientService interface {
	Create(ctx context.Context, req partner.CreateClientRequest) (*partner.ClientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*partner.ClientResponse, error)
	List(ctx context.Context, filter partner.ClientListFilter) ([]partner.ClientResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req partner.UpdateClientRequest) (*partner.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientHandler handles client HTTP requests
type ClientHandler struct {
	BaseHandler
	service ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(service ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create handles POST /api/v1/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req partner.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	client, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, client)
}

// Get handles GET /api/v1/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de client invalide")
		return
	}

	client, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// List handles GET /api/v1/clients
func (h *ClientHandler) List(c *gin.Context) {
	var filter partner.ClientListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	clients, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, clients, listMeta(filter.Page, filter.PageSize, total))
}

// Update handles PUT /api/v1/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de client invalide")
		return
	}

	var req partner.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	client, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Delete handles DELETE /api/v1/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de client invalide")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
