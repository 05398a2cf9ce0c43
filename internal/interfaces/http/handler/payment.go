package handler

import (
	"context"

	"github.com/facturation/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentService defines the payment operations the handler depends on
type PaymentService interface {
	Create(ctx context.Context, req billing.CreatePaymentRequest) (*billing.PaymentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*billing.PaymentResponse, error)
	List(ctx context.Context, filter billing.PaymentListFilter) ([]billing.PaymentResponse, int64, error)
}

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	BaseHandler
	service PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Create handles POST /api/v1/paiements
func (h *PaymentHandler) Create(c *gin.Context) {
	var req billing.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	payment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, payment)
}

// Get handles GET /api/v1/paiements/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de paiement invalide")
		return
	}

	payment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}

// List handles GET /api/v1/paiements
func (h *PaymentHandler) List(c *gin.Context) {
	var filter billing.PaymentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	payments, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, payments, listMeta(filter.Page, filter.PageSize, total))
}
