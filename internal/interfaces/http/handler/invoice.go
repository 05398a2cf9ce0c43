package handler

import (
	"context"

	"github.com/facturation/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceService defines the invoice operations the handler depends on
type InvoiceService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*billing.InvoiceResponse, error)
	List(ctx context.Context, filter billing.InvoiceListFilter) ([]billing.InvoiceResponse, int64, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*billing.InvoiceResponse, error)
}

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	BaseHandler
	service InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(service InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// Get handles GET /api/v1/factures/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de facture invalide")
		return
	}

	invoice, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// List handles GET /api/v1/factures
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter billing.InvoiceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	invoices, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, invoices, listMeta(filter.Page, filter.PageSize, total))
}

// MarkPaid handles POST /api/v1/factures/:id/payer
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de facture invalide")
		return
	}

	invoice, err := h.service.MarkPaid(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}
