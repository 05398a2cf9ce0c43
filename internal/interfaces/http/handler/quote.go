package handler

import (
	"context"
	"errors"
	"io"

	"github.com/facturation/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteService defines the quote operations the handler depends on
type QuoteService interface {
	Create(ctx context.Context, req billing.CreateQuoteRequest) (*billing.QuoteResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*billing.QuoteResponse, error)
	List(ctx context.Context, filter billing.QuoteListFilter) ([]billing.QuoteListItemResponse, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req billing.UpdateQuoteStatusRequest) (*billing.QuoteResponse, error)
}

// ConversionService defines the quote-to-invoice conversion operation
type ConversionService interface {
	Convert(ctx context.Context, quoteID uuid.UUID) (*billing.ConversionResponse, error)
}

// DepositService defines the deposit invoice operations the handler depends on
type DepositService interface {
	Create(ctx context.Context, req billing.CreateDepositInvoiceRequest) (*billing.InvoiceResponse, error)
	ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]billing.DepositResponse, error)
}

// QuoteHandler handles quote HTTP requests, including conversion and deposits
type QuoteHandler struct {
	BaseHandler
	quotes      QuoteService
	conversions ConversionService
	deposits    DepositService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quotes QuoteService, conversions ConversionService, deposits DepositService) *QuoteHandler {
	return &QuoteHandler{
		quotes:      quotes,
		conversions: conversions,
		deposits:    deposits,
	}
}

// Create handles POST /api/v1/devis
func (h *QuoteHandler) Create(c *gin.Context) {
	var req billing.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	quote, err := h.quotes.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, quote)
}

// Get handles GET /api/v1/devis/:id
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de devis invalide")
		return
	}

	quote, err := h.quotes.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quote)
}

// List handles GET /api/v1/devis
func (h *QuoteHandler) List(c *gin.Context) {
	var filter billing.QuoteListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	quotes, total, err := h.quotes.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, quotes, listMeta(filter.Page, filter.PageSize, total))
}

// UpdateStatus handles PATCH /api/v1/devis/:id/statut
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de devis invalide")
		return
	}

	var req billing.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	quote, err := h.quotes.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quote)
}

// Convert handles POST /api/v1/devis/:id/convert
func (h *QuoteHandler) Convert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de devis invalide")
		return
	}

	result, err := h.conversions.Convert(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// createDepositBody is the request body for deposit creation. The quote id
// comes from the path, so the body only carries the optional percentage and
// notes.
type createDepositBody struct {
	Percent *decimal.Decimal `json:"pourcentage"`
	Notes   string           `json:"notes"`
}

// CreateDeposit handles POST /api/v1/devis/:id/acomptes
func (h *QuoteHandler) CreateDeposit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de devis invalide")
		return
	}

	// An empty body means "use the default percentage from settings"
	var body createDepositBody
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		h.HandleBindingError(c, err)
		return
	}

	invoice, err := h.deposits.Create(c.Request.Context(), billing.CreateDepositInvoiceRequest{
		QuoteID: id,
		Percent: body.Percent,
		Notes:   body.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// ListDeposits handles GET /api/v1/devis/:id/acomptes
func (h *QuoteHandler) ListDeposits(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Identifiant de devis invalide")
		return
	}

	deposits, err := h.deposits.ListByQuote(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, deposits)
}
