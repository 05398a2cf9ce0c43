package billing

import (
	"time"

	"github.com/facturation/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Quote DTOs ====================

// LineItemInput represents a document line in create requests.
// TaxRate is a pointer so that an explicit 0% (TVA non applicable) is
// distinguishable from an omitted rate, which falls back to the company
// default.
type LineItemInput struct {
	Description string           `json:"description" binding:"required,min=1,max=500"`
	Quantity    decimal.Decimal  `json:"quantite" binding:"required"`
	UnitPrice   decimal.Decimal  `json:"prix_unitaire" binding:"required"`
	TaxRate     *decimal.Decimal `json:"taux_tva"`
}

// CreateQuoteRequest represents a request to create a quote
type CreateQuoteRequest struct {
	ClientID     uuid.UUID       `json:"client_id" binding:"required"`
	Date         time.Time       `json:"date" binding:"required"`
	ValidUntil   time.Time       `json:"validite" binding:"required"`
	Items        []LineItemInput `json:"items" binding:"required,min=1,dive"`
	Notes        string          `json:"notes"`
	PaymentTerms string          `json:"conditions_paiement"`
}

// UpdateQuoteStatusRequest represents a manual quote status change
type UpdateQuoteStatusRequest struct {
	Status string `json:"statut" binding:"required"`
}

// QuoteListFilter represents filter options for quote listing
type QuoteListFilter struct {
	ClientID *uuid.UUID `form:"client_id"`
	Status   *string    `form:"statut"`
	Search   string     `form:"search"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// LineItemResponse represents a document line in API responses
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantite"`
	UnitPrice   decimal.Decimal `json:"prix_unitaire"`
	TaxRate     decimal.Decimal `json:"taux_tva"`
	TotalHT     decimal.Decimal `json:"total_ht"`
}

// QuoteResponse represents a quote in API responses
type QuoteResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Number             string             `json:"numero"`
	ClientID           uuid.UUID          `json:"client_id"`
	ClientName         string             `json:"client_nom,omitempty"`
	Date               time.Time          `json:"date"`
	ValidUntil         time.Time          `json:"validite"`
	Items              []LineItemResponse `json:"items"`
	TotalHT            decimal.Decimal    `json:"total_ht"`
	TotalTVA           decimal.Decimal    `json:"total_tva"`
	TotalTTC           decimal.Decimal    `json:"total_ttc"`
	Status             string             `json:"statut"`
	Notes              string             `json:"notes,omitempty"`
	PaymentTerms       string             `json:"conditions_paiement,omitempty"`
	ConvertedInvoiceID *uuid.UUID         `json:"converted_invoice_id,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// ToLineItemResponses maps domain line items to responses
func ToLineItemResponses(items billing.LineItems) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, LineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			TotalHT:     item.TotalHT(),
		})
	}
	return out
}

// ToQuoteResponse maps a domain quote to its response
func ToQuoteResponse(q *billing.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                 q.ID,
		Number:             q.Number,
		ClientID:           q.ClientID,
		Date:               q.Date,
		ValidUntil:         q.ValidUntil,
		Items:              ToLineItemResponses(q.Items),
		TotalHT:            q.TotalHT,
		TotalTVA:           q.TotalTVA,
		TotalTTC:           q.TotalTTC,
		Status:             q.Status.String(),
		Notes:              q.Notes,
		PaymentTerms:       q.PaymentTerms,
		ConvertedInvoiceID: q.ConvertedInvoiceID,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

// QuoteListItemResponse is the compact quote shape used in listings
type QuoteListItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"numero"`
	ClientID   uuid.UUID       `json:"client_id"`
	ClientName string          `json:"client_nom,omitempty"`
	Date       time.Time       `json:"date"`
	ValidUntil time.Time       `json:"validite"`
	TotalHT    decimal.Decimal `json:"total_ht"`
	TotalTTC   decimal.Decimal `json:"total_ttc"`
	Status     string          `json:"statut"`
}

// ==================== Invoice DTOs ====================

// CreateDepositInvoiceRequest represents a request to issue a deposit invoice
type CreateDepositInvoiceRequest struct {
	QuoteID uuid.UUID        `json:"quote_id" binding:"required"`
	Percent *decimal.Decimal `json:"pourcentage"`
	Notes   string           `json:"notes"`
}

// InvoiceListFilter represents filter options for invoice listing
type InvoiceListFilter struct {
	ClientID *uuid.UUID `form:"client_id"`
	QuoteID  *uuid.UUID `form:"quote_id"`
	Status   *string    `form:"statut"`
	Kind     *string    `form:"kind"`
	Search   string     `form:"search"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID             uuid.UUID          `json:"id"`
	Number         string             `json:"numero"`
	ClientID       uuid.UUID          `json:"client_id"`
	ClientName     string             `json:"client_nom,omitempty"`
	QuoteID        *uuid.UUID         `json:"quote_id,omitempty"`
	QuoteNumber    string             `json:"quote_numero,omitempty"`
	Kind           string             `json:"kind"`
	DepositPercent *decimal.Decimal   `json:"deposit_percent,omitempty"`
	Date           time.Time          `json:"date"`
	DueDate        time.Time          `json:"date_echeance"`
	Items          []LineItemResponse `json:"items"`
	TotalHT        decimal.Decimal    `json:"total_ht"`
	TotalTVA       decimal.Decimal    `json:"total_tva"`
	TotalTTC       decimal.Decimal    `json:"total_ttc"`
	Status         string             `json:"statut"`
	Notes          string             `json:"notes,omitempty"`
	PaymentTerms   string             `json:"conditions_paiement,omitempty"`
	PaidAt         *time.Time         `json:"paid_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ToInvoiceResponse maps a domain invoice to its response
func ToInvoiceResponse(i *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		Number:         i.Number,
		ClientID:       i.ClientID,
		QuoteID:        i.QuoteID,
		QuoteNumber:    i.QuoteNumber,
		Kind:           i.Kind.String(),
		DepositPercent: i.DepositPercent,
		Date:           i.Date,
		DueDate:        i.DueDate,
		Items:          ToLineItemResponses(i.Items),
		TotalHT:        i.TotalHT,
		TotalTVA:       i.TotalTVA,
		TotalTTC:       i.TotalTTC,
		Status:         i.Status.String(),
		Notes:          i.Notes,
		PaymentTerms:   i.PaymentTerms,
		PaidAt:         i.PaidAt,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

// DepositResponse is the compact shape of one deposit invoice of a quote
type DepositResponse struct {
	ID       uuid.UUID       `json:"id"`
	Number   string          `json:"numero"`
	Percent  decimal.Decimal `json:"pourcentage"`
	TotalHT  decimal.Decimal `json:"total_ht"`
	TotalTTC decimal.Decimal `json:"total_ttc"`
	Status   string          `json:"statut"`
	Date     time.Time       `json:"date"`
}

// ConversionResponse is the result of converting a quote to an invoice
type ConversionResponse struct {
	InvoiceID uuid.UUID `json:"invoice_id"`
	Number    string    `json:"numero"`
}

// ==================== Payment DTOs ====================

// CreatePaymentRequest represents a request to record a payment
type CreatePaymentRequest struct {
	InvoiceID uuid.UUID       `json:"invoice_id" binding:"required"`
	ClientID  uuid.UUID       `json:"client_id" binding:"required"`
	Amount    decimal.Decimal `json:"montant" binding:"required"`
	Date      string          `json:"date" binding:"required"`
	Method    string          `json:"moyen_paiement" binding:"required"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
}

// PaymentListFilter represents filter options for payment listing
type PaymentListFilter struct {
	InvoiceID *uuid.UUID `form:"invoice_id"`
	ClientID  *uuid.UUID `form:"client_id"`
	Method    *string    `form:"moyen_paiement"`
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	ClientID  uuid.UUID       `json:"client_id"`
	Amount    decimal.Decimal `json:"montant"`
	Date      time.Time       `json:"date"`
	Method    string          `json:"moyen_paiement"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToPaymentResponse maps a domain payment to its response
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		ClientID:  p.ClientID,
		Amount:    p.Amount,
		Date:      p.Date,
		Method:    p.Method.String(),
		Reference: p.Reference,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

// toDomainItems converts request lines to domain line items
func toDomainItems(items []LineItemInput, defaultTaxRate decimal.Decimal) []billing.LineItem {
	out := make([]billing.LineItem, 0, len(items))
	for _, item := range items {
		rate := defaultTaxRate
		if item.TaxRate != nil {
			rate = *item.TaxRate
		}
		out = append(out, billing.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     rate,
		})
	}
	return out
}
