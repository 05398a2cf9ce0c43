package billing

import (
	"context"

	"github.com/facturation/backend/internal/domain/billing"
	"github.com/facturation/backend/internal/domain/partner"
	"github.com/facturation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceService handles invoice read operations and the manual pay override
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	clientRepo  partner.ClientRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, clientRepo partner.ClientRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
	}
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Facture introuvable")
	}

	response := ToInvoiceResponse(invoice)
	if client, err := s.clientRepo.FindByID(ctx, invoice.ClientID); err == nil && client != nil {
		response.ClientName = client.Name
	}
	return &response, nil
}

// List retrieves invoices sorted by date descending
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
	domainFilter := billing.InvoiceFilter{
		Filter:   shared.DefaultFilter(),
		ClientID: filter.ClientID,
		QuoteID:  filter.QuoteID,
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.OrderBy = "date"
	domainFilter.Search = filter.Search
	if filter.Status != nil {
		status := billing.InvoiceStatus(*filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Statut de facture invalide")
		}
		domainFilter.Status = &status
	}
	if filter.Kind != nil {
		kind := billing.InvoiceKind(*filter.Kind)
		if !kind.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Type de facture invalide")
		}
		domainFilter.Kind = &kind
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.invoiceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[i]))
	}
	return responses, total, nil
}

// MarkPaid forces an invoice to Payée without recording a payment row
func (s *InvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Facture introuvable")
	}

	invoice.MarkPaid()
	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}
