package partner

import (
	"context"
	"time"

	"github.com/facturation/backend/internal/domain/billing"
	"github.com/facturation/backend/internal/domain/partner"
	"github.com/facturation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateClientRequest represents a request to create a client
type CreateClientRequest struct {
	Name        string `json:"nom" binding:"required,min=1,max=200"`
	ContactName string `json:"contact" binding:"omitempty,max=100"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"telephone" binding:"omitempty,max=50"`
	Address     string `json:"adresse"`
	City        string `json:"ville" binding:"omitempty,max=100"`
	PostalCode  string `json:"code_postal" binding:"omitempty,max=20"`
	Country     string `json:"pays" binding:"omitempty,max=100"`
	SIRET       string `json:"siret" binding:"omitempty,max=20"`
	VATNumber   string `json:"tva_intracom" binding:"omitempty,max=20"`
	Notes       string `json:"notes"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest = CreateClientRequest

// ClientListFilter represents filter options for client listing
type ClientListFilter struct {
	Search   string `form:"search"`
	City     string `form:"ville"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"nom"`
	ContactName string    `json:"contact,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"telephone,omitempty"`
	Address     string    `json:"adresse,omitempty"`
	City        string    `json:"ville,omitempty"`
	PostalCode  string    `json:"code_postal,omitempty"`
	Country     string    `json:"pays"`
	SIRET       string    `json:"siret,omitempty"`
	VATNumber   string    `json:"tva_intracom,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToClientResponse maps a domain client to its response
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		PostalCode:  c.PostalCode,
		Country:     c.Country,
		SIRET:       c.SIRET,
		VATNumber:   c.VATNumber,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ClientService handles client business operations
type ClientService struct {
	clientRepo  partner.ClientRepository
	quoteRepo   billing.QuoteRepository
	invoiceRepo billing.InvoiceRepository
	paymentRepo billing.PaymentRepository
}

// NewClientService creates a new ClientService
func NewClientService(
	clientRepo partner.ClientRepository,
	quoteRepo billing.QuoteRepository,
	invoiceRepo billing.InvoiceRepository,
	paymentRepo billing.PaymentRepository,
) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		quoteRepo:   quoteRepo,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	if err := client.Update(req.Name, req.ContactName, req.Email, req.Phone, req.Address, req.City, req.PostalCode, req.Country, req.SIRET, req.VATNumber, req.Notes); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Client introuvable")
	}
	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, int64, error) {
	domainFilter := partner.ClientFilter{Filter: shared.DefaultFilter()}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	domainFilter.OrderBy = "nom"
	domainFilter.OrderDir = "asc"
	if filter.City != "" {
		domainFilter.City = &filter.City
	}

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, ToClientResponse(&clients[i]))
	}
	return responses, total, nil
}

// Update updates a client
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Client introuvable")
	}

	if err := client.Update(req.Name, req.ContactName, req.Email, req.Phone, req.Address, req.City, req.PostalCode, req.Country, req.SIRET, req.VATNumber, req.Notes); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client. Deletion is refused while the client still owns
// quotes, invoices or payments so documents never point at a missing client.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return shared.NewDomainError("NOT_FOUND", "Client introuvable")
	}

	quotes, err := s.quoteRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	invoices, err := s.invoiceRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	payments, err := s.paymentRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if quotes > 0 || invoices > 0 || payments > 0 {
		return shared.NewDomainErrorWithDetails(
			"CONFLICT",
			"Impossible de supprimer un client avec des documents associés",
			map[string]any{"devis": quotes, "factures": invoices, "paiements": payments},
		)
	}

	return s.clientRepo.Delete(ctx, id)
}
