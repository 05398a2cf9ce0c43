package billing

import (
	"context"
	"time"

	"github.com/facturation/backend/internal/domain/billing"
	"github.com/facturation/backend/internal/domain/company"
	"github.com/facturation/backend/internal/domain/partner"
	"github.com/facturation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// QuoteService handles quote business operations
type QuoteService struct {
	quoteRepo    billing.QuoteRepository
	clientRepo   partner.ClientRepository
	settingsRepo company.SettingsRepository
	allocator    billing.NumberAllocator
	txManager    shared.TxManager
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(
	quoteRepo billing.QuoteRepository,
	clientRepo partner.ClientRepository,
	settingsRepo company.SettingsRepository,
	allocator billing.NumberAllocator,
	txManager shared.TxManager,
) *QuoteService {
	return &QuoteService{
		quoteRepo:    quoteRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		allocator:    allocator,
		txManager:    txManager,
	}
}

// Create creates a new quote. Number allocation and persistence run in one
// transaction so a failed save never burns a sequence value.
func (s *QuoteService) Create(ctx context.Context, req CreateQuoteRequest) (*QuoteResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Client introuvable")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	items := toDomainItems(req.Items, settings.DefaultTaxRate)

	var quote *billing.Quote
	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		number, err := s.allocator.Next(txCtx, billing.QuoteSequenceSpec(settings.QuotePrefix), time.Now())
		if err != nil {
			return err
		}

		quote, err = billing.NewQuote(number, req.ClientID, req.Date, req.ValidUntil, items, req.Notes, req.PaymentTerms)
		if err != nil {
			return err
		}

		return s.quoteRepo.Save(txCtx, quote)
	})
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	response.ClientName = client.Name
	return &response, nil
}

// GetByID retrieves a quote by ID
func (s *QuoteService) GetByID(ctx context.Context, id uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Devis introuvable")
	}

	response := ToQuoteResponse(quote)
	if client, err := s.clientRepo.FindByID(ctx, quote.ClientID); err == nil && client != nil {
		response.ClientName = client.Name
	}
	return &response, nil
}

// List retrieves quotes sorted by date descending, with the client summary
func (s *QuoteService) List(ctx context.Context, filter QuoteListFilter) ([]QuoteListItemResponse, int64, error) {
	domainFilter := billing.QuoteFilter{
		Filter:   shared.DefaultFilter(),
		ClientID: filter.ClientID,
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
		status := billing.QuoteStatus(*filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Statut de devis invalide")
		}
		domainFilter.Status = &status
	}

	quotes, err := s.quoteRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.quoteRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	names := s.clientNames(ctx, quotes)
	items := make([]QuoteListItemResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, QuoteListItemResponse{
			ID:         q.ID,
			Number:     q.Number,
			ClientID:   q.ClientID,
			ClientName: names[q.ClientID],
			Date:       q.Date,
			ValidUntil: q.ValidUntil,
			TotalHT:    q.TotalHT,
			TotalTTC:   q.TotalTTC,
			Status:     q.Status.String(),
		})
	}
	return items, total, nil
}

// UpdateStatus applies a manual status transition to a quote
func (s *QuoteService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateQuoteStatusRequest) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Devis introuvable")
	}

	if err := quote.ChangeStatus(billing.QuoteStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.quoteRepo.SaveWithLock(ctx, quote); err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

func (s *QuoteService) clientNames(ctx context.Context, quotes []billing.Quote) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	for _, q := range quotes {
		if _, ok := names[q.ClientID]; ok {
			continue
		}
		if client, err := s.clientRepo.FindByID(ctx, q.ClientID); err == nil && client != nil {
			names[q.ClientID] = client.Name
		}
	}
	return names
}
