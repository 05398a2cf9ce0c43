package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/facturation/backend/internal/domain/billing"
	"github.com/facturation/backend/internal/domain/company"
	"github.com/facturation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DepositService issues deposit invoices (factures d'acompte) against quotes
type DepositService struct {
	quoteRepo    billing.QuoteRepository
	invoiceRepo  billing.InvoiceRepository
	settingsRepo company.SettingsRepository
	allocator    billing.NumberAllocator
	txManager    shared.TxManager
}

// NewDepositService creates a new DepositService
func NewDepositService(
	quoteRepo billing.QuoteRepository,
	invoiceRepo billing.InvoiceRepository,
	settingsRepo company.SettingsRepository,
	allocator billing.NumberAllocator,
	txManager shared.TxManager,
) *DepositService {
	return &DepositService{
		quoteRepo:    quoteRepo,
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
		allocator:    allocator,
		txManager:    txManager,
	}
}

// Create issues a deposit invoice for a percentage of a quote. The percent
// defaults from company settings; cumulative deposits may not exceed 100%.
func (s *DepositService) Create(ctx context.Context, req CreateDepositInvoiceRequest) (*InvoiceResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Devis introuvable")
	}
	if quote.IsConverted() {
		return nil, shared.NewDomainError("INVALID_STATE", "Le devis est déjà converti, aucun acompte ne peut être ajouté")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	percent := settings.DefaultDepositPercent
	if req.Percent != nil {
		percent = *req.Percent
	}
	if percent.LessThanOrEqual(decimal.Zero) || percent.GreaterThan(hundred) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Le pourcentage d'acompte doit être compris entre 0 et 100")
	}

	existing, err := s.invoiceRepo.FindByQuote(ctx, quote.ID)
	if err != nil {
		return nil, err
	}
	cumulated := percent
	for _, inv := range existing {
		if inv.IsDeposit() && inv.DepositPercent != nil {
			cumulated = cumulated.Add(*inv.DepositPercent)
		}
	}
	if cumulated.GreaterThan(hundred) {
		return nil, shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Le cumul des acomptes dépasserait 100%% (%s%%)", cumulated.String()))
	}

	depositHT := quote.TotalHT.Mul(percent).Div(hundred)
	depositTVA := quote.TotalTVA.Mul(percent).Div(hundred)
	depositTTC := quote.TotalTTC.Mul(percent).Div(hundred)

	// Single synthetic line at the quote's effective tax rate so the printed
	// line is consistent with the proportional totals.
	taxRate := settings.DefaultTaxRate
	if quote.TotalHT.IsPositive() {
		taxRate = quote.TotalTVA.Div(quote.TotalHT).Mul(hundred)
	}
	items := []billing.LineItem{{
		Description: fmt.Sprintf("Acompte de %s%% sur devis %s", percent.String(), quote.Number),
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   depositHT,
		TaxRate:     taxRate,
	}}
	totals := billing.Totals{TotalHT: depositHT, TotalTVA: depositTVA, TotalTTC: depositTTC}

	notes := fmt.Sprintf("FACTURE D'ACOMPTE de %s%% sur devis %s", percent.String(), quote.Number)
	if req.Notes != "" {
		notes = notes + "\n" + req.Notes
	}

	now := time.Now()
	var invoice *billing.Invoice
	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		number, err := s.allocator.Next(txCtx, billing.InvoiceSequenceSpec(settings.InvoicePrefix), now)
		if err != nil {
			return err
		}

		invoice, err = billing.NewDepositInvoice(number, quote, percent, items, totals, settings.DueDateFrom(now), notes, quote.PaymentTerms)
		if err != nil {
			return err
		}

		return s.invoiceRepo.Save(txCtx, invoice)
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// ListByQuote lists the deposit invoices already issued for a quote
func (s *DepositService) ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]DepositResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Devis introuvable")
	}

	invoices, err := s.invoiceRepo.FindByQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	deposits := make([]DepositResponse, 0, len(invoices))
	for _, inv := range invoices {
		if !inv.IsDeposit() {
			continue
		}
		percent := decimal.Zero
		if inv.DepositPercent != nil {
			percent = *inv.DepositPercent
		}
		deposits = append(deposits, DepositResponse{
			ID:       inv.ID,
			Number:   inv.Number,
			Percent:  percent,
			TotalHT:  inv.TotalHT,
			TotalTTC: inv.TotalTTC,
			Status:   inv.Status.String(),
			Date:     inv.Date,
		})
	}
	return deposits, nil
}
