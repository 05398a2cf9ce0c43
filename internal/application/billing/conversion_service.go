package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/facturation/backend/internal/domain/billing"
	"github.com/facturation/backend/internal/domain/company"
	"github.com/facturation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionService turns an accepted quote into its final invoice
type ConversionService struct {
	quoteRepo    billing.QuoteRepository
	invoiceRepo  billing.InvoiceRepository
	settingsRepo company.SettingsRepository
	allocator    billing.NumberAllocator
	txManager    shared.TxManager
}

// NewConversionService creates a new ConversionService
func NewConversionService(
	quoteRepo billing.QuoteRepository,
	invoiceRepo billing.InvoiceRepository,
	settingsRepo company.SettingsRepository,
	allocator billing.NumberAllocator,
	txManager shared.TxManager,
) *ConversionService {
	return &ConversionService{
		quoteRepo:    quoteRepo,
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
		allocator:    allocator,
		txManager:    txManager,
	}
}

// Convert creates the final invoice for a quote. Deposits already billed are
// listed as display-only deduction lines; the invoice totals are the quote
// totals minus the deposits, clamped at zero, never recomputed from the
// deduction-augmented line list. Converting twice is a conflict that carries
// the existing invoice id.
func (s *ConversionService) Convert(ctx context.Context, quoteID uuid.UUID) (*ConversionResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Devis introuvable")
	}

	linked, err := s.invoiceRepo.FindByQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	for _, inv := range linked {
		if inv.Kind == billing.InvoiceKindStandard {
			return nil, alreadyConvertedError(inv.ID)
		}
	}
	if quote.IsConverted() {
		details := map[string]any{}
		if quote.ConvertedInvoiceID != nil {
			details["invoice_id"] = quote.ConvertedInvoiceID.String()
		}
		return nil, shared.NewDomainErrorWithDetails("ALREADY_CONVERTED", "Le devis a déjà été converti en facture", details)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]billing.LineItem, 0, len(quote.Items)+len(linked))
	items = append(items, quote.Items...)

	depositHT := decimal.Zero
	depositTVA := decimal.Zero
	depositTTC := decimal.Zero
	var deducted []string
	for _, inv := range linked {
		if !inv.IsDeposit() {
			continue
		}
		depositHT = depositHT.Add(inv.TotalHT)
		depositTVA = depositTVA.Add(inv.TotalTVA)
		depositTTC = depositTTC.Add(inv.TotalTTC)
		deducted = append(deducted, inv.Number)

		taxRate := decimal.Zero
		if inv.TotalHT.IsPositive() {
			taxRate = inv.TotalTVA.Div(inv.TotalHT).Mul(hundred)
		}
		items = append(items, billing.LineItem{
			Description: fmt.Sprintf("Acompte déduit (%s)", inv.Number),
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   inv.TotalHT.Neg(),
			TaxRate:     taxRate,
		})
	}

	totals := billing.Totals{
		TotalHT:  clampZero(quote.TotalHT.Sub(depositHT)),
		TotalTVA: clampZero(quote.TotalTVA.Sub(depositTVA)),
		TotalTTC: clampZero(quote.TotalTTC.Sub(depositTTC)),
	}

	notes := fmt.Sprintf("Facture établie d'après le devis %s", quote.Number)
	if len(deducted) > 0 {
		notes += fmt.Sprintf("\nAcomptes déduits : %s", strings.Join(deducted, ", "))
	}

	paymentTerms := quote.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = fmt.Sprintf("Paiement à %d jours", settings.PaymentTermsDays)
	}

	now := time.Now()
	var invoice *billing.Invoice
	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		number, err := s.allocator.Next(txCtx, billing.InvoiceSequenceSpec(settings.InvoicePrefix), now)
		if err != nil {
			return err
		}

		invoice, err = billing.NewFinalInvoice(number, quote, items, totals, settings.DueDateFrom(now), notes, paymentTerms)
		if err != nil {
			return err
		}
		if err := s.invoiceRepo.Save(txCtx, invoice); err != nil {
			return err
		}

		if err := quote.MarkConverted(invoice.ID); err != nil {
			return err
		}
		return s.quoteRepo.SaveWithLock(txCtx, quote)
	})
	if err != nil {
		return nil, err
	}

	return &ConversionResponse{InvoiceID: invoice.ID, Number: invoice.Number}, nil
}

func alreadyConvertedError(invoiceID uuid.UUID) *shared.DomainError {
	return shared.NewDomainErrorWithDetails(
		"ALREADY_CONVERTED",
		"Le devis a déjà été converti en facture",
		map[string]any{"invoice_id": invoiceID.String()},
	)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
