package billing

import (
	"time"

	"github.com/facturation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes deposit invoices from final invoices.
// A deposit invoice (facture d'acompte) bills a percentage of a quote up
// front; the kind is a typed column, never inferred from the notes text.
type InvoiceKind string

const (
	InvoiceKindStandard InvoiceKind = "Standard"
	InvoiceKindDeposit  InvoiceKind = "Acompte"
)

// IsValid checks if the invoice kind is valid
func (k InvoiceKind) IsValid() bool {
	return k == InvoiceKindStandard || k == InvoiceKindDeposit
}

// String returns the string representation of InvoiceKind
func (k InvoiceKind) String() string {
	return string(k)
}

// InvoiceStatus represents the payment status of an invoice.
// The machine is deliberately one-way: recording any payment settles the
// invoice in full.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "En attente"
	InvoiceStatusPaid    InvoiceStatus = "Payée"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice represents an invoice (facture) aggregate root
type Invoice struct {
	shared.BaseAggregateRoot
	Number         string           `json:"numero"`
	ClientID       uuid.UUID        `json:"client_id"`
	QuoteID        *uuid.UUID       `json:"quote_id"`
	QuoteNumber    string           `json:"quote_numero"`
	Kind           InvoiceKind      `json:"kind"`
	DepositPercent *decimal.Decimal `json:"deposit_percent"`
	Date           time.Time        `json:"date"`
	DueDate        time.Time        `json:"date_echeance"`
	Items          LineItems        `json:"items"`
	TotalHT        decimal.Decimal  `json:"total_ht"`
	TotalTVA       decimal.Decimal  `json:"total_tva"`
	TotalTTC       decimal.Decimal  `json:"total_ttc"`
	Status         InvoiceStatus    `json:"statut"`
	Notes          string           `json:"notes"`
	PaymentTerms   string           `json:"conditions_paiement"`
	PaidAt         *time.Time       `json:"paid_at"`
}

// NewDepositInvoice creates a deposit invoice (facture d'acompte) billing a
// percentage of a quote. The caller provides the already-computed deposit
// amounts so that the percentage arithmetic lives in one place.
func NewDepositInvoice(number string, quote *Quote, percent decimal.Decimal, items []LineItem, totals Totals, dueDate time.Time, notes, paymentTerms string) (*Invoice, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Le numéro de facture est requis")
	}
	if quote == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Le devis est requis")
	}
	if percent.LessThanOrEqual(decimal.Zero) || percent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Le pourcentage d'acompte doit être compris entre 0 et 100")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Une facture doit contenir au moins une ligne")
	}

	quoteID := quote.ID
	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		ClientID:          quote.ClientID,
		QuoteID:           &quoteID,
		QuoteNumber:       quote.Number,
		Kind:              InvoiceKindDeposit,
		DepositPercent:    &percent,
		Date:              time.Now(),
		DueDate:           dueDate,
		Items:             items,
		TotalHT:           totals.TotalHT,
		TotalTVA:          totals.TotalTVA,
		TotalTTC:          totals.TotalTTC,
		Status:            InvoiceStatusPending,
		Notes:             notes,
		PaymentTerms:      paymentTerms,
	}, nil
}

// NewFinalInvoice creates the final invoice produced by converting a quote.
// Totals are provided by the conversion, not recomputed from the line list:
// the deposit deduction lines are display-only and the authoritative amounts
// are quote totals minus deposits, clamped at zero.
func NewFinalInvoice(number string, quote *Quote, items []LineItem, totals Totals, dueDate time.Time, notes, paymentTerms string) (*Invoice, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Le numéro de facture est requis")
	}
	if quote == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Le devis est requis")
	}

	quoteID := quote.ID
	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		ClientID:          quote.ClientID,
		QuoteID:           &quoteID,
		QuoteNumber:       quote.Number,
		Kind:              InvoiceKindStandard,
		Date:              time.Now(),
		DueDate:           dueDate,
		Items:             items,
		TotalHT:           totals.TotalHT,
		TotalTVA:          totals.TotalTVA,
		TotalTTC:          totals.TotalTTC,
		Status:            InvoiceStatusPending,
		Notes:             notes,
		PaymentTerms:      paymentTerms,
	}, nil
}

// MarkPaid settles the invoice. Recording any payment settles in full; the
// transition is one-way and idempotent.
func (i *Invoice) MarkPaid() {
	if i.Status == InvoiceStatusPaid {
		return
	}
	now := time.Now()
	i.Status = InvoiceStatusPaid
	i.PaidAt = &now
	i.UpdatedAt = now
	i.IncrementVersion()
}

// IsDeposit returns true for deposit invoices
func (i *Invoice) IsDeposit() bool {
	return i.Kind == InvoiceKindDeposit
}

// IsPaid returns true if the invoice has been settled
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// Totals returns the three stored amounts of the invoice
func (i *Invoice) Totals() Totals {
	return Totals{TotalHT: i.TotalHT, TotalTVA: i.TotalTVA, TotalTTC: i.TotalTTC}
}
