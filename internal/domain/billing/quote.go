package billing

import (
	"fmt"
	"time"

	"github.com/facturation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteStatus represents the status of a quote (devis).
// Values are the French labels shown to users and stored verbatim.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "Brouillon"
	QuoteStatusSent      QuoteStatus = "Envoyé"
	QuoteStatusAccepted  QuoteStatus = "Accepté"
	QuoteStatusRefused   QuoteStatus = "Refusé"
	QuoteStatusConverted QuoteStatus = "Converti" // Terminal: a final invoice exists
)

// IsValid checks if the status is a valid QuoteStatus
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted,
		QuoteStatusRefused, QuoteStatusConverted:
		return true
	}
	return false
}

// String returns the string representation of QuoteStatus
func (s QuoteStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the quote is in a terminal state
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusConverted
}

// CanTransitionTo checks whether a manual status change is allowed.
// Converti is never set manually, only through conversion.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	if !target.IsValid() || target == QuoteStatusConverted {
		return false
	}
	return !s.IsTerminal()
}

// Quote represents a quote (devis) aggregate root
type Quote struct {
	shared.BaseAggregateRoot
	Number             string          `json:"numero"`
	ClientID           uuid.UUID       `json:"client_id"`
	Date               time.Time       `json:"date"`
	ValidUntil         time.Time       `json:"validite"`
	Items              LineItems       `json:"items"`
	TotalHT            decimal.Decimal `json:"total_ht"`
	TotalTVA           decimal.Decimal `json:"total_tva"`
	TotalTTC           decimal.Decimal `json:"total_ttc"`
	Status             QuoteStatus     `json:"statut"`
	Notes              string          `json:"notes"`
	PaymentTerms       string          `json:"conditions_paiement"`
	ConvertedInvoiceID *uuid.UUID      `json:"converted_invoice_id"`
}

// NewQuote creates a new quote in Brouillon status with computed totals
func NewQuote(number string, clientID uuid.UUID, date, validUntil time.Time, items []LineItem, notes, paymentTerms string) (*Quote, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Le numéro de devis est requis")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Le client est requis")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Un devis doit contenir au moins une ligne")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "La date du devis est requise")
	}
	if validUntil.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "La date de validité est requise")
	}

	totals := ComputeTotals(items)

	return &Quote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		ClientID:          clientID,
		Date:              date,
		ValidUntil:        validUntil,
		Items:             items,
		TotalHT:           totals.TotalHT,
		TotalTVA:          totals.TotalTVA,
		TotalTTC:          totals.TotalTTC,
		Status:            QuoteStatusDraft,
		Notes:             notes,
		PaymentTerms:      paymentTerms,
	}, nil
}

// ChangeStatus applies a manual status transition
func (q *Quote) ChangeStatus(target QuoteStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Statut de devis invalide: %s", target))
	}
	if !q.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Transition de %s vers %s non autorisée", q.Status, target))
	}

	q.Status = target
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	return nil
}

// MarkConverted records the final invoice and moves the quote to Converti.
// Once converted the quote is frozen.
func (q *Quote) MarkConverted(invoiceID uuid.UUID) error {
	if q.Status == QuoteStatusConverted {
		return shared.NewDomainError("INVALID_STATE", "Le devis est déjà converti")
	}
	if invoiceID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "L'identifiant de facture est requis")
	}

	q.Status = QuoteStatusConverted
	q.ConvertedInvoiceID = &invoiceID
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	return nil
}

// IsConverted returns true if a final invoice exists for this quote
func (q *Quote) IsConverted() bool {
	return q.Status == QuoteStatusConverted
}

// Totals returns the three stored amounts of the quote
func (q *Quote) Totals() Totals {
	return Totals{TotalHT: q.TotalHT, TotalTVA: q.TotalTVA, TotalTTC: q.TotalTTC}
}
