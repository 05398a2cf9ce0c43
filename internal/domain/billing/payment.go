package billing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/facturation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodTransfer PaymentMethod = "Virement"
	PaymentMethodCheck    PaymentMethod = "Chèque"
	PaymentMethodCash     PaymentMethod = "Espèces"
	PaymentMethodCard     PaymentMethod = "Carte"
	PaymentMethodOther    PaymentMethod = "Autre"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodTransfer, PaymentMethodCheck, PaymentMethodCash,
		PaymentMethodCard, PaymentMethodOther:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// Payment represents a recorded payment against an invoice
type Payment struct {
	shared.BaseAggregateRoot
	InvoiceID uuid.UUID       `json:"invoice_id"`
	ClientID  uuid.UUID       `json:"client_id"`
	Amount    decimal.Decimal `json:"montant"`
	Date      time.Time       `json:"date"`
	Method    PaymentMethod   `json:"moyen_paiement"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
}

// NewPayment creates a new payment. A missing reference is generated.
func NewPayment(invoiceID, clientID uuid.UUID, amount decimal.Decimal, date time.Time, method PaymentMethod, reference, notes string) (*Payment, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "La facture est requise")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Le client est requis")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Le montant du paiement doit être positif")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Moyen de paiement invalide: %s", method))
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "La date du paiement est requise")
	}
	if reference == "" {
		reference = GeneratePaymentReference(date)
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceID:         invoiceID,
		ClientID:          clientID,
		Amount:            amount,
		Date:              date,
		Method:            method,
		Reference:         reference,
		Notes:             notes,
	}, nil
}

// GeneratePaymentReference builds a PAY-YYYYMMDD-NNNN reference with a
// 4-digit random suffix. References are labels, not identifiers; uniqueness
// is not required.
func GeneratePaymentReference(date time.Time) string {
	return fmt.Sprintf("PAY-%s-%04d", date.Format("20060102"), rand.Intn(10000))
}

// ParsePaymentDate accepts either a bare date (2006-01-02) or a full RFC3339
// timestamp. Bare dates are anchored at noon UTC so timezone conversions in
// clients cannot shift them to the previous or next day.
func ParsePaymentDate(value string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", value); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Date de paiement invalide: %s", value))
}
