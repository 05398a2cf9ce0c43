package models

import (
	"time"

	"github.com/facturation/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteModel is the persistence model for the Quote (devis) aggregate root.
// Business columns keep the historical French schema names.
type QuoteModel struct {
	AggregateModel
	Number             string            `gorm:"column:numero;type:varchar(50);not null;uniqueIndex"`
	ClientID           uuid.UUID         `gorm:"column:client_id;type:uuid;not null;index"`
	Date               time.Time         `gorm:"column:date;not null;index"`
	ValidUntil         time.Time         `gorm:"column:validite;not null"`
	Items              billing.LineItems `gorm:"column:items;type:jsonb;not null"`
	TotalHT            decimal.Decimal   `gorm:"column:total_ht;type:decimal(18,4);not null;default:0"`
	TotalTVA           decimal.Decimal   `gorm:"column:total_tva;type:decimal(18,4);not null;default:0"`
	TotalTTC           decimal.Decimal   `gorm:"column:total_ttc;type:decimal(18,4);not null;default:0"`
	Status             billing.QuoteStatus `gorm:"column:statut;type:varchar(20);not null;default:'Brouillon'"`
	Notes              string            `gorm:"column:notes;type:text"`
	PaymentTerms       string            `gorm:"column:conditions_paiement;type:text"`
	ConvertedInvoiceID *uuid.UUID        `gorm:"column:converted_invoice_id;type:uuid;index"`
}

// TableName returns the table name for GORM
func (QuoteModel) TableName() string {
	return "devis"
}

// ToDomain converts the persistence model to a domain Quote entity.
func (m *QuoteModel) ToDomain() *billing.Quote {
	return &billing.Quote{
		BaseAggregateRoot:  m.ToDomainAggregateRoot(),
		Number:             m.Number,
		ClientID:           m.ClientID,
		Date:               m.Date,
		ValidUntil:         m.ValidUntil,
		Items:              m.Items,
		TotalHT:            m.TotalHT,
		TotalTVA:           m.TotalTVA,
		TotalTTC:           m.TotalTTC,
		Status:             m.Status,
		Notes:              m.Notes,
		PaymentTerms:       m.PaymentTerms,
		ConvertedInvoiceID: m.ConvertedInvoiceID,
	}
}

// FromDomain populates the persistence model from a domain Quote entity.
func (m *QuoteModel) FromDomain(q *billing.Quote) {
	m.FromDomainAggregateRoot(q.BaseAggregateRoot)
	m.Number = q.Number
	m.ClientID = q.ClientID
	m.Date = q.Date
	m.ValidUntil = q.ValidUntil
	m.Items = q.Items
	m.TotalHT = q.TotalHT
	m.TotalTVA = q.TotalTVA
	m.TotalTTC = q.TotalTTC
	m.Status = q.Status
	m.Notes = q.Notes
	m.PaymentTerms = q.PaymentTerms
	m.ConvertedInvoiceID = q.ConvertedInvoiceID
}

// QuoteModelFromDomain creates a new persistence model from a domain Quote entity.
func QuoteModelFromDomain(q *billing.Quote) *QuoteModel {
	m := &QuoteModel{}
	m.FromDomain(q)
	return m
}

// InvoiceModel is the persistence model for the Invoice (facture) aggregate root.
type InvoiceModel struct {
	AggregateModel
	Number         string              `gorm:"column:numero;type:varchar(50);not null;uniqueIndex"`
	ClientID       uuid.UUID           `gorm:"column:client_id;type:uuid;not null;index"`
	QuoteID        *uuid.UUID          `gorm:"column:quote_id;type:uuid;index"`
	QuoteNumber    string              `gorm:"column:quote_numero;type:varchar(50)"`
	Kind           billing.InvoiceKind `gorm:"column:kind;type:varchar(20);not null;default:'Standard'"`
	DepositPercent *decimal.Decimal    `gorm:"column:deposit_percent;type:decimal(5,2)"`
	Date           time.Time           `gorm:"column:date;not null;index"`
	DueDate        time.Time           `gorm:"column:date_echeance;not null"`
	Items          billing.LineItems   `gorm:"column:items;type:jsonb;not null"`
	TotalHT        decimal.Decimal     `gorm:"column:total_ht;type:decimal(18,4);not null;default:0"`
	TotalTVA       decimal.Decimal     `gorm:"column:total_tva;type:decimal(18,4);not null;default:0"`
	TotalTTC       decimal.Decimal     `gorm:"column:total_ttc;type:decimal(18,4);not null;default:0"`
	Status         billing.InvoiceStatus `gorm:"column:statut;type:varchar(20);not null;default:'En attente'"`
	Notes          string              `gorm:"column:notes;type:text"`
	PaymentTerms   string              `gorm:"column:conditions_paiement;type:text"`
	PaidAt         *time.Time          `gorm:"column:paid_at;index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "factures"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Number:            m.Number,
		ClientID:          m.ClientID,
		QuoteID:           m.QuoteID,
		QuoteNumber:       m.QuoteNumber,
		Kind:              m.Kind,
		DepositPercent:    m.DepositPercent,
		Date:              m.Date,
		DueDate:           m.DueDate,
		Items:             m.Items,
		TotalHT:           m.TotalHT,
		TotalTVA:          m.TotalTVA,
		TotalTTC:          m.TotalTTC,
		Status:            m.Status,
		Notes:             m.Notes,
		PaymentTerms:      m.PaymentTerms,
		PaidAt:            m.PaidAt,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *billing.Invoice) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.Number = i.Number
	m.ClientID = i.ClientID
	m.QuoteID = i.QuoteID
	m.QuoteNumber = i.QuoteNumber
	m.Kind = i.Kind
	m.DepositPercent = i.DepositPercent
	m.Date = i.Date
	m.DueDate = i.DueDate
	m.Items = i.Items
	m.TotalHT = i.TotalHT
	m.TotalTVA = i.TotalTVA
	m.TotalTTC = i.TotalTTC
	m.Status = i.Status
	m.Notes = i.Notes
	m.PaymentTerms = i.PaymentTerms
	m.PaidAt = i.PaidAt
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}

// PaymentModel is the persistence model for the Payment (paiement) aggregate root.
type PaymentModel struct {
	AggregateModel
	InvoiceID uuid.UUID             `gorm:"column:invoice_id;type:uuid;not null;index"`
	ClientID  uuid.UUID             `gorm:"column:client_id;type:uuid;not null;index"`
	Amount    decimal.Decimal       `gorm:"column:montant;type:decimal(18,4);not null"`
	Date      time.Time             `gorm:"column:date;not null;index"`
	Method    billing.PaymentMethod `gorm:"column:moyen_paiement;type:varchar(20);not null"`
	Reference string                `gorm:"column:reference;type:varchar(100)"`
	Notes     string                `gorm:"column:notes;type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "paiements"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		InvoiceID:         m.InvoiceID,
		ClientID:          m.ClientID,
		Amount:            m.Amount,
		Date:              m.Date,
		Method:            m.Method,
		Reference:         m.Reference,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.InvoiceID = p.InvoiceID
	m.ClientID = p.ClientID
	m.Amount = p.Amount
	m.Date = p.Date
	m.Method = p.Method
	m.Reference = p.Reference
	m.Notes = p.Notes
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// DocumentSequenceModel backs the transactional document number counters.
// One row per (document_type, scope_key); the scope key is the year or
// year-month the counter is scoped to.
type DocumentSequenceModel struct {
	DocumentType string    `gorm:"column:document_type;type:varchar(20);primaryKey"`
	ScopeKey     string    `gorm:"column:scope_key;type:varchar(10);primaryKey"`
	Value        int64     `gorm:"column:value;not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DocumentSequenceModel) TableName() string {
	return "document_sequences"
}
