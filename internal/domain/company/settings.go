package company

import (
	"time"

	"github.com/facturation/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Settings is the singleton aggregate holding the company profile and
// billing defaults. Exactly one row exists; updates go through Update.
type Settings struct {
	shared.BaseAggregateRoot
	CompanyName           string          `json:"nom_entreprise"`
	Address               string          `json:"adresse"`
	City                  string          `json:"ville"`
	PostalCode            string          `json:"code_postal"`
	Country               string          `json:"pays"`
	SIRET                 string          `json:"siret"`
	VATNumber             string          `json:"tva_intracom"`
	Email                 string          `json:"email"`
	Phone                 string          `json:"telephone"`
	LogoPath              string          `json:"logo_path"`
	QuotePrefix           string          `json:"prefixe_devis"`
	InvoicePrefix         string          `json:"prefixe_facture"`
	DefaultTaxRate        decimal.Decimal `json:"taux_tva_defaut"`
	DefaultDepositPercent decimal.Decimal `json:"acompte_defaut"`
	PaymentTermsDays      int             `json:"delai_paiement_jours"`
}

// DefaultSettings returns the settings used to seed an empty database
func DefaultSettings() *Settings {
	return &Settings{
		BaseAggregateRoot:     shared.NewBaseAggregateRoot(),
		Country:               "France",
		QuotePrefix:           "DEV",
		InvoicePrefix:         "FACT",
		DefaultTaxRate:        decimal.NewFromInt(20),
		DefaultDepositPercent: decimal.NewFromInt(30),
		PaymentTermsDays:      30,
	}
}

// Update replaces the editable fields after validating the billing defaults
func (s *Settings) Update(companyName, address, city, postalCode, country, siret, vatNumber, email, phone, logoPath, quotePrefix, invoicePrefix string, defaultTaxRate, defaultDepositPercent decimal.Decimal, paymentTermsDays int) error {
	if defaultTaxRate.IsNegative() || defaultTaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_INPUT", "Le taux de TVA par défaut doit être compris entre 0 et 100")
	}
	if defaultDepositPercent.LessThanOrEqual(decimal.Zero) || defaultDepositPercent.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_INPUT", "Le pourcentage d'acompte par défaut doit être compris entre 0 et 100")
	}
	if paymentTermsDays < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Le délai de paiement ne peut pas être négatif")
	}

	s.CompanyName = companyName
	s.Address = address
	s.City = city
	s.PostalCode = postalCode
	if country != "" {
		s.Country = country
	}
	s.SIRET = siret
	s.VATNumber = vatNumber
	s.Email = email
	s.Phone = phone
	s.LogoPath = logoPath
	if quotePrefix != "" {
		s.QuotePrefix = quotePrefix
	}
	if invoicePrefix != "" {
		s.InvoicePrefix = invoicePrefix
	}
	s.DefaultTaxRate = defaultTaxRate
	s.DefaultDepositPercent = defaultDepositPercent
	s.PaymentTermsDays = paymentTermsDays
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// DueDateFrom returns the payment due date for a document issued at t
func (s *Settings) DueDateFrom(t time.Time) time.Time {
	return t.AddDate(0, 0, s.PaymentTermsDays)
}
