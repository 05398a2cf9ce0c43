package models

import (
	"github.com/facturation/backend/internal/domain/company"
	"github.com/shopspring/decimal"
)

// SettingsModel is the persistence model for the company Settings singleton.
type SettingsModel struct {
	AggregateModel
	CompanyName           string          `gorm:"column:nom_entreprise;type:varchar(200)"`
	Address               string          `gorm:"column:adresse;type:varchar(500)"`
	City                  string          `gorm:"column:ville;type:varchar(100)"`
	PostalCode            string          `gorm:"column:code_postal;type:varchar(20)"`
	Country               string          `gorm:"column:pays;type:varchar(100);not null;default:'France'"`
	SIRET                 string          `gorm:"column:siret;type:varchar(20)"`
	VATNumber             string          `gorm:"column:tva_intracom;type:varchar(30)"`
	Email                 string          `gorm:"column:email;type:varchar(200)"`
	Phone                 string          `gorm:"column:telephone;type:varchar(50)"`
	LogoPath              string          `gorm:"column:logo_path;type:varchar(500)"`
	QuotePrefix           string          `gorm:"column:prefixe_devis;type:varchar(10);not null;default:'DEV'"`
	InvoicePrefix         string          `gorm:"column:prefixe_facture;type:varchar(10);not null;default:'FACT'"`
	DefaultTaxRate        decimal.Decimal `gorm:"column:taux_tva_defaut;type:decimal(5,2);not null;default:20"`
	DefaultDepositPercent decimal.Decimal `gorm:"column:acompte_defaut;type:decimal(5,2);not null;default:30"`
	PaymentTermsDays      int             `gorm:"column:delai_paiement_jours;not null;default:30"`
}

// TableName returns the table name for GORM
func (SettingsModel) TableName() string {
	return "parametres"
}

// ToDomain converts the persistence model to a domain Settings entity.
func (m *SettingsModel) ToDomain() *company.Settings {
	return &company.Settings{
		BaseAggregateRoot:     m.ToDomainAggregateRoot(),
		CompanyName:           m.CompanyName,
		Address:               m.Address,
		City:                  m.City,
		PostalCode:            m.PostalCode,
		Country:               m.Country,
		SIRET:                 m.SIRET,
		VATNumber:             m.VATNumber,
		Email:                 m.Email,
		Phone:                 m.Phone,
		LogoPath:              m.LogoPath,
		QuotePrefix:           m.QuotePrefix,
		InvoicePrefix:         m.InvoicePrefix,
		DefaultTaxRate:        m.DefaultTaxRate,
		DefaultDepositPercent: m.DefaultDepositPercent,
		PaymentTermsDays:      m.PaymentTermsDays,
	}
}

// FromDomain populates the persistence model from a domain Settings entity.
func (m *SettingsModel) FromDomain(s *company.Settings) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.CompanyName = s.CompanyName
	m.Address = s.Address
	m.City = s.City
	m.PostalCode = s.PostalCode
	m.Country = s.Country
	m.SIRET = s.SIRET
	m.VATNumber = s.VATNumber
	m.Email = s.Email
	m.Phone = s.Phone
	m.LogoPath = s.LogoPath
	m.QuotePrefix = s.QuotePrefix
	m.InvoicePrefix = s.InvoicePrefix
	m.DefaultTaxRate = s.DefaultTaxRate
	m.DefaultDepositPercent = s.DefaultDepositPercent
	m.PaymentTermsDays = s.PaymentTermsDays
}

// SettingsModelFromDomain creates a new persistence model from a domain Settings entity.
func SettingsModelFromDomain(s *company.Settings) *SettingsModel {
	m := &SettingsModel{}
	m.FromDomain(s)
	return m
}
