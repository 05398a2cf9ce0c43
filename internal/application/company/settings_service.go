package company

import (
	"context"
	"time"

	"github.com/facturation/backend/internal/domain/company"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest represents a request to update the company settings
type UpdateSettingsRequest struct {
	CompanyName           string          `json:"nom_entreprise" binding:"required,min=1,max=200"`
	Address               string          `json:"adresse"`
	City                  string          `json:"ville" binding:"omitempty,max=100"`
	PostalCode            string          `json:"code_postal" binding:"omitempty,max=20"`
	Country               string          `json:"pays" binding:"omitempty,max=100"`
	SIRET                 string          `json:"siret" binding:"omitempty,max=20"`
	VATNumber             string          `json:"tva_intracom" binding:"omitempty,max=20"`
	Email                 string          `json:"email" binding:"omitempty,email"`
	Phone                 string          `json:"telephone" binding:"omitempty,max=50"`
	LogoPath              string          `json:"logo_path"`
	QuotePrefix           string          `json:"prefixe_devis" binding:"omitempty,max=10"`
	InvoicePrefix         string          `json:"prefixe_facture" binding:"omitempty,max=10"`
	DefaultTaxRate        decimal.Decimal `json:"taux_tva_defaut"`
	DefaultDepositPercent decimal.Decimal `json:"acompte_defaut"`
	PaymentTermsDays      int             `json:"delai_paiement_jours"`
}

// SettingsResponse represents the settings in API responses
type SettingsResponse struct {
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
	UpdatedAt             time.Time       `json:"updated_at"`
}

// ToSettingsResponse maps domain settings to the response
func ToSettingsResponse(s *company.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:           s.CompanyName,
		Address:               s.Address,
		City:                  s.City,
		PostalCode:            s.PostalCode,
		Country:               s.Country,
		SIRET:                 s.SIRET,
		VATNumber:             s.VATNumber,
		Email:                 s.Email,
		Phone:                 s.Phone,
		LogoPath:              s.LogoPath,
		QuotePrefix:           s.QuotePrefix,
		InvoicePrefix:         s.InvoicePrefix,
		DefaultTaxRate:        s.DefaultTaxRate,
		DefaultDepositPercent: s.DefaultDepositPercent,
		PaymentTermsDays:      s.PaymentTermsDays,
		UpdatedAt:             s.UpdatedAt,
	}
}

// SettingsService handles the company settings singleton
type SettingsService struct {
	settingsRepo company.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo company.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the settings, seeded with defaults on first call
func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	response := ToSettingsResponse(settings)
	return &response, nil
}

// Update replaces the editable settings fields
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := settings.Update(
		req.CompanyName, req.Address, req.City, req.PostalCode, req.Country,
		req.SIRET, req.VATNumber, req.Email, req.Phone, req.LogoPath,
		req.QuotePrefix, req.InvoicePrefix,
		req.DefaultTaxRate, req.DefaultDepositPercent, req.PaymentTermsDays,
	); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	response := ToSettingsResponse(settings)
	return &response, nil
}
