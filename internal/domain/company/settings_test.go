package company

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "DEV", s.QuotePrefix)
	assert.Equal(t, "FACT", s.InvoicePrefix)
	assert.True(t, s.DefaultTaxRate.Equal(decimal.NewFromInt(20)))
	assert.True(t, s.DefaultDepositPercent.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 30, s.PaymentTermsDays)
	assert.Equal(t, "France", s.Country)
}

func TestSettingsUpdate(t *testing.T) {
	t.Run("updates fields and bumps version", func(t *testing.T) {
		s := DefaultSettings()
		err := s.Update("Atelier Martin", "4 rue des Lilas", "Lyon", "69003", "France", "98765432100011", "FR98765432100", "contact@atelier-martin.fr", "0478123456", "/uploads/logo.png", "DEVIS", "FA", decimal.NewFromFloat(10), decimal.NewFromInt(40), 45)
		require.NoError(t, err)

		assert.Equal(t, "Atelier Martin", s.CompanyName)
		assert.Equal(t, "DEVIS", s.QuotePrefix)
		assert.Equal(t, "FA", s.InvoicePrefix)
		assert.Equal(t, 45, s.PaymentTermsDays)
		assert.Equal(t, 2, s.Version)
	})

	t.Run("keeps prefixes when empty", func(t *testing.T) {
		s := DefaultSettings()
		require.NoError(t, s.Update("Atelier", "", "", "", "", "", "", "", "", "", "", "", decimal.NewFromInt(20), decimal.NewFromInt(30), 30))
		assert.Equal(t, "DEV", s.QuotePrefix)
		assert.Equal(t, "FACT", s.InvoicePrefix)
	})

	t.Run("rejects tax rate out of range", func(t *testing.T) {
		s := DefaultSettings()
		assert.Error(t, s.Update("A", "", "", "", "", "", "", "", "", "", "", "", decimal.NewFromInt(101), decimal.NewFromInt(30), 30))
		assert.Error(t, s.Update("A", "", "", "", "", "", "", "", "", "", "", "", decimal.NewFromInt(-1), decimal.NewFromInt(30), 30))
	})

	t.Run("rejects deposit percent out of range", func(t *testing.T) {
		s := DefaultSettings()
		assert.Error(t, s.Update("A", "", "", "", "", "", "", "", "", "", "", "", decimal.NewFromInt(20), decimal.Zero, 30))
		assert.Error(t, s.Update("A", "", "", "", "", "", "", "", "", "", "", "", decimal.NewFromInt(20), decimal.NewFromInt(150), 30))
	})

	t.Run("rejects negative payment terms", func(t *testing.T) {
		s := DefaultSettings()
		assert.Error(t, s.Update("A", "", "", "", "", "", "", "", "", "", "", "", decimal.NewFromInt(20), decimal.NewFromInt(30), -1))
	})
}

func TestSettingsDueDateFrom(t *testing.T) {
	s := DefaultSettings()
	issued := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), s.DueDateFrom(issued))
}
