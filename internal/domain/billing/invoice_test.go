package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depositItems(amount string, quoteNumber string) []LineItem {
	return []LineItem{
		{Description: "Acompte de 30% sur devis " + quoteNumber, Quantity: dec("1"), UnitPrice: dec(amount), TaxRate: dec("20")},
	}
}

func TestNewDepositInvoice(t *testing.T) {
	quote := newTestQuote(t)
	due := time.Now().AddDate(0, 0, 30)

	t.Run("creates pending deposit invoice with typed kind", func(t *testing.T) {
		totals := Totals{TotalHT: dec("900"), TotalTVA: dec("180"), TotalTTC: dec("1080")}
		inv, err := NewDepositInvoice("FACT-2026-0001", quote, dec("30"), depositItems("900", quote.Number), totals, due, "FACTURE D'ACOMPTE de 30% sur devis DEV-2026-0001", "Paiement à 30 jours")
		require.NoError(t, err)

		assert.Equal(t, InvoiceKindDeposit, inv.Kind)
		assert.True(t, inv.IsDeposit())
		require.NotNil(t, inv.DepositPercent)
		assert.True(t, inv.DepositPercent.Equal(dec("30")))
		require.NotNil(t, inv.QuoteID)
		assert.Equal(t, quote.ID, *inv.QuoteID)
		assert.Equal(t, quote.Number, inv.QuoteNumber)
		assert.Equal(t, InvoiceStatusPending, inv.Status)
		assert.True(t, inv.TotalTTC.Equal(dec("1080")))
	})

	t.Run("rejects percent over 100", func(t *testing.T) {
		_, err := NewDepositInvoice("FACT-2026-0002", quote, dec("150"), depositItems("900", quote.Number), Totals{}, due, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects zero percent", func(t *testing.T) {
		_, err := NewDepositInvoice("FACT-2026-0002", quote, dec("0"), depositItems("900", quote.Number), Totals{}, due, "", "")
		assert.Error(t, err)
	})

	t.Run("requires a number", func(t *testing.T) {
		_, err := NewDepositInvoice("", quote, dec("30"), depositItems("900", quote.Number), Totals{}, due, "", "")
		assert.Error(t, err)
	})

	t.Run("requires a quote", func(t *testing.T) {
		_, err := NewDepositInvoice("FACT-2026-0002", nil, dec("30"), depositItems("900", "DEV-2026-0001"), Totals{}, due, "", "")
		assert.Error(t, err)
	})
}

func TestNewFinalInvoice(t *testing.T) {
	quote := newTestQuote(t)
	due := time.Now().AddDate(0, 0, 30)

	t.Run("uses provided totals, not line arithmetic", func(t *testing.T) {
		// Quote totals minus one 900 HT deposit; the deduction line is
		// display-only and the stored totals come from the caller.
		items := append(LineItems{}, quote.Items...)
		items = append(items, LineItem{Description: "Acompte déduit (FACT-2026-0001)", Quantity: dec("1"), UnitPrice: dec("-900"), TaxRate: dec("20")})
		totals := Totals{TotalHT: dec("2100"), TotalTVA: dec("420"), TotalTTC: dec("2520")}

		inv, err := NewFinalInvoice("FACT-2026-0002", quote, items, totals, due, "", quote.PaymentTerms)
		require.NoError(t, err)

		assert.Equal(t, InvoiceKindStandard, inv.Kind)
		assert.Nil(t, inv.DepositPercent)
		assert.True(t, inv.TotalHT.Equal(dec("2100")))
		assert.True(t, inv.TotalTTC.Equal(dec("2520")))
		assert.Len(t, inv.Items, 2)
	})

	t.Run("requires a number", func(t *testing.T) {
		_, err := NewFinalInvoice("", quote, quote.Items, quote.Totals(), due, "", "")
		assert.Error(t, err)
	})
}

func TestInvoiceMarkPaid(t *testing.T) {
	quote := newTestQuote(t)
	inv, err := NewFinalInvoice("FACT-2026-0003", quote, quote.Items, quote.Totals(), time.Now().AddDate(0, 0, 30), "", "")
	require.NoError(t, err)

	t.Run("pending to paid", func(t *testing.T) {
		assert.False(t, inv.IsPaid())
		inv.MarkPaid()
		assert.True(t, inv.IsPaid())
		require.NotNil(t, inv.PaidAt)
		assert.Equal(t, 2, inv.Version)
	})

	t.Run("idempotent", func(t *testing.T) {
		paidAt := *inv.PaidAt
		inv.MarkPaid()
		assert.Equal(t, paidAt, *inv.PaidAt)
		assert.Equal(t, 2, inv.Version)
	})
}

func TestInvoiceKindAndStatusValidity(t *testing.T) {
	assert.True(t, InvoiceKindStandard.IsValid())
	assert.True(t, InvoiceKindDeposit.IsValid())
	assert.False(t, InvoiceKind("Avoir").IsValid())

	assert.True(t, InvoiceStatusPending.IsValid())
	assert.True(t, InvoiceStatusPaid.IsValid())
	assert.False(t, InvoiceStatus("Annulée").IsValid())
}
