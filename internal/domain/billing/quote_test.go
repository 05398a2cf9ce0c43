package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuoteItems() []LineItem {
	return []LineItem{
		{Description: "Développement", Quantity: dec("5"), UnitPrice: dec("600"), TaxRate: dec("20")},
	}
}

func newTestQuote(t *testing.T) *Quote {
	t.Helper()
	q, err := NewQuote(
		"DEV-2026-0001",
		uuid.New(),
		time.Now(),
		time.Now().AddDate(0, 1, 0),
		validQuoteItems(),
		"",
		"Paiement à 30 jours",
	)
	require.NoError(t, err)
	return q
}

func TestNewQuote(t *testing.T) {
	t.Run("creates draft quote with computed totals", func(t *testing.T) {
		q := newTestQuote(t)
		assert.Equal(t, QuoteStatusDraft, q.Status)
		assert.True(t, q.TotalHT.Equal(dec("3000")))
		assert.True(t, q.TotalTVA.Equal(dec("600")))
		assert.True(t, q.TotalTTC.Equal(dec("3600")))
		assert.Equal(t, 1, q.Version)
		assert.Nil(t, q.ConvertedInvoiceID)
	})

	t.Run("requires a number", func(t *testing.T) {
		_, err := NewQuote("", uuid.New(), time.Now(), time.Now(), validQuoteItems(), "", "")
		assert.Error(t, err)
	})

	t.Run("requires a client", func(t *testing.T) {
		_, err := NewQuote("DEV-2026-0001", uuid.Nil, time.Now(), time.Now(), validQuoteItems(), "", "")
		assert.Error(t, err)
	})

	t.Run("requires at least one line", func(t *testing.T) {
		_, err := NewQuote("DEV-2026-0001", uuid.New(), time.Now(), time.Now(), nil, "", "")
		assert.Error(t, err)
	})

	t.Run("requires dates", func(t *testing.T) {
		_, err := NewQuote("DEV-2026-0001", uuid.New(), time.Time{}, time.Now(), validQuoteItems(), "", "")
		assert.Error(t, err)

		_, err = NewQuote("DEV-2026-0001", uuid.New(), time.Now(), time.Time{}, validQuoteItems(), "", "")
		assert.Error(t, err)
	})
}

func TestQuoteChangeStatus(t *testing.T) {
	t.Run("draft to sent", func(t *testing.T) {
		q := newTestQuote(t)
		require.NoError(t, q.ChangeStatus(QuoteStatusSent))
		assert.Equal(t, QuoteStatusSent, q.Status)
		assert.Equal(t, 2, q.Version)
	})

	t.Run("sent to accepted", func(t *testing.T) {
		q := newTestQuote(t)
		require.NoError(t, q.ChangeStatus(QuoteStatusSent))
		require.NoError(t, q.ChangeStatus(QuoteStatusAccepted))
		assert.Equal(t, QuoteStatusAccepted, q.Status)
	})

	t.Run("cannot set Converti manually", func(t *testing.T) {
		q := newTestQuote(t)
		err := q.ChangeStatus(QuoteStatusConverted)
		assert.Error(t, err)
		assert.Equal(t, QuoteStatusDraft, q.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		q := newTestQuote(t)
		assert.Error(t, q.ChangeStatus("Archivé"))
	})

	t.Run("converted quote is frozen", func(t *testing.T) {
		q := newTestQuote(t)
		require.NoError(t, q.MarkConverted(uuid.New()))
		assert.Error(t, q.ChangeStatus(QuoteStatusSent))
	})
}

func TestQuoteMarkConverted(t *testing.T) {
	t.Run("stores invoice id and moves to Converti", func(t *testing.T) {
		q := newTestQuote(t)
		invoiceID := uuid.New()
		require.NoError(t, q.MarkConverted(invoiceID))
		assert.True(t, q.IsConverted())
		require.NotNil(t, q.ConvertedInvoiceID)
		assert.Equal(t, invoiceID, *q.ConvertedInvoiceID)
	})

	t.Run("rejects double conversion", func(t *testing.T) {
		q := newTestQuote(t)
		require.NoError(t, q.MarkConverted(uuid.New()))
		assert.Error(t, q.MarkConverted(uuid.New()))
	})

	t.Run("requires invoice id", func(t *testing.T) {
		q := newTestQuote(t)
		assert.Error(t, q.MarkConverted(uuid.Nil))
	})
}

func TestQuoteStatusTransitions(t *testing.T) {
	assert.True(t, QuoteStatusDraft.CanTransitionTo(QuoteStatusSent))
	assert.True(t, QuoteStatusSent.CanTransitionTo(QuoteStatusRefused))
	assert.True(t, QuoteStatusRefused.CanTransitionTo(QuoteStatusSent))
	assert.False(t, QuoteStatusDraft.CanTransitionTo(QuoteStatusConverted))
	assert.False(t, QuoteStatusConverted.CanTransitionTo(QuoteStatusDraft))
	assert.False(t, QuoteStatusDraft.CanTransitionTo("Inconnu"))
}
