package billing

import (
	"fmt"
	"time"
)

// DocumentType identifies a numbered document family
type DocumentType string

const (
	DocumentTypeQuote   DocumentType = "QUOTE"
	DocumentTypeInvoice DocumentType = "INVOICE"
)

// IsValid checks if the document type is valid
func (t DocumentType) IsValid() bool {
	return t == DocumentTypeQuote || t == DocumentTypeInvoice
}

// String returns the string representation of DocumentType
func (t DocumentType) String() string {
	return string(t)
}

// Granularity determines how often a numbering sequence resets
type Granularity string

const (
	GranularityYearly  Granularity = "YEARLY"
	GranularityMonthly Granularity = "MONTHLY"
)

// IsValid checks if the granularity is valid
func (g Granularity) IsValid() bool {
	return g == GranularityYearly || g == GranularityMonthly
}

// SequenceSpec describes the numbering scheme of one document family.
// All document numbers are derived from a spec so formatting lives in
// exactly one place.
type SequenceSpec struct {
	DocumentType DocumentType
	Prefix       string
	Granularity  Granularity
	PadWidth     int
}

// QuoteSequenceSpec returns the numbering spec for quotes (DEV-2026-0001)
func QuoteSequenceSpec(prefix string) SequenceSpec {
	if prefix == "" {
		prefix = "DEV"
	}
	return SequenceSpec{
		DocumentType: DocumentTypeQuote,
		Prefix:       prefix,
		Granularity:  GranularityYearly,
		PadWidth:     4,
	}
}

// InvoiceSequenceSpec returns the numbering spec for invoices (FACT-2026-0001)
func InvoiceSequenceSpec(prefix string) SequenceSpec {
	if prefix == "" {
		prefix = "FACT"
	}
	return SequenceSpec{
		DocumentType: DocumentTypeInvoice,
		Prefix:       prefix,
		Granularity:  GranularityYearly,
		PadWidth:     4,
	}
}

// ScopeKey returns the sequence scope for the given time: "2026" for yearly
// specs, "202608" for monthly ones. Counters reset whenever the scope changes.
func (s SequenceSpec) ScopeKey(t time.Time) string {
	if s.Granularity == GranularityMonthly {
		return t.Format("200601")
	}
	return t.Format("2006")
}

// Format renders a document number from an allocated sequence value,
// e.g. Format("2026", 12) -> "DEV-2026-0012".
func (s SequenceSpec) Format(scopeKey string, seq int64) string {
	return fmt.Sprintf("%s-%s-%0*d", s.Prefix, scopeKey, s.PadWidth, seq)
}
