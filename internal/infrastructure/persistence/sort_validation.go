package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// Column names follow the historical French schema (numero, statut, ville),
// which is also what the API exposes as sort keys.

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// QuoteSortFields contains allowed sort fields for quotes
var QuoteSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"numero":     true,
	"client_id":  true,
	"date":       true,
	"validite":   true,
	"statut":     true,
	"total_ht":   true,
	"total_ttc":  true,
}

// InvoiceSortFields contains allowed sort fields for invoices
var InvoiceSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"numero":        true,
	"client_id":     true,
	"quote_id":      true,
	"kind":          true,
	"date":          true,
	"date_echeance": true,
	"statut":        true,
	"total_ht":      true,
	"total_ttc":     true,
	"paid_at":       true,
}

// PaymentSortFields contains allowed sort fields for payments
var PaymentSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"invoice_id":     true,
	"client_id":      true,
	"montant":        true,
	"date":           true,
	"moyen_paiement": true,
	"reference":      true,
}

// ClientSortFields contains allowed sort fields for clients
var ClientSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"nom":         true,
	"email":       true,
	"ville":       true,
	"code_postal": true,
	"pays":        true,
}
