package billing

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// LineItem represents one line of a quote or invoice.
// It is a value object within the Quote/Invoice aggregates, stored as JSONB.
// Negative quantities or unit prices are allowed: deposit deductions are
// expressed as negative lines on final invoices.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantite"`
	UnitPrice   decimal.Decimal `json:"prix_unitaire"`
	TaxRate     decimal.Decimal `json:"taux_tva"`
}

// TotalHT returns the tax-exclusive amount of the line (quantity x unit price)
func (l LineItem) TotalHT() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// TotalTVA returns the tax amount of the line
func (l LineItem) TotalTVA() decimal.Decimal {
	return l.TotalHT().Mul(l.TaxRate).Div(decimal.NewFromInt(100))
}

// LineItems is a slice of LineItem that implements GORM Scanner/Valuer for JSONB storage
type LineItems []LineItem

// Value implements driver.Valuer interface for GORM to store as JSONB
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for GORM to read from JSONB.
// Historical rows stored the array double-serialized (a JSON string holding
// a JSON array); both encodings are accepted. Rows that decode to neither
// yield an empty slice rather than failing the whole read.
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = LineItems{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan LineItems: unsupported type")
	}

	if len(bytes) == 0 {
		*l = LineItems{}
		return nil
	}

	if err := json.Unmarshal(bytes, l); err == nil {
		return nil
	}

	var nested string
	if err := json.Unmarshal(bytes, &nested); err == nil {
		var items LineItems
		if err := json.Unmarshal([]byte(nested), &items); err == nil {
			*l = items
			return nil
		}
	}

	*l = LineItems{}
	return nil
}

// Totals holds the three amounts of a French commercial document
type Totals struct {
	TotalHT  decimal.Decimal `json:"total_ht"`
	TotalTVA decimal.Decimal `json:"total_tva"`
	TotalTTC decimal.Decimal `json:"total_ttc"`
}

// ComputeTotals sums the line amounts without intermediate rounding:
// HT = sum(qty x unit price), TVA = sum(qty x unit price x rate/100),
// TTC = HT + TVA. Negative lines flow through unchanged.
func ComputeTotals(items []LineItem) Totals {
	totalHT := decimal.Zero
	totalTVA := decimal.Zero
	for _, item := range items {
		totalHT = totalHT.Add(item.TotalHT())
		totalTVA = totalTVA.Add(item.TotalTVA())
	}
	return Totals{
		TotalHT:  totalHT,
		TotalTVA: totalTVA,
		TotalTTC: totalHT.Add(totalTVA),
	}
}
