package models

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// LineItem is the JSON shape of a billable line inside the items column.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     int             `json:"vatRate"`
}

// ToModelLines converts domain lines for storage, never returning nil.
func ToModelLines(lines []domain.QuoteLine) []LineItem {
	items := make([]LineItem, len(lines))
	for i, l := range lines {
		items[i] = LineItem{
			ID:          l.LineID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
		}
	}
	return items
}

// ToDomainLines converts stored lines back.
func ToDomainLines(items []LineItem) []domain.QuoteLine {
	lines := make([]domain.QuoteLine, len(items))
	for i, it := range items {
		lines[i] = domain.QuoteLine{
			LineID:      it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			VATRate:     it.VATRate,
		}
	}
	return lines
}
