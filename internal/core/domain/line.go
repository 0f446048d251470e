package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
)

// Allowed VAT rates, in percent.
var allowedVATRates = map[int]bool{0: true, 10: true, 20: true}

// DefaultVATRate is applied to freshly added lines.
const DefaultVATRate = 20

// IsAllowedVATRate reports whether rate is one of 0, 10 or 20.
func IsAllowedVATRate(rate int) bool {
	return allowedVATRates[rate]
}

// QuoteLine is a single billable line. It belongs to exactly one quote or invoice.
type QuoteLine struct {
	LineID      string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     int             `json:"vatRate"` // 0, 10, 20
}

// AmountHT returns quantity × unit price.
func (l QuoteLine) AmountHT() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// AmountVAT returns quantity × unit price × rate / 100.
func (l QuoteLine) AmountVAT() decimal.Decimal {
	return l.AmountHT().Mul(decimal.NewFromInt(int64(l.VATRate))).Shift(-2)
}

// Validate checks the VAT rate and quantity of the line.
func (l QuoteLine) Validate() error {
	if !IsAllowedVATRate(l.VATRate) {
		return fmt.Errorf("%w: vat rate %d is not one of 0, 10, 20", apperrors.ErrValidation, l.VATRate)
	}
	if l.Quantity.IsNegative() {
		return fmt.Errorf("%w: quantity must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// CloneLines returns a fresh copy of lines so that no two documents share a backing array.
func CloneLines(lines []QuoteLine) []QuoteLine {
	if lines == nil {
		return nil
	}
	out := make([]QuoteLine, len(lines))
	copy(out, lines)
	return out
}

// Totals holds the computed amounts of a document.
type Totals struct {
	TotalHT  decimal.Decimal `json:"totalHt"`
	TotalVAT decimal.Decimal `json:"totalVat"`
	TotalTTC decimal.Decimal `json:"totalTtc"`
}

// ComputeTotals sums the lines. TTC is always exactly HT + VAT.
func ComputeTotals(lines []QuoteLine) Totals {
	ht := decimal.Zero
	vat := decimal.Zero
	for _, l := range lines {
		ht = ht.Add(l.AmountHT())
		vat = vat.Add(l.AmountVAT())
	}
	return Totals{
		TotalHT:  ht,
		TotalVAT: vat,
		TotalTTC: ht.Add(vat),
	}
}
