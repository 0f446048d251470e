package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// LineRequest is a billable line as sent by the client.
type LineRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     int             `json:"vatRate" binding:"vatrate"`
}

// ToQuoteLines converts the request lines. Ids are kept as sent; the service fills in missing ones.
func ToQuoteLines(reqs []LineRequest) []domain.QuoteLine {
	lines := make([]domain.QuoteLine, len(reqs))
	for i, r := range reqs {
		lines[i] = domain.QuoteLine{
			LineID:      r.ID,
			Description: r.Description,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			VATRate:     r.VATRate,
		}
	}
	return lines
}

// LineResponse is a billable line as returned to the client.
type LineResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     int             `json:"vatRate"`
	AmountHT    decimal.Decimal `json:"amountHt"`
}

// ToLineResponses converts domain lines, never returning nil.
func ToLineResponses(lines []domain.QuoteLine) []LineResponse {
	res := make([]LineResponse, len(lines))
	for i, l := range lines {
		res[i] = LineResponse{
			ID:          l.LineID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
			AmountHT:    l.AmountHT(),
		}
	}
	return res
}

// TotalsResponse carries the computed amounts of a document.
type TotalsResponse struct {
	TotalHT  decimal.Decimal `json:"totalHt"`
	TotalVAT decimal.Decimal `json:"totalVat"`
	TotalTTC decimal.Decimal `json:"totalTtc"`
}

func ToTotalsResponse(t domain.Totals) TotalsResponse {
	return TotalsResponse{TotalHT: t.TotalHT, TotalVAT: t.TotalVAT, TotalTTC: t.TotalTTC}
}

// FormatDay renders t as YYYY-MM-DD, or "" for the zero time.
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error      string `json:"error"`
	Collection string `json:"collection,omitempty"`
	Fallback   string `json:"fallback,omitempty"`
}
