package dto

import (
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// CreateInvoiceRequest defines the data needed to issue an invoice directly, without a quote.
type CreateInvoiceRequest struct {
	ClientID string        `json:"clientId" binding:"required"`
	Date     string        `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DueDate  string        `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Items    []LineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceStatusRequest moves an invoice through its payment lifecycle.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,invoicestatus"`
}

// InvoiceResponse defines the data returned for an invoice or credit note.
type InvoiceResponse struct {
	ID                    string         `json:"id"`
	Number                string         `json:"number"`
	Type                  string         `json:"type"`
	QuoteID               *string        `json:"quoteId,omitempty"`
	OriginalInvoiceID     *string        `json:"originalInvoiceId,omitempty"`
	OriginalInvoiceNumber *string        `json:"originalInvoiceNumber,omitempty"`
	ClientID              string         `json:"clientId"`
	Date                  string         `json:"date"`
	DueDate               string         `json:"dueDate"`
	Status                string         `json:"status"`
	Items                 []LineResponse `json:"items"`
	TotalsResponse
	CreatedAt time.Time `json:"createdAt"`
}

func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                    inv.InvoiceID,
		Number:                inv.Number,
		Type:                  string(inv.Type),
		QuoteID:               inv.QuoteID,
		OriginalInvoiceID:     inv.OriginalInvoiceID,
		OriginalInvoiceNumber: inv.OriginalInvoiceNumber,
		ClientID:              inv.ClientID,
		Date:                  FormatDay(inv.Date),
		DueDate:               FormatDay(inv.DueDate),
		Status:                string(inv.Status),
		Items:                 ToLineResponses(inv.Items),
		TotalsResponse:        ToTotalsResponse(inv.Totals),
		CreatedAt:             inv.CreatedAt,
	}
}

func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
