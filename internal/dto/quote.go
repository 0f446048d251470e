package dto

import (
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// SaveQuoteRequest defines the data needed to issue a quote.
// Missing client or lines are reported as validation errors by the service.
type SaveQuoteRequest struct {
	ClientID   string        `json:"clientId"`
	Date       string        `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ValidUntil string        `json:"validUntil" binding:"omitempty,datetime=2006-01-02"`
	Notes      string        `json:"notes"`
	Items      []LineRequest `json:"items" binding:"dive"`
}

// UpdateQuoteStatusRequest moves a quote through its lifecycle.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required,quotestatus"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	ID         string         `json:"id"`
	Number     string         `json:"number"`
	ClientID   string         `json:"clientId"`
	ClientName string         `json:"clientName,omitempty"`
	Date       string         `json:"date"`
	ValidUntil string         `json:"validUntil"`
	Status     string         `json:"status"`
	Items      []LineResponse `json:"items"`
	Notes      string         `json:"notes"`
	TotalsResponse
	CreatedAt time.Time `json:"createdAt"`
}

func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.QuoteID,
		Number:         q.Number,
		ClientID:       q.ClientID,
		Date:           FormatDay(q.Date),
		ValidUntil:     FormatDay(q.ValidUntil),
		Status:         string(q.Status),
		Items:          ToLineResponses(q.Items),
		Notes:          q.Notes,
		TotalsResponse: ToTotalsResponse(q.Totals),
		CreatedAt:      q.CreatedAt,
	}
}

func ToListQuoteResponse(quotes []domain.Quote) []QuoteResponse {
	res := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		res[i] = ToQuoteResponse(&quotes[i])
	}
	return res
}

// NewDraftRequest opens a quote draft.
type NewDraftRequest struct {
	ClientID   string `json:"clientId"`
	Date       string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ValidUntil string `json:"validUntil" binding:"omitempty,datetime=2006-01-02"`
	Notes      string `json:"notes"`
}

// UpdateDraftRequest edits the header of a draft. Nil fields are left untouched.
type UpdateDraftRequest struct {
	ClientID   *string `json:"clientId"`
	Date       *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ValidUntil *string `json:"validUntil" binding:"omitempty,datetime=2006-01-02"`
	Notes      *string `json:"notes"`
}

// UpdateLineRequest edits one field of a draft line.
type UpdateLineRequest struct {
	Field string `json:"field" binding:"required,oneof=description quantity unitPrice vatRate"`
	Value string `json:"value"`
}

// DraftResponse defines the data returned for a quote draft.
type DraftResponse struct {
	ID         string         `json:"id"`
	ClientID   string         `json:"clientId"`
	Date       string         `json:"date"`
	ValidUntil string         `json:"validUntil"`
	Notes      string         `json:"notes"`
	Items      []LineResponse `json:"items"`
	TotalsResponse
}

func ToDraftResponse(d *domain.QuoteDraft) DraftResponse {
	return DraftResponse{
		ID:             d.DraftID,
		ClientID:       d.ClientID,
		Date:           FormatDay(d.Date),
		ValidUntil:     FormatDay(d.ValidUntil),
		Notes:          d.Notes,
		Items:          ToLineResponses(d.Items),
		TotalsResponse: ToTotalsResponse(d.Totals),
	}
}
