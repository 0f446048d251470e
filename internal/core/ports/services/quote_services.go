package services

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// QuoteReaderSvc defines read operations for quotes
type QuoteReaderSvc interface {
	GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)
	ListQuotes(ctx context.Context) ([]domain.Quote, error)
}

// QuoteWriterSvc defines write operations for quotes
type QuoteWriterSvc interface {
	// SaveQuote numbers, totals and stores a new quote in the Sent state.
	SaveQuote(ctx context.Context, req dto.SaveQuoteRequest) (*domain.Quote, error)

	// TransitionQuoteStatus applies the quote state machine.
	TransitionQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus) (*domain.Quote, error)

	// ConvertToInvoice issues the single invoice of a sent or accepted quote and marks the quote accepted.
	ConvertToInvoice(ctx context.Context, quoteID string) (*domain.Invoice, error)

	DeleteQuote(ctx context.Context, quoteID string) error
}

// QuoteSvcFacade combines all quote-related service interfaces
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteWriterSvc
}

// QuoteDraftSvcFacade edits quotes before they are saved. Drafts live in memory only.
type QuoteDraftSvcFacade interface {
	NewDraft(ctx context.Context, req dto.NewDraftRequest) (*domain.QuoteDraft, error)
	GetDraft(ctx context.Context, draftID string) (*domain.QuoteDraft, error)
	UpdateDraft(ctx context.Context, draftID string, req dto.UpdateDraftRequest) (*domain.QuoteDraft, error)

	// AddLine appends a line with quantity 1, price 0 and the default VAT rate.
	AddLine(ctx context.Context, draftID string) (*domain.QuoteDraft, error)

	// UpdateLine sets one field of a line. Setting the description to the exact title of a
	// catalog entry also copies that entry's price.
	UpdateLine(ctx context.Context, draftID, lineID string, req dto.UpdateLineRequest) (*domain.QuoteDraft, error)

	RemoveLine(ctx context.Context, draftID, lineID string) (*domain.QuoteDraft, error)

	// SaveDraft saves the draft as a quote and discards it.
	SaveDraft(ctx context.Context, draftID string) (*domain.Quote, error)

	DiscardDraft(ctx context.Context, draftID string) error
}
