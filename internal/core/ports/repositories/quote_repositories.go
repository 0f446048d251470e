package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// QuoteReader defines read operations for quote data
type QuoteReader interface {
	// FindQuoteByID retrieves a quote with its line items.
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)

	// ListQuotes retrieves all quotes, most recent date first.
	ListQuotes(ctx context.Context) ([]domain.Quote, error)
}

// QuoteWriter defines write operations for quote data
type QuoteWriter interface {
	// SaveQuote persists a new quote. A number already in use yields apperrors.ErrDuplicate.
	SaveQuote(ctx context.Context, quote domain.Quote) error

	// UpdateQuoteStatus overwrites the status field only.
	UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, updatedAt time.Time) error

	DeleteQuote(ctx context.Context, quoteID string) error
}

// QuoteRepositoryFacade combines all quote-related repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}
