package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoices and credit notes
type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByNumber looks an invoice or credit note up by its document number.
	FindInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, error)

	// FindCreditNoteFor returns the credit note reversing originalInvoiceID, or apperrors.ErrNotFound.
	FindCreditNoteFor(ctx context.Context, originalInvoiceID string) (*domain.Invoice, error)

	// FindInvoiceForQuote returns the invoice issued from quoteID, or apperrors.ErrNotFound.
	FindInvoiceForQuote(ctx context.Context, quoteID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices and credit notes, most recent date first.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoices and credit notes
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice or credit note. The store guarantees that numbers
	// are unique, that at most one credit note references a given original invoice and that
	// a quote is invoiced at most once; violations yield apperrors.ErrDuplicate and nothing
	// is written.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoiceStatus overwrites the status field only.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedAt time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
