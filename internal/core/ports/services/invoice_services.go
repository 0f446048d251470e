package services

import (
	"context"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices and credit notes
type InvoiceReaderSvc interface {
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoices and credit notes
type InvoiceWriterSvc interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoiceStatus applies the invoice state machine.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error)

	// CreateCreditNote reverses an invoice. At most one credit note exists per invoice;
	// a second request fails with apperrors.ErrDuplicate.
	CreateCreditNote(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
