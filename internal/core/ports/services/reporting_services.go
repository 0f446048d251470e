package services

import (
	"context"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/documents"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// DashboardService computes the home page figures.
type DashboardService interface {
	GetDashboard(ctx context.Context, today time.Time) (*domain.Dashboard, error)
}

// DocumentReaderSvc builds print layouts.
type DocumentReaderSvc interface {
	QuoteDocument(ctx context.Context, quoteID string) (*documents.BillingSheet, error)
	InvoiceDocument(ctx context.Context, invoiceID string) (*documents.BillingSheet, error)
	AttendanceDocument(ctx context.Context, sessionID string) (*documents.AttendanceSheet, error)
	CertificateDocument(ctx context.Context, sessionID string) (*documents.CertificateSet, error)
}

// RenderedDocument is a PDF ready to be downloaded.
type RenderedDocument struct {
	FileName string
	Content  []byte
}

// DocumentRendererSvc renders print layouts to PDF.
type DocumentRendererSvc interface {
	// RenderPDF builds and renders the document of the given kind. Renderer failures are
	// reported as apperrors.ErrRender so callers can fall back to printing the JSON layout.
	RenderPDF(ctx context.Context, kind documents.Kind, id string) (*RenderedDocument, error)
}

// DocumentSvcFacade combines layout and rendering operations
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentRendererSvc
}

// SeedService loads demo data.
type SeedService interface {
	Seed(ctx context.Context) (*dto.SeedResponse, error)
}
