package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/documents"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/core/ports/renderers"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/platform/metrics"
)

type documentService struct {
	BaseService
	repos    portsrepo.RepositoryProvider
	settings portssvc.SettingsSvcFacade
	renderer renderers.DocumentRenderer
	minRows  int
}

// NewDocumentService creates the service that lays out and renders printable documents.
func NewDocumentService(repos portsrepo.RepositoryProvider, settings portssvc.SettingsSvcFacade, renderer renderers.DocumentRenderer, minRows int, options ...Option) portssvc.DocumentSvcFacade {
	if minRows <= 0 {
		minRows = documents.MinAttendanceRows
	}
	svc := &documentService{repos: repos, settings: settings, renderer: renderer, minRows: minRows}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// clientOrNil resolves a client reference. A dangling reference yields nil so the
// document prints the unknown-client placeholder.
func (s *documentService) clientOrNil(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.repos.ClientRepo.FindClientByID(ctx, clientID)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Document references a missing client", slog.String("client_id", clientID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *documentService) QuoteDocument(ctx context.Context, quoteID string) (*documents.BillingSheet, error) {
	quote, err := s.repos.QuoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote %s: %w", quoteID, err)
	}
	client, err := s.clientOrNil(ctx, quote.ClientID)
	if err != nil {
		return nil, err
	}
	company, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	sheet := documents.QuoteSheet(*quote, client, *company)
	return &sheet, nil
}

func (s *documentService) InvoiceDocument(ctx context.Context, invoiceID string) (*documents.BillingSheet, error) {
	invoice, err := s.repos.InvoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice %s: %w", invoiceID, err)
	}
	client, err := s.clientOrNil(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}
	company, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	sheet := documents.InvoiceSheet(*invoice, client, *company)
	return &sheet, nil
}

type sessionContext struct {
	session  *domain.Session
	training *domain.TrainingModule
	client   *domain.Client
	company  *domain.CompanySettings
}

func (s *documentService) loadSession(ctx context.Context, sessionID string) (*sessionContext, error) {
	session, err := s.repos.SessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	training, err := s.repos.TrainingRepo.FindTrainingByID(ctx, session.TrainingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load training %s of session %s: %w", session.TrainingID, sessionID, err)
	}
	client, err := s.clientOrNil(ctx, session.ClientID)
	if err != nil {
		return nil, err
	}
	company, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return &sessionContext{session: session, training: training, client: client, company: company}, nil
}

func (s *documentService) AttendanceDocument(ctx context.Context, sessionID string) (*documents.AttendanceSheet, error) {
	sc, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sheet := documents.NewAttendanceSheet(*sc.session, *sc.training, sc.client, *sc.company, s.minRows)
	return &sheet, nil
}

func (s *documentService) CertificateDocument(ctx context.Context, sessionID string) (*documents.CertificateSet, error) {
	sc, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	set := documents.NewCertificateSet(*sc.session, *sc.training, sc.client, *sc.company)
	return &set, nil
}

func (s *documentService) RenderPDF(ctx context.Context, kind documents.Kind, id string) (*portssvc.RenderedDocument, error) {
	var (
		fileName string
		render   func() ([]byte, error)
	)
	switch kind {
	case documents.KindQuote:
		sheet, err := s.QuoteDocument(ctx, id)
		if err != nil {
			return nil, err
		}
		fileName, render = sheet.FileName, func() ([]byte, error) { return s.renderer.RenderBilling(ctx, *sheet) }
	case documents.KindInvoice, documents.KindCreditNote:
		sheet, err := s.InvoiceDocument(ctx, id)
		if err != nil {
			return nil, err
		}
		kind = sheet.Kind
		fileName, render = sheet.FileName, func() ([]byte, error) { return s.renderer.RenderBilling(ctx, *sheet) }
	case documents.KindAttendance:
		sheet, err := s.AttendanceDocument(ctx, id)
		if err != nil {
			return nil, err
		}
		fileName, render = sheet.FileName, func() ([]byte, error) { return s.renderer.RenderAttendance(ctx, *sheet) }
	case documents.KindCertificate:
		set, err := s.CertificateDocument(ctx, id)
		if err != nil {
			return nil, err
		}
		fileName, render = set.FileName, func() ([]byte, error) { return s.renderer.RenderCertificates(ctx, *set) }
	default:
		return nil, fmt.Errorf("%w: unknown document kind %q", apperrors.ErrValidation, kind)
	}

	start := time.Now()
	content, err := render()
	metrics.RenderDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DocumentRenders.WithLabelValues(string(kind), "error").Inc()
		if !errors.Is(err, apperrors.ErrRender) {
			err = fmt.Errorf("%w: %v", apperrors.ErrRender, err)
		}
		s.LogError(ctx, err, "PDF rendering failed", slog.String("kind", string(kind)), slog.String("id", id))
		return nil, err
	}
	metrics.DocumentRenders.WithLabelValues(string(kind), "ok").Inc()
	s.LogInfo(ctx, "Document rendered", slog.String("kind", string(kind)), slog.String("file", fileName), slog.Int("bytes", len(content)))
	return &portssvc.RenderedDocument{FileName: fileName, Content: content}, nil
}
