package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
	"github.com/SscSPs/oris_formation_app/internal/platform/metrics"
)

// Default delays, in days, applied when configuration does not override them.
const (
	DefaultQuoteValidityDays = 30
	DefaultInvoiceDueDays    = 30
)

type quoteService struct {
	BaseService
	quoteRepo    portsrepo.QuoteRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	seqRepo      portsrepo.SequenceRepository
	validityDays int
	dueDays      int
}

// QuoteServiceOption configures the quote service.
type QuoteServiceOption func(*quoteService)

// WithQuoteValidityDays sets how long a quote stays valid when no date is given.
func WithQuoteValidityDays(days int) QuoteServiceOption {
	return func(s *quoteService) {
		s.validityDays = days
	}
}

// WithQuoteInvoiceDueDays sets the payment delay of invoices issued from quotes.
func WithQuoteInvoiceDueDays(days int) QuoteServiceOption {
	return func(s *quoteService) {
		s.dueDays = days
	}
}

// WithQuoteBaseOptions applies shared service options.
func WithQuoteBaseOptions(options ...Option) QuoteServiceOption {
	return func(s *quoteService) {
		applyOptions(&s.BaseService, options)
	}
}

// NewQuoteService creates a new quote service.
func NewQuoteService(quoteRepo portsrepo.QuoteRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade, seqRepo portsrepo.SequenceRepository, options ...QuoteServiceOption) portssvc.QuoteSvcFacade {
	svc := &quoteService{
		quoteRepo:    quoteRepo,
		invoiceRepo:  invoiceRepo,
		seqRepo:      seqRepo,
		validityDays: DefaultQuoteValidityDays,
		dueDays:      DefaultInvoiceDueDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

// prepareLines validates lines and gives an id to those without one.
func prepareLines(lines []domain.QuoteLine) ([]domain.QuoteLine, error) {
	out := domain.CloneLines(lines)
	for i := range out {
		if err := out[i].Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if out[i].LineID == "" {
			out[i].LineID = uuid.NewString()
		}
	}
	return out, nil
}

func (s *quoteService) SaveQuote(ctx context.Context, req dto.SaveQuoteRequest) (*domain.Quote, error) {
	if strings.TrimSpace(req.ClientID) == "" {
		return nil, fmt.Errorf("%w: a client must be selected", apperrors.ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: a quote needs at least one line", apperrors.ErrValidation)
	}
	lines, err := prepareLines(dto.ToQuoteLines(req.Items))
	if err != nil {
		return nil, err
	}
	date, err := parseOptionalDay("date", req.Date, s.Today())
	if err != nil {
		return nil, err
	}
	validUntil, err := parseOptionalDay("validUntil", req.ValidUntil, date.AddDate(0, 0, s.validityDays))
	if err != nil {
		return nil, err
	}
	if validUntil.Before(date) {
		return nil, fmt.Errorf("%w: validUntil is before the quote date", apperrors.ErrValidation)
	}

	number, err := nextNumber(ctx, s.seqRepo, domain.PrefixQuote, date)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to number quote")
		return nil, err
	}

	quote := domain.Quote{
		QuoteID:     uuid.NewString(),
		Number:      number,
		ClientID:    req.ClientID,
		Date:        date,
		ValidUntil:  validUntil,
		Status:      domain.QuoteSent,
		Items:       lines,
		Notes:       req.Notes,
		Totals:      domain.ComputeTotals(lines),
		AuditFields: auditNow(s.Now()),
	}

	if err := s.quoteRepo.SaveQuote(ctx, quote); err != nil {
		s.LogOutcome(ctx, err, "Failed to save quote", slog.String("number", number))
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}
	metrics.DocumentsIssued.WithLabelValues(metrics.DocQuote).Inc()
	s.LogInfo(ctx, "Quote saved", slog.String("quote_id", quote.QuoteID), slog.String("number", number), slog.String("total_ttc", quote.TotalTTC.String()))
	return &quote, nil
}

func (s *quoteService) GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to get quote", slog.String("quote_id", quoteID))
		return nil, fmt.Errorf("failed to get quote %s: %w", quoteID, err)
	}
	return quote, nil
}

func (s *quoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.ListQuotes(ctx)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to list quotes")
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	if quotes == nil {
		return []domain.Quote{}, nil
	}
	return quotes, nil
}

func (s *quoteService) TransitionQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus) (*domain.Quote, error) {
	quote, err := s.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	previous := quote.Status
	if err := quote.Transition(status); err != nil {
		s.LogOutcome(ctx, err, "Rejected quote status change", slog.String("quote_id", quoteID))
		return nil, err
	}
	if previous == status {
		return quote, nil
	}
	now := s.Now()
	if err := s.quoteRepo.UpdateQuoteStatus(ctx, quoteID, status, now); err != nil {
		s.LogOutcome(ctx, err, "Failed to update quote status", slog.String("quote_id", quoteID))
		return nil, fmt.Errorf("failed to update quote %s: %w", quoteID, err)
	}
	quote.LastUpdatedAt = now
	s.LogInfo(ctx, "Quote status changed", slog.String("quote_id", quoteID), slog.String("from", string(previous)), slog.String("to", string(status)))
	return quote, nil
}

func (s *quoteService) ConvertToInvoice(ctx context.Context, quoteID string) (*domain.Invoice, error) {
	quote, err := s.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if !quote.CanConvert() {
		return nil, fmt.Errorf("%w: quote %s is %s, only sent or accepted quotes can be invoiced", apperrors.ErrInvalidTransition, quote.Number, quote.Status)
	}

	existing, err := s.invoiceRepo.FindInvoiceForQuote(ctx, quoteID)
	switch {
	case err == nil:
		if quote.Status == domain.QuoteAccepted {
			return nil, fmt.Errorf("%w: quote %s is already invoiced as %s", apperrors.ErrDuplicate, quote.Number, existing.Number)
		}
		// An earlier conversion saved the invoice but stopped before accepting the quote.
		if err := s.acceptConverted(ctx, quote, existing.InvoiceID); err != nil {
			return nil, err
		}
		s.GetLogger(ctx).Warn("Completed interrupted quote conversion",
			slog.String("quote_id", quoteID), slog.String("invoice_number", existing.Number))
		return existing, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogOutcome(ctx, err, "Failed to look up invoice of quote", slog.String("quote_id", quoteID))
		return nil, fmt.Errorf("failed to check invoices of quote %s: %w", quote.Number, err)
	}

	invoice := domain.NewInvoiceFromQuote(*quote, uuid.NewString(), s.Today(), s.dueDays)
	invoice.AuditFields = auditNow(s.Now())

	if taken, err := s.numberTaken(ctx, invoice.Number); err != nil {
		return nil, err
	} else if taken {
		fallback, err := nextFreeInvoiceNumber(ctx, s.seqRepo, s.invoiceRepo, invoice.Date)
		if err != nil {
			return nil, err
		}
		s.GetLogger(ctx).Warn("Derived invoice number already used, drawing a new one",
			slog.String("derived", invoice.Number), slog.String("number", fallback))
		invoice.Number = fallback
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogOutcome(ctx, err, "Failed to save invoice from quote", slog.String("quote_id", quoteID))
		return nil, fmt.Errorf("failed to convert quote %s: %w", quote.Number, err)
	}
	metrics.DocumentsIssued.WithLabelValues(metrics.DocInvoice).Inc()

	if quote.Status != domain.QuoteAccepted {
		if err := s.acceptConverted(ctx, quote, invoice.InvoiceID); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "Quote converted to invoice", slog.String("quote_id", quoteID), slog.String("invoice_number", invoice.Number))
	return &invoice, nil
}

// acceptConverted marks an invoiced quote accepted. Converting the quote again finishes the job if this fails.
func (s *quoteService) acceptConverted(ctx context.Context, quote *domain.Quote, invoiceID string) error {
	if err := s.quoteRepo.UpdateQuoteStatus(ctx, quote.QuoteID, domain.QuoteAccepted, s.Now()); err != nil {
		s.LogError(ctx, err, "Invoice issued but quote could not be marked accepted",
			slog.String("quote_id", quote.QuoteID), slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to accept quote %s: %w", quote.Number, err)
	}
	return nil
}

func (s *quoteService) numberTaken(ctx context.Context, number string) (bool, error) {
	_, err := s.invoiceRepo.FindInvoiceByNumber(ctx, number)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check invoice number %s: %w", number, err)
	}
}

func (s *quoteService) DeleteQuote(ctx context.Context, quoteID string) error {
	if err := s.quoteRepo.DeleteQuote(ctx, quoteID); err != nil {
		s.LogOutcome(ctx, err, "Failed to delete quote", slog.String("quote_id", quoteID))
		return fmt.Errorf("failed to delete quote %s: %w", quoteID, err)
	}
	return nil
}
