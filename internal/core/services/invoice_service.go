package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
	"github.com/SscSPs/oris_formation_app/internal/platform/metrics"
)

// maxNumberAttempts bounds the search for a free invoice number.
const maxNumberAttempts = 20

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	seqRepo     portsrepo.SequenceRepository
	dueDays     int
}

// NewInvoiceService creates a new invoice service. dueDays is the payment delay applied
// when an invoice is created without a due date.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, seqRepo portsrepo.SequenceRepository, dueDays int, options ...Option) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{invoiceRepo: invoiceRepo, seqRepo: seqRepo, dueDays: dueDays}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// nextFreeInvoiceNumber draws FAC numbers until one is not used yet. Numbers derived from
// quotes share the FAC space with counter-issued ones.
func nextFreeInvoiceNumber(ctx context.Context, seqRepo portsrepo.SequenceRepository, invoiceRepo portsrepo.InvoiceReader, date time.Time) (string, error) {
	for i := 0; i < maxNumberAttempts; i++ {
		number, err := nextNumber(ctx, seqRepo, domain.PrefixInvoice, date)
		if err != nil {
			return "", err
		}
		_, err = invoiceRepo.FindInvoiceByNumber(ctx, number)
		if errors.Is(err, apperrors.ErrNotFound) {
			return number, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check invoice number %s: %w", number, err)
		}
	}
	return "", fmt.Errorf("%w: no free invoice number after %d attempts", apperrors.ErrDuplicate, maxNumberAttempts)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if strings.TrimSpace(req.ClientID) == "" {
		return nil, fmt.Errorf("%w: a client must be selected", apperrors.ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: an invoice needs at least one line", apperrors.ErrValidation)
	}
	lines, err := prepareLines(dto.ToQuoteLines(req.Items))
	if err != nil {
		return nil, err
	}
	date, err := parseOptionalDay("date", req.Date, s.Today())
	if err != nil {
		return nil, err
	}
	due, err := parseOptionalDay("dueDate", req.DueDate, date.AddDate(0, 0, s.dueDays))
	if err != nil {
		return nil, err
	}
	if due.Before(date) {
		return nil, fmt.Errorf("%w: dueDate is before the invoice date", apperrors.ErrValidation)
	}

	number, err := nextFreeInvoiceNumber(ctx, s.seqRepo, s.invoiceRepo, date)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to number invoice")
		return nil, err
	}

	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		Number:      number,
		Type:        domain.TypeInvoice,
		ClientID:    req.ClientID,
		Date:        date,
		DueDate:     due,
		Status:      domain.InvoicePending,
		Items:       lines,
		Totals:      domain.ComputeTotals(lines),
		AuditFields: auditNow(s.Now()),
	}
	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogOutcome(ctx, err, "Failed to save invoice", slog.String("number", number))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	metrics.DocumentsIssued.WithLabelValues(metrics.DocInvoice).Inc()
	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("number", number))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to get invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	previous := invoice.Status
	if err := invoice.Transition(status); err != nil {
		s.LogOutcome(ctx, err, "Rejected invoice status change", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	if previous == status {
		return invoice, nil
	}
	now := s.Now()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, status, now); err != nil {
		s.LogOutcome(ctx, err, "Failed to update invoice status", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}
	invoice.LastUpdatedAt = now
	s.LogInfo(ctx, "Invoice status changed", slog.String("invoice_id", invoiceID), slog.String("from", string(previous)), slog.String("to", string(status)))
	return invoice, nil
}

func (s *invoiceService) CreateCreditNote(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	original, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	existing, err := s.invoiceRepo.FindCreditNoteFor(ctx, invoiceID)
	switch {
	case err == nil:
		err = fmt.Errorf("%w: credit note %s already cancels invoice %s", apperrors.ErrDuplicate, existing.Number, original.Number)
		s.LogOutcome(ctx, err, "Credit note already exists", slog.String("invoice_id", invoiceID))
		return nil, err
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogOutcome(ctx, err, "Failed to look up credit notes", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to check credit notes of %s: %w", original.Number, err)
	}

	creditNote, err := domain.NewCreditNote(*original, uuid.NewString(), s.Today())
	if err != nil {
		return nil, err
	}
	creditNote.AuditFields = auditNow(s.Now())

	// The store enforces uniqueness again, so a concurrent request loses with ErrDuplicate.
	if err := s.invoiceRepo.SaveInvoice(ctx, creditNote); err != nil {
		s.LogOutcome(ctx, err, "Failed to save credit note", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to create credit note for %s: %w", original.Number, err)
	}
	metrics.DocumentsIssued.WithLabelValues(metrics.DocCreditNote).Inc()
	s.LogInfo(ctx, "Credit note created", slog.String("invoice_id", invoiceID), slog.String("number", creditNote.Number))
	return &creditNote, nil
}
