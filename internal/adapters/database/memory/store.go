// Package memory holds repositories backed by process memory. They serve the
// STORAGE_DRIVER=memory mode and double as fakes in tests.
package memory

import (
	"fmt"
	"sync"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
)

type sequenceKey struct {
	prefix string
	year   int
}

// Store is the shared state behind every memory repository. A single lock
// guards all collections so that multi-collection writes are atomic.
type Store struct {
	mu             sync.RWMutex
	clients        map[string]domain.Client
	trainings      map[string]domain.TrainingModule
	quotes         map[string]domain.Quote
	invoices       map[string]domain.Invoice
	sessions       map[string]domain.Session
	certifications map[string]domain.Certification
	settings       *domain.CompanySettings
	sequences      map[sequenceKey]int64
}

func NewStore() *Store {
	return &Store{
		clients:        map[string]domain.Client{},
		trainings:      map[string]domain.TrainingModule{},
		quotes:         map[string]domain.Quote{},
		invoices:       map[string]domain.Invoice{},
		sessions:       map[string]domain.Session{},
		certifications: map[string]domain.Certification{},
		sequences:      map[sequenceKey]int64{},
	}
}

// NewRepositoryProvider exposes store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:        &ClientRepository{store: store},
		TrainingRepo:      &TrainingRepository{store: store},
		QuoteRepo:         &QuoteRepository{store: store},
		InvoiceRepo:       &InvoiceRepository{store: store},
		SessionRepo:       &SessionRepository{store: store},
		SettingsRepo:      &SettingsRepository{store: store},
		CertificationRepo: &CertificationRepository{store: store},
		SequenceRepo:      &SequenceRepository{store: store},
		SeedRepo:          &SeedRepository{store: store},
	}
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrNotFound, fmt.Sprintf(format, args...))
}

func duplicate(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, fmt.Sprintf(format, args...))
}

func cloneLines(lines []domain.QuoteLine) []domain.QuoteLine {
	if lines == nil {
		return nil
	}
	out := make([]domain.QuoteLine, len(lines))
	copy(out, lines)
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneQuote(q domain.Quote) domain.Quote {
	q.Items = cloneLines(q.Items)
	return q
}

func cloneInvoice(inv domain.Invoice) domain.Invoice {
	inv.Items = cloneLines(inv.Items)
	inv.QuoteID = cloneString(inv.QuoteID)
	inv.OriginalInvoiceID = cloneString(inv.OriginalInvoiceID)
	inv.OriginalInvoiceNumber = cloneString(inv.OriginalInvoiceNumber)
	return inv
}

func cloneSession(s domain.Session) domain.Session {
	if s.Trainees != nil {
		trainees := make([]domain.Trainee, len(s.Trainees))
		copy(trainees, s.Trainees)
		s.Trainees = trainees
	}
	return s
}
