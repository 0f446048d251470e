package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/oris_formation_app/internal/core/documents"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/core/ports/renderers"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}

// --- Mock TrainingRepository ---
type MockTrainingRepository struct {
	mock.Mock
}

var _ portsrepo.TrainingRepositoryFacade = (*MockTrainingRepository)(nil)

func (m *MockTrainingRepository) FindTrainingByID(ctx context.Context, trainingID string) (*domain.TrainingModule, error) {
	args := m.Called(ctx, trainingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingModule), args.Error(1)
}

func (m *MockTrainingRepository) FindTrainingByTitle(ctx context.Context, title string) (*domain.TrainingModule, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingModule), args.Error(1)
}

func (m *MockTrainingRepository) ListTrainings(ctx context.Context) ([]domain.TrainingModule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrainingModule), args.Error(1)
}

func (m *MockTrainingRepository) SaveTraining(ctx context.Context, training domain.TrainingModule) error {
	return m.Called(ctx, training).Error(0)
}

func (m *MockTrainingRepository) UpdateTraining(ctx context.Context, training domain.TrainingModule) error {
	return m.Called(ctx, training).Error(0)
}

func (m *MockTrainingRepository) DeleteTraining(ctx context.Context, trainingID string) error {
	return m.Called(ctx, trainingID).Error(0)
}

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
}

var _ portsrepo.QuoteRepositoryFacade = (*MockQuoteRepository)(nil)

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	return m.Called(ctx, quote).Error(0)
}

func (m *MockQuoteRepository) UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, updatedAt time.Time) error {
	return m.Called(ctx, quoteID, status, updatedAt).Error(0)
}

func (m *MockQuoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	return m.Called(ctx, quoteID).Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindCreditNoteFor(ctx context.Context, originalInvoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, originalInvoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceForQuote(ctx context.Context, quoteID string) (*domain.Invoice, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedAt time.Time) error {
	return m.Called(ctx, invoiceID, status, updatedAt).Error(0)
}

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

var _ portsrepo.SessionRepositoryFacade = (*MockSessionRepository)(nil)

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) ListSessions(ctx context.Context) ([]domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) UpdateSession(ctx context.Context, session domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) FindSettings(ctx context.Context) (*domain.CompanySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.CompanySettings) error {
	return m.Called(ctx, settings).Error(0)
}

// --- Mock CertificationRepository ---
type MockCertificationRepository struct {
	mock.Mock
}

var _ portsrepo.CertificationRepositoryFacade = (*MockCertificationRepository)(nil)

func (m *MockCertificationRepository) SaveCertification(ctx context.Context, cert domain.Certification) error {
	return m.Called(ctx, cert).Error(0)
}

func (m *MockCertificationRepository) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}

func (m *MockCertificationRepository) DeleteCertification(ctx context.Context, certificationID string) error {
	return m.Called(ctx, certificationID).Error(0)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextSequence(ctx context.Context, prefix string, year int) (int64, error) {
	args := m.Called(ctx, prefix, year)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock SeedRepository ---
type MockSeedRepository struct {
	mock.Mock
}

var _ portsrepo.SeedRepository = (*MockSeedRepository)(nil)

func (m *MockSeedRepository) SeedDemoData(ctx context.Context, data domain.DemoData) error {
	return m.Called(ctx, data).Error(0)
}

// --- Mock QuoteWriterSvc ---
type MockQuoteWriter struct {
	mock.Mock
}

var _ portssvc.QuoteWriterSvc = (*MockQuoteWriter)(nil)

func (m *MockQuoteWriter) SaveQuote(ctx context.Context, req dto.SaveQuoteRequest) (*domain.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteWriter) TransitionQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteWriter) ConvertToInvoice(ctx context.Context, quoteID string) (*domain.Invoice, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockQuoteWriter) DeleteQuote(ctx context.Context, quoteID string) error {
	return m.Called(ctx, quoteID).Error(0)
}

// --- Mock DocumentRenderer ---
type MockRenderer struct {
	mock.Mock
}

var _ renderers.DocumentRenderer = (*MockRenderer)(nil)

func (m *MockRenderer) RenderBilling(ctx context.Context, sheet documents.BillingSheet) ([]byte, error) {
	args := m.Called(ctx, sheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RenderAttendance(ctx context.Context, sheet documents.AttendanceSheet) ([]byte, error) {
	args := m.Called(ctx, sheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RenderCertificates(ctx context.Context, set documents.CertificateSet) ([]byte, error) {
	args := m.Called(ctx, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// fixedClock pins service time to 2024-06-01 09:00 UTC.
func fixedClock() time.Time {
	return time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
}
