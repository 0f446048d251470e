package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/documents"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	clients   *MockClientRepository
	trainings *MockTrainingRepository
	quotes    *MockQuoteRepository
	invoices  *MockInvoiceRepository
	sessions  *MockSessionRepository
	settings  *MockSettingsRepository
	certs     *MockCertificationRepository
	renderer  *MockRenderer
	repos     portsrepo.RepositoryProvider
	ctx       context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.clients = new(MockClientRepository)
	suite.trainings = new(MockTrainingRepository)
	suite.quotes = new(MockQuoteRepository)
	suite.invoices = new(MockInvoiceRepository)
	suite.sessions = new(MockSessionRepository)
	suite.settings = new(MockSettingsRepository)
	suite.certs = new(MockCertificationRepository)
	suite.renderer = new(MockRenderer)
	suite.repos = portsrepo.RepositoryProvider{
		ClientRepo:        suite.clients,
		TrainingRepo:      suite.trainings,
		QuoteRepo:         suite.quotes,
		InvoiceRepo:       suite.invoices,
		SessionRepo:       suite.sessions,
		SettingsRepo:      suite.settings,
		CertificationRepo: suite.certs,
	}
	suite.ctx = context.Background()
}

func day(s string) time.Time {
	d, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func invoiceOf(number string, typ domain.InvoiceType, status domain.InvoiceStatus, date string, ht int64) domain.Invoice {
	return domain.Invoice{
		Number: number,
		Type:   typ,
		Status: status,
		Date:   day(date),
		Totals: domain.Totals{TotalHT: decimal.NewFromInt(ht)},
	}
}

func (suite *ReportingServiceTestSuite) TestGetDashboard() {
	suite.invoices.On("ListInvoices", suite.ctx).Return([]domain.Invoice{
		invoiceOf("FAC-2024-001", domain.TypeInvoice, domain.InvoicePaid, "2024-04-01", 600),
		invoiceOf("FAC-2024-002", domain.TypeInvoice, domain.InvoiceOverdue, "2024-04-15", 1200),
		invoiceOf("FAC-2024-003", domain.TypeInvoice, domain.InvoicePaid, "2024-05-02", 1000),
		invoiceOf("AVR-2024-003", domain.TypeCreditNote, domain.InvoicePaid, "2024-05-20", 1000),
		invoiceOf("FAC-2023-010", domain.TypeInvoice, domain.InvoicePaid, "2023-11-10", 400),
	}, nil).Once()
	suite.quotes.On("ListQuotes", suite.ctx).Return([]domain.Quote{
		{Status: domain.QuoteSent}, {Status: domain.QuoteStatusDraft}, {Status: domain.QuoteSent}, {Status: domain.QuoteAccepted},
	}, nil).Once()
	suite.sessions.On("ListSessions", suite.ctx).Return([]domain.Session{{SessionID: "s1"}}, nil).Once()
	suite.certs.On("ListCertifications", suite.ctx).Return([]domain.Certification{
		{CertificationID: "cert1", ExpiryDate: day("2024-06-15")},
		{CertificationID: "cert2", ExpiryDate: day("2025-07-01")},
		{CertificationID: "cert3", ExpiryDate: day("2024-05-20")},
	}, nil).Once()

	svc := services.NewDashboardService(suite.repos, 90)
	dash, err := svc.GetDashboard(suite.ctx, day("2024-06-01"))

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(600).Equal(dash.CurrentYear))
	suite.True(decimal.NewFromInt(400).Equal(dash.PreviousYear))
	suite.True(decimal.NewFromInt(1200).Equal(dash.OverdueInvoices))
	suite.True(decimal.NewFromInt(600).Equal(dash.Monthly[3].Revenue))
	suite.True(dash.Monthly[4].Revenue.IsZero())
	suite.Equal("+50% vs N-1", dash.TrendLabel)
	suite.Equal(2, dash.PendingQuotes)
	suite.Equal(1, dash.PlannedSessions)
	suite.Require().Len(dash.CertificationAlerts, 2)
	suite.Equal("cert3", dash.CertificationAlerts[0].CertificationID)
	suite.True(dash.CertificationAlerts[0].Expired)
	suite.Equal(14, dash.CertificationAlerts[1].DaysLeft)
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_StoreFailure() {
	suite.invoices.On("ListInvoices", suite.ctx).Return(nil, apperrors.NewCollectionError("invoices", apperrors.ErrPermission)).Once()

	svc := services.NewDashboardService(suite.repos, 90)
	_, err := svc.GetDashboard(suite.ctx, day("2024-06-01"))

	suite.ErrorIs(err, apperrors.ErrPermission)
	collection, ok := apperrors.CollectionOf(err)
	suite.True(ok)
	suite.Equal("invoices", collection)
}

func (suite *ReportingServiceTestSuite) documentService() portssvc.DocumentSvcFacade {
	settingsSvc := services.NewSettingsService(suite.repos.SettingsRepo)
	return services.NewDocumentService(suite.repos, settingsSvc, suite.renderer, 10)
}

func (suite *ReportingServiceTestSuite) TestQuoteDocument_MissingClient() {
	company := domain.DefaultCompanySettings()
	suite.quotes.On("FindQuoteByID", suite.ctx, "q1").Return(&domain.Quote{QuoteID: "q1", Number: "DEV-2024-042", ClientID: "gone"}, nil).Once()
	suite.clients.On("FindClientByID", suite.ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.settings.On("FindSettings", suite.ctx).Return(&company, nil).Once()

	sheet, err := suite.documentService().QuoteDocument(suite.ctx, "q1")

	suite.Require().NoError(err)
	suite.Equal(domain.UnknownClientName, sheet.BillTo.Name)
	suite.Equal("Devis-DEV-2024-042.pdf", sheet.FileName)
}

func (suite *ReportingServiceTestSuite) TestRenderPDF_CreditNote() {
	company := domain.DefaultCompanySettings()
	original := "FAC-2024-001"
	suite.invoices.On("FindInvoiceByID", suite.ctx, "cn1").Return(&domain.Invoice{
		InvoiceID:             "cn1",
		Number:                "AVR-2024-001",
		Type:                  domain.TypeCreditNote,
		ClientID:              "c1",
		OriginalInvoiceNumber: &original,
	}, nil).Once()
	suite.clients.On("FindClientByID", suite.ctx, "c1").Return(&domain.Client{ClientID: "c1", Name: "IRTEC Réseaux"}, nil).Once()
	suite.settings.On("FindSettings", suite.ctx).Return(&company, nil).Once()
	suite.renderer.On("RenderBilling", suite.ctx, mock.MatchedBy(func(sheet documents.BillingSheet) bool {
		return sheet.Kind == documents.KindCreditNote
	})).Return([]byte("%PDF-1.3"), nil).Once()

	doc, err := suite.documentService().RenderPDF(suite.ctx, documents.KindInvoice, "cn1")

	suite.Require().NoError(err)
	suite.Equal("Avoir-AVR-2024-001.pdf", doc.FileName)
	suite.Equal([]byte("%PDF-1.3"), doc.Content)
	suite.renderer.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestRenderPDF_RendererFailure() {
	company := domain.DefaultCompanySettings()
	suite.quotes.On("FindQuoteByID", suite.ctx, "q1").Return(&domain.Quote{QuoteID: "q1", Number: "DEV-2024-042", ClientID: "c1"}, nil).Once()
	suite.clients.On("FindClientByID", suite.ctx, "c1").Return(&domain.Client{ClientID: "c1", Name: "IRTEC Réseaux"}, nil).Once()
	suite.settings.On("FindSettings", suite.ctx).Return(&company, nil).Once()
	suite.renderer.On("RenderBilling", suite.ctx, mock.AnythingOfType("documents.BillingSheet")).Return(nil, errors.New("font missing")).Once()

	doc, err := suite.documentService().RenderPDF(suite.ctx, documents.KindQuote, "q1")

	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrRender)
}

func (suite *ReportingServiceTestSuite) TestRenderPDF_UnknownKind() {
	svc := services.NewDocumentService(suite.repos, services.NewSettingsService(suite.settings), suite.renderer, 10)

	_, err := svc.RenderPDF(suite.ctx, documents.Kind("poster"), "x")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestAttendanceDocument_PadsRows() {
	company := domain.DefaultCompanySettings()
	suite.sessions.On("FindSessionByID", suite.ctx, "s1").Return(&domain.Session{
		SessionID:  "s1",
		TrainingID: "t1",
		ClientID:   "c1",
		StartDate:  day("2024-06-10"),
		EndDate:    day("2024-06-12"),
		Trainees:   []domain.Trainee{{TraineeID: "tr1", Name: "Thomas Durand"}},
	}, nil).Once()
	suite.trainings.On("FindTrainingByID", suite.ctx, "t1").Return(&domain.TrainingModule{TrainingID: "t1", Reference: "HAB-B2V", DurationDays: 3}, nil).Once()
	suite.clients.On("FindClientByID", suite.ctx, "c1").Return(&domain.Client{ClientID: "c1", Name: "IRTEC Réseaux"}, nil).Once()
	suite.settings.On("FindSettings", suite.ctx).Return(&company, nil).Once()

	svc := services.NewDocumentService(suite.repos, services.NewSettingsService(suite.settings), suite.renderer, 12)
	sheet, err := svc.AttendanceDocument(suite.ctx, "s1")

	suite.Require().NoError(err)
	suite.Len(sheet.Days, 3)
	suite.Len(sheet.Rows, 12)
	suite.Equal("Emargement-HAB-B2V.pdf", sheet.FileName)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
