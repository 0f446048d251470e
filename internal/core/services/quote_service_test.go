package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/core/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

type QuoteServiceTestSuite struct {
	suite.Suite
	quoteRepo   *MockQuoteRepository
	invoiceRepo *MockInvoiceRepository
	seqRepo     *MockSequenceRepository
	service     portssvc.QuoteSvcFacade
	ctx         context.Context
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.quoteRepo = new(MockQuoteRepository)
	suite.invoiceRepo = new(MockInvoiceRepository)
	suite.seqRepo = new(MockSequenceRepository)
	suite.ctx = context.Background()
	suite.service = services.NewQuoteService(
		suite.quoteRepo,
		suite.invoiceRepo,
		suite.seqRepo,
		services.WithQuoteBaseOptions(services.WithClock(fixedClock)),
	)
}

func (suite *QuoteServiceTestSuite) sentQuote() *domain.Quote {
	lines := []domain.QuoteLine{{
		LineID:      "l1",
		Description: "Habilitation BR",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.NewFromInt(2500),
		VATRate:     20,
	}}
	return &domain.Quote{
		QuoteID:  "q1",
		Number:   "DEV-2024-042",
		ClientID: "c1",
		Date:     domain.Day(fixedClock()),
		Status:   domain.QuoteSent,
		Items:    lines,
		Totals:   domain.ComputeTotals(lines),
	}
}

func (suite *QuoteServiceTestSuite) TestSaveQuote_Success() {
	req := dto.SaveQuoteRequest{
		ClientID: "c1",
		Notes:    "Sur site",
		Items: []dto.LineRequest{{
			Description: "TST Module de Base",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.NewFromInt(1200),
			VATRate:     20,
		}},
	}
	suite.seqRepo.On("NextSequence", suite.ctx, domain.PrefixQuote, 2024).Return(int64(43), nil).Once()
	suite.quoteRepo.On("SaveQuote", suite.ctx, mock.MatchedBy(func(q domain.Quote) bool {
		return q.Number == "DEV-2024-043" && q.Status == domain.QuoteSent && len(q.Items) == 1 && q.Items[0].LineID != ""
	})).Return(nil).Once()

	quote, err := suite.service.SaveQuote(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("DEV-2024-043", quote.Number)
	suite.Equal("2024-06-01", dto.FormatDay(quote.Date))
	suite.Equal("2024-07-01", dto.FormatDay(quote.ValidUntil))
	suite.True(decimal.NewFromInt(2400).Equal(quote.TotalHT))
	suite.True(decimal.NewFromInt(480).Equal(quote.TotalVAT))
	suite.True(decimal.NewFromInt(2880).Equal(quote.TotalTTC))
	suite.quoteRepo.AssertExpectations(suite.T())
	suite.seqRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestSaveQuote_RequiresClientAndLines() {
	_, err := suite.service.SaveQuote(suite.ctx, dto.SaveQuoteRequest{Items: []dto.LineRequest{{Description: "x"}}})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.SaveQuote(suite.ctx, dto.SaveQuoteRequest{ClientID: "c1"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.seqRepo.AssertNotCalled(suite.T(), "NextSequence", mock.Anything, mock.Anything, mock.Anything)
	suite.quoteRepo.AssertNotCalled(suite.T(), "SaveQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestSaveQuote_RejectsUnknownVATRate() {
	req := dto.SaveQuoteRequest{
		ClientID: "c1",
		Items:    []dto.LineRequest{{Description: "x", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10), VATRate: 7}},
	}

	_, err := suite.service.SaveQuote(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.quoteRepo.AssertNotCalled(suite.T(), "SaveQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestTransition_SameStatusIsNoOp() {
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(suite.sentQuote(), nil).Once()

	quote, err := suite.service.TransitionQuoteStatus(suite.ctx, "q1", domain.QuoteSent)

	suite.Require().NoError(err)
	suite.Equal(domain.QuoteSent, quote.Status)
	suite.quoteRepo.AssertNotCalled(suite.T(), "UpdateQuoteStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestTransition_Accept() {
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(suite.sentQuote(), nil).Once()
	suite.quoteRepo.On("UpdateQuoteStatus", suite.ctx, "q1", domain.QuoteAccepted, fixedClock()).Return(nil).Once()

	quote, err := suite.service.TransitionQuoteStatus(suite.ctx, "q1", domain.QuoteAccepted)

	suite.Require().NoError(err)
	suite.Equal(domain.QuoteAccepted, quote.Status)
	suite.quoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestTransition_InvalidMove() {
	q := suite.sentQuote()
	q.Status = domain.QuoteRejected
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(q, nil).Once()

	_, err := suite.service.TransitionQuoteStatus(suite.ctx, "q1", domain.QuoteAccepted)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.quoteRepo.AssertNotCalled(suite.T(), "UpdateQuoteStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_Success() {
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(suite.sentQuote(), nil).Once()
	suite.invoiceRepo.On("FindInvoiceForQuote", suite.ctx, "q1").Return(nil, apperrors.ErrNotFound).Once()
	suite.invoiceRepo.On("FindInvoiceByNumber", suite.ctx, "FAC-2024-042").Return(nil, apperrors.ErrNotFound).Once()
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Number == "FAC-2024-042" &&
			inv.Type == domain.TypeInvoice &&
			inv.Status == domain.InvoicePending &&
			inv.QuoteID != nil && *inv.QuoteID == "q1"
	})).Return(nil).Once()
	suite.quoteRepo.On("UpdateQuoteStatus", suite.ctx, "q1", domain.QuoteAccepted, mock.Anything).Return(nil).Once()

	invoice, err := suite.service.ConvertToInvoice(suite.ctx, "q1")

	suite.Require().NoError(err)
	suite.Equal("FAC-2024-042", invoice.Number)
	suite.Equal("2024-07-01", dto.FormatDay(invoice.DueDate))
	suite.True(decimal.NewFromInt(3000).Equal(invoice.TotalTTC))
	suite.quoteRepo.AssertExpectations(suite.T())
	suite.invoiceRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_AcceptedQuoteKeepsStatus() {
	q := suite.sentQuote()
	q.Status = domain.QuoteAccepted
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(q, nil).Once()
	suite.invoiceRepo.On("FindInvoiceForQuote", suite.ctx, "q1").Return(nil, apperrors.ErrNotFound).Once()
	suite.invoiceRepo.On("FindInvoiceByNumber", suite.ctx, "FAC-2024-042").Return(nil, apperrors.ErrNotFound).Once()
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	_, err := suite.service.ConvertToInvoice(suite.ctx, "q1")

	suite.Require().NoError(err)
	suite.quoteRepo.AssertNotCalled(suite.T(), "UpdateQuoteStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_DerivedNumberTaken() {
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(suite.sentQuote(), nil).Once()
	suite.invoiceRepo.On("FindInvoiceForQuote", suite.ctx, "q1").Return(nil, apperrors.ErrNotFound).Once()
	suite.invoiceRepo.On("FindInvoiceByNumber", suite.ctx, "FAC-2024-042").Return(&domain.Invoice{Number: "FAC-2024-042"}, nil).Once()
	suite.seqRepo.On("NextSequence", suite.ctx, domain.PrefixInvoice, 2024).Return(int64(3), nil).Once()
	suite.invoiceRepo.On("FindInvoiceByNumber", suite.ctx, "FAC-2024-003").Return(nil, apperrors.ErrNotFound).Once()
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Number == "FAC-2024-003"
	})).Return(nil).Once()
	suite.quoteRepo.On("UpdateQuoteStatus", suite.ctx, "q1", domain.QuoteAccepted, mock.Anything).Return(nil).Once()

	invoice, err := suite.service.ConvertToInvoice(suite.ctx, "q1")

	suite.Require().NoError(err)
	suite.Equal("FAC-2024-003", invoice.Number)
	suite.invoiceRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_DraftRejected() {
	q := suite.sentQuote()
	q.Status = domain.QuoteStatusDraft
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(q, nil).Once()

	invoice, err := suite.service.ConvertToInvoice(suite.ctx, "q1")

	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.invoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_AlreadyInvoiced() {
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(suite.sentQuote(), nil).Once()
	suite.invoiceRepo.On("FindInvoiceForQuote", suite.ctx, "q1").Return(nil, apperrors.ErrNotFound).Once()
	suite.invoiceRepo.On("FindInvoiceByNumber", suite.ctx, "FAC-2024-042").Return(nil, apperrors.ErrNotFound).Once()
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice")).Return(apperrors.ErrDuplicate).Once()

	invoice, err := suite.service.ConvertToInvoice(suite.ctx, "q1")

	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.quoteRepo.AssertNotCalled(suite.T(), "UpdateQuoteStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_FinishesInterruptedConversion() {
	existing := &domain.Invoice{InvoiceID: "i1", Number: "FAC-2024-042", Type: domain.TypeInvoice}
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(suite.sentQuote(), nil).Once()
	suite.invoiceRepo.On("FindInvoiceForQuote", suite.ctx, "q1").Return(existing, nil).Once()
	suite.quoteRepo.On("UpdateQuoteStatus", suite.ctx, "q1", domain.QuoteAccepted, mock.Anything).Return(nil).Once()

	invoice, err := suite.service.ConvertToInvoice(suite.ctx, "q1")

	suite.Require().NoError(err)
	suite.Equal("i1", invoice.InvoiceID)
	suite.quoteRepo.AssertExpectations(suite.T())
	suite.invoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_AcceptedAndInvoicedIsDuplicate() {
	q := suite.sentQuote()
	q.Status = domain.QuoteAccepted
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(q, nil).Once()
	suite.invoiceRepo.On("FindInvoiceForQuote", suite.ctx, "q1").Return(&domain.Invoice{InvoiceID: "i1", Number: "FAC-2024-042"}, nil).Once()

	invoice, err := suite.service.ConvertToInvoice(suite.ctx, "q1")

	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.invoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
	suite.quoteRepo.AssertNotCalled(suite.T(), "UpdateQuoteStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestConvertToInvoice_AcceptFailureLeavesRetryPath() {
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "q1").Return(suite.sentQuote(), nil).Twice()
	suite.invoiceRepo.On("FindInvoiceForQuote", suite.ctx, "q1").Return(nil, apperrors.ErrNotFound).Once()
	suite.invoiceRepo.On("FindInvoiceByNumber", suite.ctx, "FAC-2024-042").Return(nil, apperrors.ErrNotFound).Once()
	suite.invoiceRepo.On("SaveInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()
	suite.quoteRepo.On("UpdateQuoteStatus", suite.ctx, "q1", domain.QuoteAccepted, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err := suite.service.ConvertToInvoice(suite.ctx, "q1")
	suite.Require().Error(err)

	saved := &domain.Invoice{InvoiceID: "i1", Number: "FAC-2024-042", Type: domain.TypeInvoice}
	suite.invoiceRepo.On("FindInvoiceForQuote", suite.ctx, "q1").Return(saved, nil).Once()
	suite.quoteRepo.On("UpdateQuoteStatus", suite.ctx, "q1", domain.QuoteAccepted, mock.Anything).Return(nil).Once()

	invoice, err := suite.service.ConvertToInvoice(suite.ctx, "q1")

	suite.Require().NoError(err)
	suite.Equal("FAC-2024-042", invoice.Number)
	suite.invoiceRepo.AssertNumberOfCalls(suite.T(), "SaveInvoice", 1)
}

func (suite *QuoteServiceTestSuite) TestGetQuoteByID_NotFound() {
	suite.quoteRepo.On("FindQuoteByID", suite.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	quote, err := suite.service.GetQuoteByID(suite.ctx, "nope")

	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *QuoteServiceTestSuite) TestListQuotes_NeverNil() {
	suite.quoteRepo.On("ListQuotes", suite.ctx).Return(nil, nil).Once()

	quotes, err := suite.service.ListQuotes(suite.ctx)

	suite.Require().NoError(err)
	assert.NotNil(suite.T(), quotes)
	suite.Empty(quotes)
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
