package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/core/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

type QuoteDraftServiceTestSuite struct {
	suite.Suite
	catalog *MockTrainingRepository
	quotes  *MockQuoteWriter
	service portssvc.QuoteDraftSvcFacade
	ctx     context.Context
}

func (suite *QuoteDraftServiceTestSuite) SetupTest() {
	suite.catalog = new(MockTrainingRepository)
	suite.quotes = new(MockQuoteWriter)
	suite.ctx = context.Background()
	suite.service = services.NewQuoteDraftService(suite.catalog, suite.quotes, 30, services.WithClock(fixedClock))
}

func (suite *QuoteDraftServiceTestSuite) newDraftWithLine() (string, string) {
	draft, err := suite.service.NewDraft(suite.ctx, dto.NewDraftRequest{ClientID: "c1"})
	suite.Require().NoError(err)
	draft, err = suite.service.AddLine(suite.ctx, draft.DraftID)
	suite.Require().NoError(err)
	suite.Require().Len(draft.Items, 1)
	return draft.DraftID, draft.Items[0].LineID
}

func (suite *QuoteDraftServiceTestSuite) TestNewDraft_Defaults() {
	draft, err := suite.service.NewDraft(suite.ctx, dto.NewDraftRequest{})

	suite.Require().NoError(err)
	suite.Equal("2024-06-01", dto.FormatDay(draft.Date))
	suite.Equal("2024-07-01", dto.FormatDay(draft.ValidUntil))
	suite.Empty(draft.Items)
	suite.True(draft.TotalTTC.IsZero())
}

func (suite *QuoteDraftServiceTestSuite) TestAddLine_Defaults() {
	draftID, _ := suite.newDraftWithLine()

	draft, err := suite.service.GetDraft(suite.ctx, draftID)

	suite.Require().NoError(err)
	line := draft.Items[0]
	suite.True(decimal.NewFromInt(1).Equal(line.Quantity))
	suite.True(line.UnitPrice.IsZero())
	suite.Equal(domain.DefaultVATRate, line.VATRate)
}

func (suite *QuoteDraftServiceTestSuite) TestUpdateLine_CatalogTitleSetsPrice() {
	draftID, lineID := suite.newDraftWithLine()
	title := "TST Module de Base (Batteries)"
	suite.catalog.On("FindTrainingByTitle", suite.ctx, title).Return(&domain.TrainingModule{
		TrainingID: "t2",
		Title:      title,
		PriceHT:    decimal.NewFromInt(1200),
	}, nil).Once()

	draft, err := suite.service.UpdateLine(suite.ctx, draftID, lineID, dto.UpdateLineRequest{Field: services.LineFieldDescription, Value: title})

	suite.Require().NoError(err)
	suite.Equal(title, draft.Items[0].Description)
	suite.True(decimal.NewFromInt(1200).Equal(draft.Items[0].UnitPrice))
	suite.True(decimal.NewFromInt(1440).Equal(draft.TotalTTC))
}

func (suite *QuoteDraftServiceTestSuite) TestUpdateLine_FreeTextKeepsPrice() {
	draftID, lineID := suite.newDraftWithLine()
	_, err := suite.service.UpdateLine(suite.ctx, draftID, lineID, dto.UpdateLineRequest{Field: services.LineFieldUnitPrice, Value: "150"})
	suite.Require().NoError(err)
	suite.catalog.On("FindTrainingByTitle", suite.ctx, "Frais de déplacement").Return(nil, apperrors.ErrNotFound).Once()

	draft, err := suite.service.UpdateLine(suite.ctx, draftID, lineID, dto.UpdateLineRequest{Field: services.LineFieldDescription, Value: "Frais de déplacement"})

	suite.Require().NoError(err)
	suite.Equal("Frais de déplacement", draft.Items[0].Description)
	suite.True(decimal.NewFromInt(150).Equal(draft.Items[0].UnitPrice))
}

func (suite *QuoteDraftServiceTestSuite) TestUpdateLine_RejectsBadValues() {
	draftID, lineID := suite.newDraftWithLine()

	_, err := suite.service.UpdateLine(suite.ctx, draftID, lineID, dto.UpdateLineRequest{Field: services.LineFieldVATRate, Value: "5.5"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateLine(suite.ctx, draftID, lineID, dto.UpdateLineRequest{Field: services.LineFieldQuantity, Value: "-1"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateLine(suite.ctx, draftID, "missing", dto.UpdateLineRequest{Field: services.LineFieldQuantity, Value: "2"})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *QuoteDraftServiceTestSuite) TestRemoveLine() {
	draftID, lineID := suite.newDraftWithLine()

	draft, err := suite.service.RemoveLine(suite.ctx, draftID, lineID)

	suite.Require().NoError(err)
	suite.Empty(draft.Items)
	suite.True(draft.TotalHT.IsZero())
}

func (suite *QuoteDraftServiceTestSuite) TestSaveDraft_DelegatesAndDiscards() {
	draftID, lineID := suite.newDraftWithLine()
	_, err := suite.service.UpdateLine(suite.ctx, draftID, lineID, dto.UpdateLineRequest{Field: services.LineFieldUnitPrice, Value: "850"})
	suite.Require().NoError(err)
	saved := &domain.Quote{QuoteID: "q9", Number: "DEV-2024-046", Status: domain.QuoteSent}
	suite.quotes.On("SaveQuote", suite.ctx, mock.MatchedBy(func(req dto.SaveQuoteRequest) bool {
		return req.ClientID == "c1" && len(req.Items) == 1 && req.Items[0].ID == lineID && req.Date == "2024-06-01"
	})).Return(saved, nil).Once()

	quote, err := suite.service.SaveDraft(suite.ctx, draftID)

	suite.Require().NoError(err)
	suite.Equal("DEV-2024-046", quote.Number)
	_, err = suite.service.GetDraft(suite.ctx, draftID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.quotes.AssertExpectations(suite.T())
}

func (suite *QuoteDraftServiceTestSuite) TestSaveDraft_FailureKeepsDraft() {
	draftID, _ := suite.newDraftWithLine()
	suite.quotes.On("SaveQuote", suite.ctx, mock.AnythingOfType("dto.SaveQuoteRequest")).Return(nil, apperrors.ErrValidation).Once()

	_, err := suite.service.SaveDraft(suite.ctx, draftID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	_, err = suite.service.GetDraft(suite.ctx, draftID)
	suite.NoError(err)
}

func (suite *QuoteDraftServiceTestSuite) TestDiscardDraft() {
	draftID, _ := suite.newDraftWithLine()

	suite.NoError(suite.service.DiscardDraft(suite.ctx, draftID))
	suite.ErrorIs(suite.service.DiscardDraft(suite.ctx, draftID), apperrors.ErrNotFound)
}

func (suite *QuoteDraftServiceTestSuite) TestAddLine_ConcurrentEditsAllLand() {
	draft, err := suite.service.NewDraft(suite.ctx, dto.NewDraftRequest{ClientID: "c1"})
	suite.Require().NoError(err)
	const editors = 50

	var wg sync.WaitGroup
	for i := 0; i < editors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.service.AddLine(suite.ctx, draft.DraftID)
			suite.NoError(err)
		}()
	}
	wg.Wait()

	got, err := suite.service.GetDraft(suite.ctx, draft.DraftID)
	suite.Require().NoError(err)
	suite.Len(got.Items, editors)
	ids := make(map[string]struct{}, editors)
	for _, line := range got.Items {
		ids[line.LineID] = struct{}{}
	}
	suite.Len(ids, editors)
}

func (suite *QuoteDraftServiceTestSuite) TestUpdateLine_ConcurrentEditsOnDifferentLines() {
	draft, err := suite.service.NewDraft(suite.ctx, dto.NewDraftRequest{ClientID: "c1"})
	suite.Require().NoError(err)
	const lines = 20
	for i := 0; i < lines; i++ {
		draft, err = suite.service.AddLine(suite.ctx, draft.DraftID)
		suite.Require().NoError(err)
	}

	var wg sync.WaitGroup
	for i, line := range draft.Items {
		wg.Add(1)
		go func(lineID string, qty int) {
			defer wg.Done()
			_, err := suite.service.UpdateLine(suite.ctx, draft.DraftID, lineID, dto.UpdateLineRequest{Field: services.LineFieldQuantity, Value: fmt.Sprint(qty)})
			suite.NoError(err)
		}(line.LineID, i+2)
	}
	wg.Wait()

	got, err := suite.service.GetDraft(suite.ctx, draft.DraftID)
	suite.Require().NoError(err)
	for i, line := range got.Items {
		suite.True(decimal.NewFromInt(int64(i+2)).Equal(line.Quantity), "line %d", i)
	}
}

func (suite *QuoteDraftServiceTestSuite) TestUpdateLine_FailedEditLeavesDraftUnchanged() {
	draftID, lineID := suite.newDraftWithLine()
	before, err := suite.service.GetDraft(suite.ctx, draftID)
	suite.Require().NoError(err)

	_, err = suite.service.UpdateLine(suite.ctx, draftID, lineID, dto.UpdateLineRequest{Field: services.LineFieldUnitPrice, Value: "abc"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	after, err := suite.service.GetDraft(suite.ctx, draftID)
	suite.Require().NoError(err)
	suite.Equal(before.LastUpdatedAt, after.LastUpdatedAt)
	suite.True(before.Items[0].UnitPrice.Equal(after.Items[0].UnitPrice))
}

func (suite *QuoteDraftServiceTestSuite) TestSaveDraft_ConcurrentSavesCreateOneQuote() {
	draftID, _ := suite.newDraftWithLine()
	suite.quotes.On("SaveQuote", suite.ctx, mock.AnythingOfType("dto.SaveQuoteRequest")).
		Return(&domain.Quote{QuoteID: "q9", Number: "DEV-2024-046", Status: domain.QuoteSent}, nil).Once()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		saved    int
		notFound int
	)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.service.SaveDraft(suite.ctx, draftID)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				saved++
			} else if errors.Is(err, apperrors.ErrNotFound) {
				notFound++
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, saved)
	suite.Equal(1, notFound)
	suite.quotes.AssertNumberOfCalls(suite.T(), "SaveQuote", 1)
}

func TestQuoteDraftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteDraftServiceTestSuite))
}
