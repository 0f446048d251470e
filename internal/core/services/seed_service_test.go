package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	"github.com/SscSPs/oris_formation_app/internal/core/services"
)

func TestSeed_WritesDemoBatch(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSeedRepository)
	var captured domain.DemoData
	repo.On("SeedDemoData", ctx, mock.AnythingOfType("domain.DemoData")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(domain.DemoData) }).
		Return(nil).Once()

	resp, err := services.NewSeedService(repo, services.WithClock(fixedClock)).Seed(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Clients)
	assert.Equal(t, 3, resp.Trainings)
	assert.Equal(t, 2, resp.Quotes)
	assert.Equal(t, 2, resp.Invoices)
	assert.Equal(t, 1, resp.Sessions)
	assert.Equal(t, 3, resp.Certifications)

	// references are remapped consistently
	assert.Equal(t, captured.Clients[0].ClientID, captured.Quotes[0].ClientID)
	assert.Equal(t, captured.Trainings[0].TrainingID, captured.Sessions[0].TrainingID)
	assert.True(t, decimal.NewFromInt(3180).Equal(captured.Quotes[0].TotalTTC))
	assert.Contains(t, captured.Sequences, domain.SequenceFloor{Prefix: domain.PrefixQuote, Year: 2024, Value: 45})
	assert.Contains(t, captured.Sequences, domain.SequenceFloor{Prefix: domain.PrefixInvoice, Year: 2024, Value: 2})
}

func TestSeed_FreshIDsEachRun(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSeedRepository)
	var ids []string
	repo.On("SeedDemoData", ctx, mock.AnythingOfType("domain.DemoData")).
		Run(func(args mock.Arguments) { ids = append(ids, args.Get(1).(domain.DemoData).Clients[0].ClientID) }).
		Return(nil).Twice()
	svc := services.NewSeedService(repo)

	_, err := svc.Seed(ctx)
	require.NoError(t, err)
	_, err = svc.Seed(ctx)
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestSeed_BatchFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSeedRepository)
	repo.On("SeedDemoData", ctx, mock.Anything).Return(apperrors.NewCollectionError("quotes", apperrors.ErrPermission)).Once()

	resp, err := services.NewSeedService(repo).Seed(ctx)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrPermission)
}
