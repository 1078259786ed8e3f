package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/craftkart/currency-engine/internal/core/services"
	"github.com/craftkart/currency-engine/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MultiplierStoreTestSuite struct {
	suite.Suite
	mockRepo *MockMultiplierRepository
	store    *services.MultiplierStore
}

func (suite *MultiplierStoreTestSuite) SetupTest() {
	suite.mockRepo = new(MockMultiplierRepository)
	suite.store = services.NewMultiplierStore(suite.mockRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func decimalPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func (suite *MultiplierStoreTestSuite) TestRefresh_PopulatesAndSanitizes() {
	ctx := context.Background()
	rows := []models.Multiplier{
		{CurrencyCode: "usd", Multiplier: decimal.NewFromInt(4), RateToINR: decimalPtr(85)},
		{CurrencyCode: "EUR", Multiplier: decimal.NewFromInt(-2)},
	}
	suite.mockRepo.On("ListMultipliers", ctx).Return(rows, nil).Once()

	suite.Require().NoError(suite.store.Refresh(ctx))

	snap := suite.store.Multipliers()
	suite.Len(snap.Entries, 2)
	suite.InDelta(4, snap.Entries["USD"].Multiplier, 1e-9)
	suite.InDelta(85, snap.Entries["USD"].RateToBase, 1e-9)
	// Out-of-range values degrade on ingest rather than corrupting prices.
	suite.InDelta(1, snap.Entries["EUR"].Multiplier, 1e-9)
	suite.Zero(snap.Entries["EUR"].RateToBase)
	suite.False(snap.FetchedAt.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MultiplierStoreTestSuite) TestRefresh_EmptyTableIsValid() {
	ctx := context.Background()
	suite.mockRepo.On("ListMultipliers", ctx).Return([]models.Multiplier{}, nil).Once()

	suite.Require().NoError(suite.store.Refresh(ctx))
	suite.Empty(suite.store.Multipliers().Entries)
	suite.False(suite.store.Multipliers().FetchedAt.IsZero())
}

func (suite *MultiplierStoreTestSuite) TestRefresh_FailureKeepsPreviousSnapshot() {
	ctx := context.Background()
	rows := []models.Multiplier{
		{CurrencyCode: "USD", Multiplier: decimal.NewFromInt(2)},
	}
	suite.mockRepo.On("ListMultipliers", ctx).Return(rows, nil).Once()
	suite.Require().NoError(suite.store.Refresh(ctx))
	first := suite.store.Multipliers()

	suite.mockRepo.On("ListMultipliers", ctx).Return(nil, assert.AnError).Once()
	suite.Error(suite.store.Refresh(ctx))

	suite.Equal(first, suite.store.Multipliers())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MultiplierStoreTestSuite) TestRefresh_SwapsWholesale() {
	ctx := context.Background()
	suite.mockRepo.On("ListMultipliers", ctx).Return([]models.Multiplier{
		{CurrencyCode: "USD", Multiplier: decimal.NewFromInt(2)},
		{CurrencyCode: "EUR", Multiplier: decimal.NewFromInt(3)},
	}, nil).Once()
	suite.Require().NoError(suite.store.Refresh(ctx))

	suite.mockRepo.On("ListMultipliers", ctx).Return([]models.Multiplier{
		{CurrencyCode: "EUR", Multiplier: decimal.NewFromInt(5)},
	}, nil).Once()
	suite.Require().NoError(suite.store.Refresh(ctx))

	// A removed row is gone after refresh; there is no merge.
	snap := suite.store.Multipliers()
	suite.Len(snap.Entries, 1)
	suite.InDelta(5, snap.Entries["EUR"].Multiplier, 1e-9)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MultiplierStoreTestSuite) TestMultipliers_NeverPopulatedReturnsZeroSnapshot() {
	snap := suite.store.Multipliers()
	suite.Nil(snap.Entries)
	suite.True(snap.FetchedAt.IsZero())
	suite.mockRepo.AssertNotCalled(suite.T(), "ListMultipliers", mock.Anything)
}

func TestMultiplierStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MultiplierStoreTestSuite))
}
