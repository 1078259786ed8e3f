package services_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/craftkart/currency-engine/internal/apperrors"
	"github.com/craftkart/currency-engine/internal/core/domain"
	portsrepo "github.com/craftkart/currency-engine/internal/core/ports/repositories"
	"github.com/craftkart/currency-engine/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetPreference(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockPreferenceRepository) SavePreference(ctx context.Context, sessionID, currencyCode string) error {
	args := m.Called(ctx, sessionID, currencyCode)
	return args.Error(0)
}

var _ portsrepo.PreferenceRepository = (*MockPreferenceRepository)(nil)

// --- Test Suite ---

type PreferenceServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockPreferenceRepository
	rates       *stubRateSource
	multipliers *stubMultiplierSource
	service     *services.PreferenceService
}

func (suite *PreferenceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPreferenceRepository)
	suite.rates = &stubRateSource{snap: domain.RateSnapshot{Rates: domain.RateTable{"USD": 0.5}}}
	suite.multipliers = &stubMultiplierSource{}
	converter := services.NewConversionService(suite.rates, suite.multipliers)
	suite.service = services.NewPreferenceService(
		suite.mockRepo,
		suite.rates,
		suite.multipliers,
		converter,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		10*time.Millisecond,
	)
}

func (suite *PreferenceServiceTestSuite) TestCurrency_DefaultsToBase() {
	ctx := context.Background()

	// No session at all.
	suite.Equal(domain.BaseCurrency, suite.service.Currency(ctx, ""))

	// Nothing stored for the session.
	suite.mockRepo.On("GetPreference", ctx, "s1").Return("", nil).Once()
	suite.Equal(domain.BaseCurrency, suite.service.Currency(ctx, "s1"))

	// Store unreachable.
	suite.mockRepo.On("GetPreference", ctx, "s2").Return("", assert.AnError).Once()
	suite.Equal(domain.BaseCurrency, suite.service.Currency(ctx, "s2"))

	// Stored value no longer in the catalog.
	suite.mockRepo.On("GetPreference", ctx, "s3").Return("ZZZ", nil).Once()
	suite.Equal(domain.BaseCurrency, suite.service.Currency(ctx, "s3"))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestCurrency_ReturnsStoredSelection() {
	ctx := context.Background()
	suite.mockRepo.On("GetPreference", ctx, "s1").Return("usd", nil).Once()

	suite.Equal("USD", suite.service.Currency(ctx, "s1"))
}

func (suite *PreferenceServiceTestSuite) TestSetCurrency_PersistsWithoutRefreshing() {
	ctx := context.Background()
	suite.mockRepo.On("SavePreference", ctx, "s1", "EUR").Return(nil).Once()

	suite.Require().NoError(suite.service.SetCurrency(ctx, "s1", "eur"))

	// Changing the preference only changes the preference.
	suite.Zero(suite.rates.refreshes.Load())
	suite.Zero(suite.multipliers.refreshes.Load())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PreferenceServiceTestSuite) TestSetCurrency_Validation() {
	ctx := context.Background()

	suite.ErrorIs(suite.service.SetCurrency(ctx, "", "USD"), apperrors.ErrValidation)
	suite.ErrorIs(suite.service.SetCurrency(ctx, "s1", "ZZZ"), apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePreference", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PreferenceServiceTestSuite) TestConvertForSession() {
	ctx := context.Background()
	suite.mockRepo.On("GetPreference", ctx, "s1").Return("USD", nil).Once()

	converted, formatted := suite.service.ConvertForSession(ctx, "s1", 100, "")

	suite.InDelta(50.0, converted, 1e-9)
	suite.Equal("$50.00", formatted)
}

func (suite *PreferenceServiceTestSuite) TestRefreshLoop_RefreshesBothStoresImmediately() {
	ctx, cancel := context.WithCancel(context.Background())

	done := suite.service.StartRefreshLoop(ctx)

	suite.Eventually(func() bool {
		return suite.rates.refreshes.Load() >= 1 && suite.multipliers.refreshes.Load() >= 1
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		suite.Fail("refresh loop did not stop after cancellation")
	}
}

func (suite *PreferenceServiceTestSuite) TestRefreshLoop_TicksUntilCancelled() {
	ctx, cancel := context.WithCancel(context.Background())

	done := suite.service.StartRefreshLoop(ctx)

	suite.Eventually(func() bool {
		return suite.rates.refreshes.Load() >= 3
	}, time.Second, time.Millisecond)

	cancel()
	<-done
	after := suite.rates.refreshes.Load()
	time.Sleep(30 * time.Millisecond)
	suite.Equal(after, suite.rates.refreshes.Load())
}

func (suite *PreferenceServiceTestSuite) TestRefreshLoop_OneFailureDoesNotBlockTheOther() {
	suite.rates.refreshErr = assert.AnError

	ctx, cancel := context.WithCancel(context.Background())
	done := suite.service.StartRefreshLoop(ctx)

	// Both stores are still attempted every cycle despite the rate failures.
	suite.Eventually(func() bool {
		return suite.rates.refreshes.Load() >= 2 && suite.multipliers.refreshes.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	<-done
	suite.False(suite.service.Refreshing())
}

func (suite *PreferenceServiceTestSuite) TestSubscribe_ObservesRefreshCycle() {
	var mu sync.Mutex
	var transitions []bool
	unsubscribe := suite.service.Subscribe(func(refreshing bool) {
		mu.Lock()
		transitions = append(transitions, refreshing)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := suite.service.StartRefreshLoop(ctx)

	suite.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(transitions) >= 2
	}, time.Second, time.Millisecond)

	cancel()
	<-done

	mu.Lock()
	suite.True(transitions[0])
	suite.False(transitions[1])
	mu.Unlock()
	unsubscribe()
}

func (suite *PreferenceServiceTestSuite) TestSubscribe_UnsubscribeStopsNotifications() {
	var mu sync.Mutex
	count := 0
	unsubscribe := suite.service.Subscribe(func(bool) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	unsubscribe()
	unsubscribe() // idempotent

	ctx, cancel := context.WithCancel(context.Background())
	done := suite.service.StartRefreshLoop(ctx)
	suite.Eventually(func() bool {
		return suite.rates.refreshes.Load() >= 1
	}, time.Second, time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	suite.Zero(count)
	mu.Unlock()
}

func TestPreferenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}
