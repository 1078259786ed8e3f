package services_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/craftkart/currency-engine/internal/core/domain"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// --- Stub snapshot sources ---

type stubRateSource struct {
	snap       domain.RateSnapshot
	refreshErr error
	refreshes  atomic.Int32
}

func (s *stubRateSource) Rates() domain.RateSnapshot { return s.snap }

func (s *stubRateSource) Refresh(ctx context.Context) error {
	s.refreshes.Add(1)
	return s.refreshErr
}

type stubMultiplierSource struct {
	snap       domain.MultiplierSnapshot
	refreshErr error
	refreshes  atomic.Int32
}

func (s *stubMultiplierSource) Multipliers() domain.MultiplierSnapshot { return s.snap }

func (s *stubMultiplierSource) Refresh(ctx context.Context) error {
	s.refreshes.Add(1)
	return s.refreshErr
}

var (
	_ portssvc.RateSource       = (*stubRateSource)(nil)
	_ portssvc.MultiplierSource = (*stubMultiplierSource)(nil)
)

// --- Test Suite ---

type ConversionServiceTestSuite struct {
	suite.Suite
}

func (suite *ConversionServiceTestSuite) newConverter(rates domain.RateTable, entries domain.MultiplierTable) portssvc.ConverterSvc {
	return services.NewConversionService(
		&stubRateSource{snap: domain.RateSnapshot{Rates: rates}},
		&stubMultiplierSource{snap: domain.MultiplierSnapshot{Entries: entries}},
	)
}

func (suite *ConversionServiceTestSuite) TestConvert_SameCurrencyIsIdentity() {
	converter := suite.newConverter(
		domain.RateTable{"USD": 0.012},
		domain.MultiplierTable{"USD": {CurrencyCode: "USD", Multiplier: 4, RateToBase: 85}},
	)

	suite.Equal(123.45, converter.Convert(123.45, "USD", "USD"))
	suite.Equal(100.0, converter.Convert(100, "INR", "INR"))
	suite.Equal(7.0, converter.Convert(7, "ZZZ", "ZZZ"))
	suite.Equal(9.0, converter.Convert(9, "usd", "USD"))
}

func (suite *ConversionServiceTestSuite) TestConvert_EmptyCodesDefaultToBase() {
	converter := suite.newConverter(domain.RateTable{"USD": 0.5}, nil)

	suite.Equal(100.0, converter.Convert(100, "", ""))
	suite.InDelta(50.0, converter.Convert(100, "", "USD"), 1e-9)
	suite.InDelta(200.0, converter.Convert(100, "USD", ""), 1e-9)
}

func (suite *ConversionServiceTestSuite) TestConvert_MultiplierAndDirectRate() {
	converter := suite.newConverter(
		domain.RateTable{"USD": 0.012},
		domain.MultiplierTable{"USD": {CurrencyCode: "USD", Multiplier: 4, RateToBase: 85}},
	)

	// 300 INR uplifted by 4, then divided by the direct 1 USD = 85 INR rate.
	suite.InDelta(300.0*4/85, converter.Convert(300, "INR", "USD"), 1e-9)
}

func (suite *ConversionServiceTestSuite) TestConvert_DirectRateWinsOverGenericTable() {
	converter := suite.newConverter(
		domain.RateTable{"USD": 0.012},
		domain.MultiplierTable{"USD": {CurrencyCode: "USD", RateToBase: 85}},
	)

	suite.InDelta(100.0/85, converter.Convert(100, "INR", "USD"), 1e-9)
}

func (suite *ConversionServiceTestSuite) TestConvert_GenericTableFromBase() {
	converter := suite.newConverter(domain.RateTable{"EUR": 0.011}, nil)

	suite.InDelta(11.0, converter.Convert(1000, "INR", "EUR"), 1e-9)
}

func (suite *ConversionServiceTestSuite) TestConvert_GenericTableToBase() {
	converter := suite.newConverter(domain.RateTable{"USD": 0.012}, nil)

	suite.InDelta(1000.0, converter.Convert(12, "USD", "INR"), 1e-9)
}

func (suite *ConversionServiceTestSuite) TestConvert_CrossRateBridgesThroughBase() {
	converter := suite.newConverter(domain.RateTable{"USD": 0.012, "EUR": 0.011}, nil)

	suite.InDelta(10.0/0.012*0.011, converter.Convert(10, "USD", "EUR"), 1e-9)
}

func (suite *ConversionServiceTestSuite) TestConvert_MissingBridgeLegFailsOpen() {
	converter := suite.newConverter(domain.RateTable{"EUR": 0.011}, nil)

	// No USD rate: the from-leg is skipped and only the to-leg applies.
	suite.InDelta(10.0*0.011, converter.Convert(10, "USD", "EUR"), 1e-9)

	converter = suite.newConverter(domain.RateTable{"USD": 0.012}, nil)
	suite.InDelta(10.0/0.012, converter.Convert(10, "USD", "EUR"), 1e-9)
}

func (suite *ConversionServiceTestSuite) TestConvert_EmptyTableFallsBackToEffectiveAmount() {
	converter := suite.newConverter(nil,
		domain.MultiplierTable{"USD": {CurrencyCode: "USD", Multiplier: 2}},
	)

	// With no rates at all the uplifted amount is returned as-is.
	suite.Equal(200.0, converter.Convert(100, "INR", "USD"))
	suite.Equal(50.0, converter.Convert(50, "USD", "INR"))
}

func (suite *ConversionServiceTestSuite) TestConvert_BadMultiplierDegradesToNeutral() {
	for _, bad := range []float64{0, -3} {
		converter := suite.newConverter(
			domain.RateTable{"USD": 0.5},
			domain.MultiplierTable{"USD": {CurrencyCode: "USD", Multiplier: bad}},
		)
		suite.InDelta(50.0, converter.Convert(100, "INR", "USD"), 1e-9)
	}
}

func (suite *ConversionServiceTestSuite) TestConvert_MultiplierOnlyAppliesFromBase() {
	converter := suite.newConverter(
		domain.RateTable{"USD": 0.012, "EUR": 0.011},
		domain.MultiplierTable{"EUR": {CurrencyCode: "EUR", Multiplier: 3}},
	)

	// USD -> EUR: from is not the base, so EUR's multiplier is not applied.
	suite.InDelta(10.0/0.012*0.011, converter.Convert(10, "USD", "EUR"), 1e-9)
}

func (suite *ConversionServiceTestSuite) TestConvert_BaseCurrencyNeverUplifted() {
	converter := suite.newConverter(
		domain.RateTable{"USD": 0.012},
		domain.MultiplierTable{"INR": {CurrencyCode: "INR", Multiplier: 9, RateToBase: 2}},
	)

	// Converting into the base ignores any configured base entry.
	suite.InDelta(1000.0, converter.Convert(12, "USD", "INR"), 1e-9)
}

func (suite *ConversionServiceTestSuite) TestConvertAndFormat_PoundSterling() {
	converter := suite.newConverter(domain.RateTable{"GBP": 0.0095}, nil)

	converted := converter.Convert(1000, "INR", "GBP")
	suite.InDelta(9.5, converted, 1e-9)
	suite.Equal("£9.50", converter.Format(converted, "GBP"))
}

func (suite *ConversionServiceTestSuite) TestFormat_SymbolPlacement() {
	converter := suite.newConverter(nil, nil)

	suite.Equal("$1,234.50", converter.Format(1234.5, "USD"))
	suite.Equal("1,234.50 ₹", converter.Format(1234.5, "INR"))
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
