package domain_test

import (
	"math"
	"testing"

	"github.com/craftkart/currency-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeMultiplier(t *testing.T) {
	assert.Equal(t, 4.0, domain.SanitizeMultiplier(4))
	assert.Equal(t, 0.5, domain.SanitizeMultiplier(0.5))

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, 1.0, domain.SanitizeMultiplier(bad))
	}
}

func TestSanitizeRate(t *testing.T) {
	assert.Equal(t, 85.0, domain.SanitizeRate(85))

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Zero(t, domain.SanitizeRate(bad))
	}
}

func TestMultiplierTableLookups(t *testing.T) {
	table := domain.MultiplierTable{
		"USD": {CurrencyCode: "USD", Multiplier: 4, RateToBase: 85},
		"EUR": {CurrencyCode: "EUR", Multiplier: -2, RateToBase: -1},
		"INR": {CurrencyCode: "INR", Multiplier: 9, RateToBase: 3},
	}

	assert.Equal(t, 4.0, table.MultiplierFor("usd"))
	assert.Equal(t, 85.0, table.RateToBaseFor("USD"))

	// Stored junk degrades on lookup.
	assert.Equal(t, 1.0, table.MultiplierFor("EUR"))
	assert.Zero(t, table.RateToBaseFor("EUR"))

	// The base currency ignores any stored entry.
	assert.Equal(t, 1.0, table.MultiplierFor(domain.BaseCurrency))
	assert.Zero(t, table.RateToBaseFor(domain.BaseCurrency))

	// Unknown currencies are neutral.
	assert.Equal(t, 1.0, table.MultiplierFor("JPY"))
	assert.Zero(t, table.RateToBaseFor("JPY"))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "USD", domain.NormalizeCode(" usd "))
	assert.Equal(t, "", domain.NormalizeCode("   "))
}

func TestCatalogLookups(t *testing.T) {
	assert.Equal(t, "$", domain.SymbolFor("usd"))
	assert.Equal(t, "₹", domain.SymbolFor("INR"))
	assert.Equal(t, "ZZZ", domain.SymbolFor("zzz"))

	assert.True(t, domain.IsKnownCurrency("GBP"))
	assert.False(t, domain.IsKnownCurrency("ZZZ"))

	assert.True(t, domain.IsSuffixPlaced("INR"))
	assert.True(t, domain.IsSuffixPlaced("SEK"))
	assert.False(t, domain.IsSuffixPlaced("USD"))
}
