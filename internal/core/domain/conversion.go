package domain

import (
	"math"
	"time"
)

// RateTable maps a currency code to the amount of that currency equal to
// one unit of the base currency. It is externally sourced and refreshed
// wholesale; a nil or empty table means "never populated".
type RateTable map[string]float64

// MultiplierEntry is an admin-configured pricing adjustment for one
// currency. Multiplier scales the base amount before conversion; RateToBase
// (when > 0) is a directly configured "1 unit of this currency = RateToBase
// base units" exchange rate that wins over the generic table.
type MultiplierEntry struct {
	CurrencyCode string
	Multiplier   float64
	RateToBase   float64 // 0 means not configured
}

// MultiplierTable maps a currency code to its validated multiplier entry.
type MultiplierTable map[string]MultiplierEntry

// RateSnapshot is an immutable view of the generic exchange-rate table.
// Snapshots are replaced atomically on refresh and never mutated in place.
type RateSnapshot struct {
	Rates     RateTable
	FetchedAt time.Time
}

// MultiplierSnapshot is an immutable view of the multiplier table.
type MultiplierSnapshot struct {
	Entries   MultiplierTable
	FetchedAt time.Time
}

// SanitizeMultiplier normalizes a configured multiplier to the neutral
// value 1 when it is non-finite, zero, or negative. Bad configuration must
// degrade to "no adjustment", never to a corrupted price.
func SanitizeMultiplier(m float64) float64 {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return 1
	}
	return m
}

// SanitizeRate normalizes a configured or fetched exchange rate to 0
// (absent) when it is non-finite, zero, or negative.
func SanitizeRate(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return 0
	}
	return r
}

// MultiplierFor returns the effective multiplier for a currency. The base
// currency is always 1 regardless of what is stored; unknown currencies are
// neutral.
func (t MultiplierTable) MultiplierFor(code string) float64 {
	code = NormalizeCode(code)
	if code == BaseCurrency {
		return 1
	}
	if e, ok := t[code]; ok {
		return SanitizeMultiplier(e.Multiplier)
	}
	return 1
}

// RateToBaseFor returns the directly configured rate-to-base for a
// currency, or 0 when none is configured. The base currency never has one.
func (t MultiplierTable) RateToBaseFor(code string) float64 {
	code = NormalizeCode(code)
	if code == BaseCurrency {
		return 0
	}
	if e, ok := t[code]; ok {
		return SanitizeRate(e.RateToBase)
	}
	return 0
}
