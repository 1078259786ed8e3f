package services

import (
	"github.com/craftkart/currency-engine/internal/core/domain"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/internal/utils"
)

// ConversionService implements the display-conversion contract over the two
// store snapshots. It is deterministic and pure given the snapshots it
// reads, and it never returns an error: every unresolvable state degrades
// to the best available approximation rather than failing.
//
// The tier order is the contract of this subsystem: an admin-entered direct
// rate always wins over the generic fetched table, because it may encode
// business-negotiated pricing and not just market FX.
type ConversionService struct {
	rates       portssvc.RateSource
	multipliers portssvc.MultiplierSource
}

// NewConversionService creates a ConversionService reading from the given
// snapshot sources.
func NewConversionService(rates portssvc.RateSource, multipliers portssvc.MultiplierSource) *ConversionService {
	return &ConversionService{rates: rates, multipliers: multipliers}
}

// Convert converts amount from fromCurrency into toCurrency. An empty
// fromCurrency means the base currency.
//
// Evaluation order:
//  1. identity: same currency in and out returns the amount untouched,
//     before any multiplier or rate lookup;
//  2. multiplier uplift: converting away from the base scales the amount
//     by the target's validated multiplier (base itself is always 1);
//  3. direct admin rate: a configured rateToBase for the target divides
//     the effective amount and short-circuits the generic table;
//  4. generic table: multiply/divide by the fetched base-relative rates,
//     bridging through the base for non-base pairs; any missing leg and an
//     empty or never-populated table fail open to the effective amount.
func (s *ConversionService) Convert(amount float64, fromCurrency, toCurrency string) float64 {
	from := domain.NormalizeCode(fromCurrency)
	if from == "" {
		from = domain.BaseCurrency
	}
	to := domain.NormalizeCode(toCurrency)
	if to == "" {
		to = domain.BaseCurrency
	}

	if from == to {
		return amount
	}

	entries := s.multipliers.Multipliers().Entries

	effective := amount
	if from == domain.BaseCurrency {
		effective = amount * entries.MultiplierFor(to)
	}

	if to != domain.BaseCurrency {
		if rate := entries.RateToBaseFor(to); rate > 0 {
			return effective / rate
		}
	}

	rates := s.rates.Rates().Rates
	if len(rates) == 0 {
		return effective
	}

	if from == domain.BaseCurrency {
		if r := domain.SanitizeRate(rates[to]); r > 0 {
			return effective * r
		}
		return effective
	}
	if to == domain.BaseCurrency {
		if r := domain.SanitizeRate(rates[from]); r > 0 {
			return effective / r
		}
		return effective
	}

	// Non-base to non-base: bridge through the base, each leg failing open
	// on a missing rate.
	out := effective
	if r := domain.SanitizeRate(rates[from]); r > 0 {
		out /= r
	}
	if r := domain.SanitizeRate(rates[to]); r > 0 {
		out *= r
	}
	return out
}

// Format renders an amount with the currency's display symbol.
func (s *ConversionService) Format(amount float64, currencyCode string) string {
	return utils.FormatAmount(amount, currencyCode)
}

var _ portssvc.ConverterSvc = (*ConversionService)(nil)
