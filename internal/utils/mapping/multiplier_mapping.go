package mapping

import (
	"github.com/craftkart/currency-engine/internal/core/domain"
	"github.com/craftkart/currency-engine/internal/models"
)

// ToDomainMultiplierEntry converts a persisted multiplier row into the
// validated entry the conversion engine consumes. Out-of-range values are
// normalized here (fail-open to the neutral multiplier / absent rate) so the
// engine never sees a corrupt entry.
func ToDomainMultiplierEntry(m models.Multiplier) domain.MultiplierEntry {
	entry := domain.MultiplierEntry{
		CurrencyCode: domain.NormalizeCode(m.CurrencyCode),
		Multiplier:   domain.SanitizeMultiplier(m.Multiplier.InexactFloat64()),
	}
	if m.RateToINR != nil {
		entry.RateToBase = domain.SanitizeRate(m.RateToINR.InexactFloat64())
	}
	return entry
}

// ToDomainMultiplierTable converts persisted multiplier rows into a lookup
// table keyed by normalized currency code.
func ToDomainMultiplierTable(ms []models.Multiplier) domain.MultiplierTable {
	table := make(domain.MultiplierTable, len(ms))
	for _, m := range ms {
		entry := ToDomainMultiplierEntry(m)
		table[entry.CurrencyCode] = entry
	}
	return table
}
