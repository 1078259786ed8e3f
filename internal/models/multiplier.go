package models

import (
	"github.com/shopspring/decimal"
)

// Multiplier stores the admin-configured pricing adjustment for a currency.
// Multiplier scales a base-currency amount before conversion; RateToINR,
// when non-nil, is a directly configured exchange rate ("1 unit of
// CurrencyCode = RateToINR INR") that overrides the generic fetched table.
type Multiplier struct {
	MultiplierID string           `json:"multiplierID"` // Primary Key (UUID)
	CurrencyCode string           `json:"currencyCode"` // Unique, FK -> Currency.currencyCode
	Multiplier   decimal.Decimal  `json:"multiplier"`
	RateToINR    *decimal.Decimal `json:"rateToInr,omitempty"` // nil = not configured
	AuditFields
}
