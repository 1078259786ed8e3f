package dto

import (
	"time"

	"github.com/craftkart/currency-engine/internal/models"
	"github.com/shopspring/decimal"
)

// CreateMultiplierRequest defines the structure for creating a multiplier entry.
type CreateMultiplierRequest struct {
	CurrencyCode string           `json:"currencyCode" binding:"required,currencycode"`
	Multiplier   decimal.Decimal  `json:"multiplier" binding:"required"`
	RateToInr    *decimal.Decimal `json:"rateToInr,omitempty"`
}

// UpdateMultiplierRequest defines the structure for replacing a multiplier
// entry's values. Omitting rateToInr clears any configured direct rate, which
// makes that currency fall back to the generic fetched table.
type UpdateMultiplierRequest struct {
	Multiplier decimal.Decimal  `json:"multiplier" binding:"required"`
	RateToInr  *decimal.Decimal `json:"rateToInr,omitempty"`
}

// MultiplierResponse defines the structure for API responses containing a
// multiplier entry.
type MultiplierResponse struct {
	MultiplierID  string           `json:"multiplierID"`
	CurrencyCode  string           `json:"currencyCode"`
	Multiplier    decimal.Decimal  `json:"multiplier"`
	RateToInr     *decimal.Decimal `json:"rateToInr,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	CreatedBy     string           `json:"createdBy"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy string           `json:"lastUpdatedBy"`
}

// ToMultiplierResponse converts a models.Multiplier to MultiplierResponse DTO
func ToMultiplierResponse(m *models.Multiplier) MultiplierResponse {
	return MultiplierResponse{
		MultiplierID:  m.MultiplierID,
		CurrencyCode:  m.CurrencyCode,
		Multiplier:    m.Multiplier,
		RateToInr:     m.RateToINR,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToListMultiplierResponse converts a slice of models.Multiplier to response DTOs.
func ToListMultiplierResponse(ms []models.Multiplier) []MultiplierResponse {
	res := make([]MultiplierResponse, len(ms))
	for i, m := range ms {
		res[i] = ToMultiplierResponse(&m)
	}
	return res
}

// MultiplierValue is the public view of one validated multiplier entry.
type MultiplierValue struct {
	Multiplier float64  `json:"multiplier"`
	RateToInr  *float64 `json:"rateToInr,omitempty"`
}

// MultiplierTableResponse is the public multiplier table as served to the
// storefront client.
type MultiplierTableResponse struct {
	Multipliers map[string]MultiplierValue `json:"multipliers"`
	FetchedAt   time.Time                  `json:"fetchedAt"`
}
