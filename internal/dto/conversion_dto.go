package dto

import "time"

// RateTableResponse is the generic exchange-rate table as served to the
// storefront client. Each rate is "units of code per 1 unit of the base
// currency".
type RateTableResponse struct {
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

// ConvertResponse carries a display conversion result.
type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
	Formatted string  `json:"formatted"`
}

// StatusResponse reports the freshness of both cached tables and whether a
// refresh cycle is currently in flight.
type StatusResponse struct {
	Refreshing           bool      `json:"refreshing"`
	RatesFetchedAt       time.Time `json:"ratesFetchedAt"`
	RateCount            int       `json:"rateCount"`
	MultipliersFetchedAt time.Time `json:"multipliersFetchedAt"`
	MultiplierCount      int       `json:"multiplierCount"`
}

// PreferenceResponse carries the session's selected display currency.
type PreferenceResponse struct {
	CurrencyCode string `json:"currencyCode"`
}

// SetPreferenceRequest selects the session's display currency.
type SetPreferenceRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
}
