package services

import (
	"context"

	"github.com/craftkart/currency-engine/internal/core/domain"
)

// RateSource exposes the current generic exchange-rate snapshot and a way
// to refresh it. Snapshot reads never block and never fail; a refresh
// failure leaves the previous snapshot in place.
type RateSource interface {
	// Rates returns the current snapshot. A zero snapshot means the table
	// has never been populated.
	Rates() domain.RateSnapshot

	// Refresh fetches a fresh table and replaces the snapshot wholesale.
	Refresh(ctx context.Context) error
}

// MultiplierSource exposes the current validated multiplier snapshot with
// the same refresh/failure semantics as RateSource.
type MultiplierSource interface {
	Multipliers() domain.MultiplierSnapshot
	Refresh(ctx context.Context) error
}

// ConverterSvc is the display-conversion contract consumed by the rest of
// the application. Both operations are synchronous and pure over the
// sources' current snapshots; neither ever returns an error.
type ConverterSvc interface {
	// Convert turns an amount in fromCurrency into an amount in toCurrency
	// following the tiered fallback chain. An empty fromCurrency means the
	// base currency.
	Convert(amount float64, fromCurrency, toCurrency string) float64

	// Format renders an amount with the currency's display symbol, two
	// fraction digits and locale-aware grouping.
	Format(amount float64, currencyCode string) string
}

// RefreshListener observes refresh-cycle transitions: it is invoked with
// true when a cycle starts and false when it settles.
type RefreshListener func(refreshing bool)

// PreferenceSvcFacade owns the shopper-facing surface: the persisted
// display preference, conversion against it, and the refresh lifecycle.
type PreferenceSvcFacade interface {
	// Currency returns the session's selected display currency, defaulting
	// to the base currency when absent or invalid.
	Currency(ctx context.Context, sessionID string) string

	// SetCurrency persists the session's display currency. It never
	// triggers a rate refresh.
	SetCurrency(ctx context.Context, sessionID, currencyCode string) error

	// ConvertForSession converts an amount into the session's selected
	// currency and returns both the numeric and formatted results.
	ConvertForSession(ctx context.Context, sessionID string, amount float64, fromCurrency string) (float64, string)

	// StartRefreshLoop refreshes both stores immediately, then on every
	// interval tick until ctx is cancelled. The returned channel closes
	// once the loop has fully stopped.
	StartRefreshLoop(ctx context.Context) <-chan struct{}

	// Subscribe registers a refresh listener and returns its unsubscribe
	// function.
	Subscribe(listener RefreshListener) (unsubscribe func())

	// Refreshing reports whether a refresh cycle is currently in flight.
	Refreshing() bool
}
