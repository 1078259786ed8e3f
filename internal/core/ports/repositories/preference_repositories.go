package repositories

import "context"

// PreferenceRepository persists each session's selected display currency.
// The preference survives reloads but carries no other session state.
type PreferenceRepository interface {
	// GetPreference returns the stored currency code for a session, or ""
	// when none is stored.
	GetPreference(ctx context.Context, sessionID string) (string, error)

	// SavePreference stores the selected currency code for a session.
	SavePreference(ctx context.Context, sessionID, currencyCode string) error
}
