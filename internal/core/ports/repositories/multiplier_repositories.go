package repositories

import (
	"context"

	"github.com/craftkart/currency-engine/internal/models"
)

// MultiplierReader defines read operations for multiplier data
type MultiplierReader interface {
	// FindMultiplierByCurrency retrieves the multiplier entry for a currency.
	FindMultiplierByCurrency(ctx context.Context, currencyCode string) (*models.Multiplier, error)

	// ListMultipliers retrieves every configured multiplier entry.
	ListMultipliers(ctx context.Context) ([]models.Multiplier, error)
}

// MultiplierWriter defines write operations for multiplier data
type MultiplierWriter interface {
	// SaveMultiplier persists a new multiplier entry.
	SaveMultiplier(ctx context.Context, multiplier models.Multiplier) error

	// UpdateMultiplier replaces the values of an existing entry.
	UpdateMultiplier(ctx context.Context, multiplier models.Multiplier) error

	// DeleteMultiplier removes the entry for a currency.
	DeleteMultiplier(ctx context.Context, currencyCode string) error
}

// MultiplierRepositoryFacade combines all multiplier-related repository interfaces
type MultiplierRepositoryFacade interface {
	MultiplierReader
	MultiplierWriter
}
