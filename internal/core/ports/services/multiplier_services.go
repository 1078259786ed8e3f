package services

import (
	"context"

	"github.com/craftkart/currency-engine/internal/dto"
	"github.com/craftkart/currency-engine/internal/models"
)

// MultiplierReaderSvc defines read operations for multiplier entries
type MultiplierReaderSvc interface {
	// GetMultiplierByCurrency retrieves the multiplier entry for a currency.
	GetMultiplierByCurrency(ctx context.Context, currencyCode string) (*models.Multiplier, error)

	// ListMultipliers retrieves every configured multiplier entry.
	ListMultipliers(ctx context.Context) ([]models.Multiplier, error)
}

// MultiplierWriterSvc defines write operations for multiplier entries
type MultiplierWriterSvc interface {
	// CreateMultiplier persists a new multiplier entry.
	CreateMultiplier(ctx context.Context, req dto.CreateMultiplierRequest, creatorUserID string) (*models.Multiplier, error)

	// UpdateMultiplier replaces the values of the entry for a currency.
	// A nil rateToInr in the request clears any configured direct rate.
	UpdateMultiplier(ctx context.Context, currencyCode string, req dto.UpdateMultiplierRequest, updaterUserID string) (*models.Multiplier, error)

	// DeleteMultiplier removes the entry for a currency.
	DeleteMultiplier(ctx context.Context, currencyCode string) error
}

// MultiplierSvcFacade combines all multiplier-related service interfaces
type MultiplierSvcFacade interface {
	MultiplierReaderSvc
	MultiplierWriterSvc
}
