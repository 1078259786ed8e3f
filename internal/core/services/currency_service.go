package services

import (
	"context"
	"fmt"
	"time"

	"github.com/craftkart/currency-engine/internal/core/domain"
	portsrepo "github.com/craftkart/currency-engine/internal/core/ports/repositories"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/internal/dto"
	"github.com/craftkart/currency-engine/internal/models"
)

// CurrencyService provides catalog operations: the symbol/name lookup data
// served to admin screens and used to validate multiplier configuration.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrency adds a currency to the catalog.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*models.Currency, error) {
	now := time.Now()

	currency := models.Currency{
		CurrencyCode: domain.NormalizeCode(req.CurrencyCode),
		Symbol:       req.Symbol,
		Name:         req.Name,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, domain.NormalizeCode(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all catalog currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []models.Currency{}, nil
	}
	return currencies, nil
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
