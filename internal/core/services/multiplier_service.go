package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craftkart/currency-engine/internal/apperrors"
	"github.com/craftkart/currency-engine/internal/core/domain"
	portsrepo "github.com/craftkart/currency-engine/internal/core/ports/repositories"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/internal/dto"
	"github.com/craftkart/currency-engine/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MultiplierService provides admin CRUD for per-currency multiplier entries.
// Writes land in the database only; the cached MultiplierStore picks them up
// on its next scheduled refresh.
type MultiplierService struct {
	multiplierRepo  portsrepo.MultiplierRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
}

// NewMultiplierService creates a new MultiplierService.
func NewMultiplierService(multiplierRepo portsrepo.MultiplierRepositoryFacade, currencyService portssvc.CurrencyReaderSvc) *MultiplierService {
	return &MultiplierService{
		multiplierRepo:  multiplierRepo,
		currencyService: currencyService,
	}
}

func (s *MultiplierService) validateValues(multiplier decimal.Decimal, rateToInr *decimal.Decimal) error {
	if multiplier.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: multiplier must be positive", apperrors.ErrValidation)
	}
	if rateToInr != nil && rateToInr.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: rateToInr must be positive when set", apperrors.ErrValidation)
	}
	return nil
}

func (s *MultiplierService) validateCurrency(ctx context.Context, currencyCode string) error {
	if currencyCode == domain.BaseCurrency {
		return fmt.Errorf("%w: the base currency always converts at identity and cannot carry a multiplier", apperrors.ErrValidation)
	}
	_, err := s.currencyService.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, currencyCode)
		}
		return fmt.Errorf("failed to validate currency '%s': %w", currencyCode, err)
	}
	return nil
}

// CreateMultiplier persists a new multiplier entry.
func (s *MultiplierService) CreateMultiplier(ctx context.Context, req dto.CreateMultiplierRequest, creatorUserID string) (*models.Multiplier, error) {
	currencyCode := domain.NormalizeCode(req.CurrencyCode)

	if err := s.validateValues(req.Multiplier, req.RateToInr); err != nil {
		return nil, err
	}
	if err := s.validateCurrency(ctx, currencyCode); err != nil {
		return nil, err
	}

	now := time.Now()
	m := models.Multiplier{
		MultiplierID: uuid.NewString(),
		CurrencyCode: currencyCode,
		Multiplier:   req.Multiplier,
		RateToINR:    req.RateToInr,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.multiplierRepo.SaveMultiplier(ctx, m); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: multiplier for '%s' already exists", apperrors.ErrDuplicate, currencyCode)
		}
		return nil, fmt.Errorf("failed to create multiplier in service: %w", err)
	}

	return &m, nil
}

// UpdateMultiplier replaces the values of the entry for a currency. A nil
// rateToInr clears any configured direct rate, so that currency falls back
// to the generic fetched table rather than to identity.
func (s *MultiplierService) UpdateMultiplier(ctx context.Context, currencyCode string, req dto.UpdateMultiplierRequest, updaterUserID string) (*models.Multiplier, error) {
	currencyCode = domain.NormalizeCode(currencyCode)

	if err := s.validateValues(req.Multiplier, req.RateToInr); err != nil {
		return nil, err
	}

	existing, err := s.multiplierRepo.FindMultiplierByCurrency(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load multiplier for update: %w", err)
	}

	existing.Multiplier = req.Multiplier
	existing.RateToINR = req.RateToInr
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = updaterUserID

	if err := s.multiplierRepo.UpdateMultiplier(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update multiplier in service: %w", err)
	}

	return existing, nil
}

// DeleteMultiplier removes the entry for a currency.
func (s *MultiplierService) DeleteMultiplier(ctx context.Context, currencyCode string) error {
	currencyCode = domain.NormalizeCode(currencyCode)
	if err := s.multiplierRepo.DeleteMultiplier(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete multiplier in service: %w", err)
	}
	return nil
}

// GetMultiplierByCurrency retrieves the entry for a currency.
func (s *MultiplierService) GetMultiplierByCurrency(ctx context.Context, currencyCode string) (*models.Multiplier, error) {
	m, err := s.multiplierRepo.FindMultiplierByCurrency(ctx, domain.NormalizeCode(currencyCode))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get multiplier in service: %w", err)
	}
	return m, nil
}

// ListMultipliers retrieves every configured entry.
func (s *MultiplierService) ListMultipliers(ctx context.Context) ([]models.Multiplier, error) {
	ms, err := s.multiplierRepo.ListMultipliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list multipliers in service: %w", err)
	}
	if ms == nil {
		return []models.Multiplier{}, nil
	}
	return ms, nil
}

var _ portssvc.MultiplierSvcFacade = (*MultiplierService)(nil)
