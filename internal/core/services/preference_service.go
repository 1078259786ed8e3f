package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/craftkart/currency-engine/internal/apperrors"
	"github.com/craftkart/currency-engine/internal/core/domain"
	portsrepo "github.com/craftkart/currency-engine/internal/core/ports/repositories"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
)

// PreferenceService owns the shopper-facing surface of the conversion
// engine: the persisted display preference, conversion against it, the
// scheduled refresh lifecycle for both cached tables, and the refresh
// observer.
type PreferenceService struct {
	prefRepo    portsrepo.PreferenceRepository
	rates       portssvc.RateSource
	multipliers portssvc.MultiplierSource
	converter   portssvc.ConverterSvc
	logger      *slog.Logger
	interval    time.Duration

	refreshing atomic.Bool

	mu         sync.Mutex
	listeners  map[int]portssvc.RefreshListener
	nextListID int
}

// NewPreferenceService creates a PreferenceService. interval is the fixed
// refresh cadence for both stores.
func NewPreferenceService(
	prefRepo portsrepo.PreferenceRepository,
	rates portssvc.RateSource,
	multipliers portssvc.MultiplierSource,
	converter portssvc.ConverterSvc,
	logger *slog.Logger,
	interval time.Duration,
) *PreferenceService {
	return &PreferenceService{
		prefRepo:    prefRepo,
		rates:       rates,
		multipliers: multipliers,
		converter:   converter,
		logger:      logger,
		interval:    interval,
		listeners:   make(map[int]portssvc.RefreshListener),
	}
}

// Currency returns the session's selected display currency. Absent,
// unreadable or unknown stored values all resolve to the base currency.
func (s *PreferenceService) Currency(ctx context.Context, sessionID string) string {
	if sessionID == "" {
		return domain.BaseCurrency
	}
	code, err := s.prefRepo.GetPreference(ctx, sessionID)
	if err != nil {
		s.logger.Warn("Failed to read display preference, defaulting to base currency",
			slog.String("session_id", sessionID), slog.String("error", err.Error()))
		return domain.BaseCurrency
	}
	code = domain.NormalizeCode(code)
	if code == "" || !domain.IsKnownCurrency(code) {
		return domain.BaseCurrency
	}
	return code
}

// SetCurrency persists the session's display currency. It only changes the
// stored preference; it never triggers a rate refresh.
func (s *PreferenceService) SetCurrency(ctx context.Context, sessionID, currencyCode string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session ID is required", apperrors.ErrValidation)
	}
	code := domain.NormalizeCode(currencyCode)
	if !domain.IsKnownCurrency(code) {
		return fmt.Errorf("%w: unknown currency code '%s'", apperrors.ErrValidation, currencyCode)
	}
	if err := s.prefRepo.SavePreference(ctx, sessionID, code); err != nil {
		return fmt.Errorf("failed to persist display preference: %w", err)
	}
	return nil
}

// ConvertForSession converts an amount into the session's selected currency
// and returns both the numeric and formatted results.
func (s *PreferenceService) ConvertForSession(ctx context.Context, sessionID string, amount float64, fromCurrency string) (float64, string) {
	to := s.Currency(ctx, sessionID)
	converted := s.converter.Convert(amount, fromCurrency, to)
	return converted, s.converter.Format(converted, to)
}

// Subscribe registers a refresh listener and returns its unsubscribe
// function. Unsubscribing is idempotent.
func (s *PreferenceService) Subscribe(listener portssvc.RefreshListener) func() {
	s.mu.Lock()
	id := s.nextListID
	s.nextListID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Refreshing reports whether a refresh cycle is currently in flight.
func (s *PreferenceService) Refreshing() bool {
	return s.refreshing.Load()
}

func (s *PreferenceService) notify(refreshing bool) {
	s.refreshing.Store(refreshing)

	s.mu.Lock()
	listeners := make([]portssvc.RefreshListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(refreshing)
	}
}

// refreshBoth runs both store refreshes concurrently and waits for both to
// settle. Each failure is logged and isolated: one store failing never
// blocks or invalidates the other, and no error propagates to callers.
func (s *PreferenceService) refreshBoth(ctx context.Context) {
	s.notify(true)
	defer s.notify(false)

	var wg sync.WaitGroup
	var rateErr, multErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		rateErr = s.rates.Refresh(ctx)
	}()
	go func() {
		defer wg.Done()
		multErr = s.multipliers.Refresh(ctx)
	}()
	wg.Wait()

	if rateErr != nil {
		s.logger.Warn("Exchange rate refresh failed, keeping previous table", slog.String("error", rateErr.Error()))
	}
	if multErr != nil {
		s.logger.Warn("Multiplier refresh failed, keeping previous table", slog.String("error", multErr.Error()))
	}
}

// StartRefreshLoop refreshes both stores immediately, then on every
// interval tick until ctx is cancelled. A failed cycle simply waits for the
// next tick; there is no backoff or immediate retry. The returned channel
// closes once the loop has stopped.
func (s *PreferenceService) StartRefreshLoop(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		s.refreshBoth(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refreshBoth(ctx)
			}
		}
	}()
	return done
}

var _ portssvc.PreferenceSvcFacade = (*PreferenceService)(nil)
