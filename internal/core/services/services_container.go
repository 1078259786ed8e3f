package services

import (
	"log/slog"

	portsrepo "github.com/craftkart/currency-engine/internal/core/ports/repositories"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.Currency)
	container.Multiplier = NewMultiplierService(repos.Multiplier, container.Currency)

	rateStore := NewRateStore(cfg.RatesAPIURL, cfg.HTTPTimeout, logger)
	multiplierStore := NewMultiplierStore(repos.Multiplier, logger)
	container.Rates = rateStore
	container.Multipliers = multiplierStore

	container.Converter = NewConversionService(rateStore, multiplierStore)
	container.Preference = NewPreferenceService(
		repos.Preference,
		rateStore,
		multiplierStore,
		container.Converter,
		logger,
		cfg.RatesRefreshInterval,
	)

	return container
}
