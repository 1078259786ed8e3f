package services

// ServiceContainer bundles the application services handed to the HTTP
// layer at startup.
type ServiceContainer struct {
	Currency    CurrencySvcFacade
	Multiplier  MultiplierSvcFacade
	Rates       RateSource
	Multipliers MultiplierSource
	Converter   ConverterSvc
	Preference  PreferenceSvcFacade
}
