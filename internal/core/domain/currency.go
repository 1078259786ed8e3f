package domain

import "strings"

// BaseCurrency is the single currency in which all authoritative amounts
// (product prices, order totals) are stored and computed server-side.
const BaseCurrency = "INR"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	AuditFields
}

// NormalizeCode canonicalizes a currency code: trimmed and uppercased.
// Codes are treated case-insensitively everywhere else.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// catalog is the static symbol/name lookup used by the formatter. The
// currencies table is seeded from the same data; the formatter reads this
// table so display rendering never needs a database round-trip.
var catalog = map[string]Currency{
	"INR": {CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee"},
	"USD": {CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
	"EUR": {CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
	"GBP": {CurrencyCode: "GBP", Symbol: "£", Name: "Pound Sterling"},
	"JPY": {CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	"AUD": {CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	"CAD": {CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	"SGD": {CurrencyCode: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	"AED": {CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	"SEK": {CurrencyCode: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	"NOK": {CurrencyCode: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	"DKK": {CurrencyCode: "DKK", Symbol: "kr", Name: "Danish Krone"},
	"CZK": {CurrencyCode: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
	"CHF": {CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	"CNY": {CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
}

// suffixPlacement enumerates the currencies whose symbol renders after the
// amount ("1,234.50 ₹"). Everything else renders symbol-first ("$1,234.50").
// Placement is data, not logic: adjusting it is an edit to this table.
var suffixPlacement = map[string]struct{}{
	BaseCurrency: {},
	"SEK":        {},
	"NOK":        {},
	"DKK":        {},
	"CZK":        {},
}

// SymbolFor returns the display symbol for a currency code, falling back to
// the raw code when the currency is unknown.
func SymbolFor(code string) string {
	if c, ok := catalog[NormalizeCode(code)]; ok {
		return c.Symbol
	}
	return NormalizeCode(code)
}

// NameFor returns the full currency name, falling back to the raw code.
func NameFor(code string) string {
	if c, ok := catalog[NormalizeCode(code)]; ok {
		return c.Name
	}
	return NormalizeCode(code)
}

// IsKnownCurrency reports whether the code appears in the static catalog.
func IsKnownCurrency(code string) bool {
	_, ok := catalog[NormalizeCode(code)]
	return ok
}

// IsSuffixPlaced reports whether the currency's symbol renders after the
// numeric amount.
func IsSuffixPlaced(code string) bool {
	_, ok := suffixPlacement[NormalizeCode(code)]
	return ok
}

// CatalogCurrencies returns the static catalog entries, used to seed the
// currencies table and by tests.
func CatalogCurrencies() []Currency {
	out := make([]Currency, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, c)
	}
	return out
}
