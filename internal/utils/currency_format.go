package utils

import (
	"github.com/craftkart/currency-engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayPrinter = message.NewPrinter(language.English)

// FormatAmount renders a numeric amount with the currency's display symbol,
// exactly two fraction digits and locale-aware digit grouping.
// Example: FormatAmount(1234.5, "USD") returns "$1,234.50" and
// FormatAmount(1234.5, "INR") returns "1,234.50 ₹" (suffix-placed set).
// Unknown currencies fall back to the raw code as the symbol.
func FormatAmount(amount float64, currencyCode string) string {
	symbol := domain.SymbolFor(currencyCode)
	rounded := decimal.NewFromFloat(amount).Round(2).InexactFloat64()
	magnitude := displayPrinter.Sprintf("%.2f", rounded)

	if domain.IsSuffixPlaced(currencyCode) {
		return magnitude + " " + symbol
	}
	return symbol + magnitude
}
