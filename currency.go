package moneta

import "github.com/Rhymond/go-money"

// CurrencySymbol returns the display glyph for a currency code, e.g. "€"
// for EUR. Unknown codes fall back to the code itself, so the lookup is
// total and pure.
func CurrencySymbol(code string) string {
	c := money.GetCurrency(code)
	if c == nil || c.Grapheme == "" {
		return code
	}
	return c.Grapheme
}

// KnownCurrency reports whether the code is in the currency table.
func KnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
