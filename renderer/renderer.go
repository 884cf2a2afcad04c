// Package renderer turns the moneta view-models into markdown screens.
// Everything user-facing goes through here; the cmd layer only decides
// which renderer to call and prints the result.
package renderer

import (
	"strings"

	"moneta"
)

// bar renders a proportional bar for a percentage, one block per ~4%.
// It gives the distribution tables a chart-like reading without any
// pixel rendering.
func bar(p moneta.Percent) string {
	n := int(float64(p) / 4)
	if n <= 0 && p > 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// amountCell renders an asset amount with, when the asset carries an
// exchange rate, the converted value into the default currency appended
// de-emphasized. Display-only.
func amountCell(a moneta.Asset, defaultCurrency string) string {
	cell := a.Amount.String()
	if converted, ok := a.ConvertedInto(defaultCurrency); ok {
		cell += " *(≈ " + converted.String() + ")*"
	}
	return cell
}

// payableMark renders the payable flag.
func payableMark(p bool) string {
	if p {
		return "✓"
	}
	return " "
}
