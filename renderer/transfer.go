package renderer

import (
	"fmt"
	"strings"

	"moneta"
)

// PickMarkdown renders the asset choice for one side of a transfer. An
// asset colliding with the opposite selection is shown disabled, with its
// full data still visible, so the user understands why it is unavailable.
func PickMarkdown(side moneta.Side, assets []moneta.Asset, p *moneta.Picker) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Pick %s asset\n\n", side)
	fmt.Fprintln(&b, "| | ID | Bank | Type | Amount |")
	fmt.Fprintln(&b, "|:---:|:---|:---|:---|---:|")

	for _, a := range assets {
		mark := " "
		if p.Disabled(side, a) {
			mark = "✗"
		}
		if sel, ok := selected(side, p); ok && sel.ID == a.ID {
			mark = "●"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			mark, a.ID, a.Bank, a.Type, a.Amount.String())
	}
	return b.String()
}

func selected(side moneta.Side, p *moneta.Picker) (moneta.Asset, bool) {
	if side == moneta.SideFrom {
		return p.From()
	}
	return p.To()
}

// TransferPreviewMarkdown renders the pending intent before confirmation,
// including the non-fatal cross-currency advisory.
func TransferPreviewMarkdown(e *moneta.TransferEngine, amount moneta.Money, loc moneta.Localizer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transfer\n\n")

	from, _ := e.Picker().From()
	to, _ := e.Picker().To()
	fmt.Fprintf(&b, "From **%s** (%s) to **%s** (%s): **%s**\n\n",
		from.Bank, from.Currency, to.Bank, to.Currency, amount.String())

	if adv, ok := e.Advisory(); ok {
		fmt.Fprintf(&b, "> ⚠ %s (%s → %s)\n", loc.T(moneta.KeyCrossCurrency), adv.FromCurrency, adv.ToCurrency)
	}
	return b.String()
}
