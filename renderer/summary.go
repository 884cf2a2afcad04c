package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"moneta"
)

// SummaryMarkdown renders the catalog screen: grand total, the two
// distributions and the flat asset list. Slices whose read failed render
// an unavailable note instead of stale-looking silence.
func SummaryMarkdown(snap moneta.Snapshot, defaultCurrency string, loc moneta.Localizer) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Assets")
	if snap.Errs.Total != nil {
		doc.PlainText(fmt.Sprintf("Total: %s", loc.T(moneta.KeyRemoteUnavailable)))
	} else {
		doc.PlainText(fmt.Sprintf("Total: %s", snap.Total.String()))
	}

	doc.H2("By type")
	renderDistribution(doc, moneta.TypeSlices(snap.ByType, snap.Total), snap.Errs.ByType, loc)

	doc.H2("By bank")
	renderDistribution(doc, moneta.BankSlices(snap.ByBank, snap.Total), snap.Errs.ByBank, loc)

	doc.H2("Holdings")
	if snap.Errs.List != nil {
		doc.PlainText(loc.T(moneta.KeyRemoteUnavailable))
		return doc.String()
	}
	rows := make([][]string, 0, len(snap.Assets))
	for _, a := range snap.Assets {
		rows = append(rows, []string{
			a.ID,
			a.Bank,
			a.Type.String(),
			moneta.CurrencySymbol(a.Currency),
			amountCell(a, defaultCurrency),
			payableMark(a.IsPayable),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Bank", "Type", "Cur", "Amount", "Payable"},
		Rows:   rows,
	})

	return doc.String()
}

func renderDistribution(doc *md.Markdown, dist moneta.Distribution, readErr error, loc moneta.Localizer) {
	if readErr != nil {
		doc.PlainText(loc.T(moneta.KeyRemoteUnavailable))
		return
	}
	if dist.NoData {
		doc.PlainText(loc.T(moneta.KeyNoData))
		return
	}
	rows := make([][]string, 0, len(dist.Slices))
	for _, s := range dist.Slices {
		rows = append(rows, []string{
			s.Label,
			s.Value.String(),
			s.Percentage.String(),
			bar(s.Percentage),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Label", "Value", "Share", ""},
		Rows:   rows,
	})
}
