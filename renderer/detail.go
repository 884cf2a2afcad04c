package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"moneta"
)

// DetailMarkdown renders the asset detail screen. The asset's static
// fields always render; the history section degrades to an unavailable
// note when its own read failed.
func DetailMarkdown(a moneta.Asset, h *moneta.History, histErr error, loc moneta.Localizer) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", a.Bank, a.Type))
	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"ID", a.ID},
			{"Bank", a.Bank},
			{"Type", a.Type.String()},
			{"Currency", fmt.Sprintf("%s (%s)", a.Currency, moneta.CurrencySymbol(a.Currency))},
			{"Amount", a.Amount.String()},
			{"Payable", payableMark(a.IsPayable)},
			{"Updated", a.LastUpdated.String()},
		},
	})

	doc.H2("History")
	if histErr != nil || h == nil {
		doc.PlainText(loc.T(moneta.KeyRemoteUnavailable))
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("In %s · Out %s · Net %s",
		h.Summary.TotalInflow.String(),
		h.Summary.TotalOutflow.String(),
		h.Summary.NetFlow.SignedString(),
	))

	rows := make([][]string, 0, len(h.Transactions))
	for _, tx := range h.Transactions {
		rows = append(rows, []string{
			tx.Date.String(),
			string(tx.Flow),
			tx.Type,
			transactionAmountCell(tx, a.Currency),
			tx.Source,
			tx.Description,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Flow", "Type", "Amount", "Source", "Description"},
		Rows:   rows,
	})

	return doc.String()
}

// transactionAmountCell renders the native amount, plus the converted
// amount in the asset's currency when the transaction is foreign. The
// conversion uses the rate recorded at transaction time and is
// de-emphasized: it exists only so mixed-currency histories stay
// comparable at a glance.
func transactionAmountCell(tx moneta.Transaction, assetCurrency string) string {
	cell := tx.Amount.Fixed() + " " + tx.Currency
	if converted, ok := tx.ConvertedInto(assetCurrency); ok {
		cell += " *(≈ " + converted.Fixed() + " " + assetCurrency + ")*"
	}
	return cell
}
