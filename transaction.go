package moneta

import "github.com/shopspring/decimal"

// FlowType is the direction of a historical transaction.
type FlowType string

const (
	Inflow  FlowType = "INFLOW"
	Outflow FlowType = "OUTFLOW"
)

// Transaction is one inflow or outflow affecting an asset. Transactions
// are immutable once created server-side; the client only renders them.
type Transaction struct {
	ID           string
	Source       string // which subsystem produced it
	Flow         FlowType
	Amount       Money
	Currency     string
	ExchangeRate decimal.Decimal // rate at transaction time, display conversion only
	Date         Date
	Type         string // free label
	Description  string
}

// ConvertedInto returns the transaction amount converted into the asset's
// currency using the rate recorded at transaction time. ok is false when
// the transaction already is in that currency: then only the native
// amount is rendered.
//
// This is a display-only computation and must never feed back into any
// persisted value.
func (t Transaction) ConvertedInto(assetCurrency string) (m Money, ok bool) {
	if t.Currency == assetCurrency {
		return Money{}, false
	}
	return t.Amount.Convert(t.ExchangeRate, assetCurrency), true
}

// Signed returns the amount with the flow direction applied, for display.
func (t Transaction) Signed() Money {
	if t.Flow == Outflow {
		return M(t.Amount.Amount().Neg(), t.Amount.Currency())
	}
	return t.Amount
}

// AggregateSummary is the per-asset flow summary computed server-side and
// re-fetched on each detail view. It is derived, never stored locally.
type AggregateSummary struct {
	TotalInflow  Money
	TotalOutflow Money
	NetFlow      Money
}

// History is the result of one history read: the asset's transactions and
// their aggregate summary.
type History struct {
	Transactions []Transaction
	Summary      AggregateSummary
}
