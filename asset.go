package moneta

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetType is the closed enumeration of holding categories.
type AssetType string

const (
	Liquidity  AssetType = "LIQUIDITY"
	Stock      AssetType = "STOCK"
	ETF        AssetType = "ETF"
	Crypto     AssetType = "CRYPTO"
	Bond       AssetType = "BOND"
	RealEstate AssetType = "REAL_ESTATE"
	Commodity  AssetType = "COMMODITY"
	Pension    AssetType = "PENSION"
	Insurance  AssetType = "INSURANCE"
	Other      AssetType = "OTHER"
)

// AssetTypes lists every valid asset type, in display order.
func AssetTypes() []AssetType {
	return []AssetType{Liquidity, Stock, ETF, Crypto, Bond, RealEstate, Commodity, Pension, Insurance, Other}
}

// ParseAssetType parses a user- or server-provided type label.
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown asset type %q", s)
	}
	return t, nil
}

// IsValid reports whether t is one of the closed enumeration values.
func (t AssetType) IsValid() bool {
	switch t {
	case Liquidity, Stock, ETF, Crypto, Bond, RealEstate, Commodity, Pension, Insurance, Other:
		return true
	}
	return false
}

func (t AssetType) String() string { return string(t) }

// Asset is a named holding at a bank, broker or wallet.
//
// Amount is always the balance in the asset's own currency and is never
// negative: the remote service guarantees it, and the client never
// constructs or submits a negative amount.
type Asset struct {
	ID           string
	Bank         string
	Type         AssetType
	Currency     string
	Amount       Money
	IsPayable    bool
	ExchangeRate decimal.Decimal // to the user's default currency; zero when absent
	LastUpdated  Date            // server-assigned
}

// ConvertedInto returns the amount converted into the target currency via
// the asset's exchange rate, for display next to the native amount.
// ok is false when the asset has no rate or already is in that currency.
func (a Asset) ConvertedInto(target string) (m Money, ok bool) {
	if a.Currency == target || a.ExchangeRate.IsZero() {
		return Money{}, false
	}
	return a.Amount.Convert(a.ExchangeRate, target), true
}

// Group is a grouped total: the sum of asset amounts for one bucket of a
// dimension (type or bank), as computed by the remote service.
type Group struct {
	Label string
	Value Money
}

// GroupBy selects the bucketing dimension of a grouped-totals read.
type GroupBy string

const (
	ByType GroupBy = "type"
	ByBank GroupBy = "bank"
)
