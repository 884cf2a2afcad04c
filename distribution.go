package moneta

// Distribution turns a grouped-total result into renderable percentage
// slices. It is a pure function of its input: colors are deterministic so
// re-renders are visually stable, and the degenerate cases produce an
// explicit no-data result instead of slices with undefined percentages.

// Slice is one chart-ready wedge of a grouped total.
type Slice struct {
	Label      string
	Value      Money
	Color      string
	Percentage Percent
}

// Distribution is the aggregated result. When NoData is true Slices is
// empty and the chart renders its "no data" state; division by zero never
// reaches a caller.
type Distribution struct {
	Slices []Slice
	NoData bool
}

// typePalette maps each asset type to a fixed color, so a category keeps
// its color across refreshes regardless of its position.
var typePalette = map[AssetType]string{
	Liquidity:  "#4E79A7",
	Stock:      "#F28E2B",
	ETF:        "#E15759",
	Crypto:     "#76B7B2",
	Bond:       "#59A14F",
	RealEstate: "#EDC948",
	Commodity:  "#B07AA1",
	Pension:    "#FF9DA7",
	Insurance:  "#9C755F",
	Other:      "#BAB0AC",
}

// bankPalette is cycled by position for by-bank slices: bank names are
// unbounded free text, so there is no stable key to pin a color to.
var bankPalette = []string{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2", "#59A14F",
	"#EDC948", "#B07AA1", "#FF9DA7", "#9C755F", "#BAB0AC",
}

// TypeSlices aggregates by-type groups. Colors are keyed by the type.
func TypeSlices(groups []Group, total Money) Distribution {
	return toSlices(groups, total, func(g Group, _ int) string {
		if t, err := ParseAssetType(g.Label); err == nil {
			return typePalette[t]
		}
		return typePalette[Other]
	})
}

// BankSlices aggregates by-bank groups. Colors cycle by position.
func BankSlices(groups []Group, total Money) Distribution {
	return toSlices(groups, total, func(_ Group, i int) string {
		return bankPalette[i%len(bankPalette)]
	})
}

func toSlices(groups []Group, total Money, color func(Group, int) string) Distribution {
	if len(groups) == 0 || !total.IsPositive() {
		return Distribution{NoData: true}
	}
	slices := make([]Slice, 0, len(groups))
	for i, g := range groups {
		ratio := g.Value.Amount().Div(total.Amount())
		pct := Percent(ratio.InexactFloat64() * 100).Round1()
		slices = append(slices, Slice{
			Label:      g.Label,
			Value:      g.Value,
			Color:      color(g, i),
			Percentage: pct,
		})
	}
	return Distribution{Slices: slices}
}
