package moneta

import "testing"

func TestTypeSlicesPercentages(t *testing.T) {
	groups := []Group{
		{Label: "LIQUIDITY", Value: EUR(500)},
		{Label: "STOCK", Value: EUR(300)},
		{Label: "CRYPTO", Value: EUR(200)},
	}
	d := TypeSlices(groups, EUR(1000))
	if d.NoData {
		t.Fatal("unexpected no-data for a populated distribution")
	}
	if len(d.Slices) != 3 {
		t.Fatalf("got %d slices, want 3", len(d.Slices))
	}

	want := []Percent{50, 30, 20}
	var sum Percent
	for i, s := range d.Slices {
		if !s.Percentage.Equal(want[i]) {
			t.Errorf("slice %q percentage = %v, want %v", s.Label, s.Percentage, want[i])
		}
		sum += s.Percentage
	}
	if sum < 99.9 || sum > 100.1 {
		t.Errorf("percentages sum to %v, want 100 within 0.1", sum)
	}
}

func TestSlicesRoundingStaysNearHundred(t *testing.T) {
	// three equal thirds round to 33.3 each; the sum may drift but must
	// stay within a tenth of a point
	groups := []Group{
		{Label: "A", Value: EUR(1)},
		{Label: "B", Value: EUR(1)},
		{Label: "C", Value: EUR(1)},
	}
	d := BankSlices(groups, EUR(3))
	var sum Percent
	for _, s := range d.Slices {
		if !s.Percentage.Equal(33.3) {
			t.Errorf("slice %q = %v, want 33.3", s.Label, s.Percentage)
		}
		sum += s.Percentage
	}
	if sum < 99.8 {
		t.Errorf("sum = %v, drifted too far from 100", sum)
	}
}

func TestSlicesNoData(t *testing.T) {
	if d := TypeSlices(nil, EUR(0)); !d.NoData {
		t.Error("empty groups should produce no-data")
	}
	if d := TypeSlices([]Group{{Label: "STOCK", Value: EUR(0)}}, EUR(0)); !d.NoData {
		t.Error("zero total should produce no-data, never a division by zero")
	}
	if d := TypeSlices([]Group{{Label: "STOCK", Value: EUR(1)}}, MF(-1, "EUR")); !d.NoData {
		t.Error("negative total should produce no-data")
	}
}

func TestTypeSliceColorsStable(t *testing.T) {
	// a type keeps its color regardless of its position in the groups
	first := TypeSlices([]Group{
		{Label: "STOCK", Value: EUR(10)},
		{Label: "CRYPTO", Value: EUR(10)},
	}, EUR(20))
	second := TypeSlices([]Group{
		{Label: "CRYPTO", Value: EUR(10)},
		{Label: "STOCK", Value: EUR(10)},
	}, EUR(20))

	colors := map[string]string{}
	for _, s := range first.Slices {
		colors[s.Label] = s.Color
	}
	for _, s := range second.Slices {
		if colors[s.Label] != s.Color {
			t.Errorf("color for %q changed with position: %q vs %q", s.Label, colors[s.Label], s.Color)
		}
	}

	unknown := TypeSlices([]Group{{Label: "NFT", Value: EUR(10)}}, EUR(10))
	if unknown.Slices[0].Color != typePalette[Other] {
		t.Errorf("unknown type color = %q, want the OTHER color", unknown.Slices[0].Color)
	}
}

func TestBankSliceColorsCycle(t *testing.T) {
	groups := make([]Group, len(bankPalette)+1)
	for i := range groups {
		groups[i] = Group{Label: string(rune('A' + i)), Value: EUR(1)}
	}
	d := BankSlices(groups, EUR(float64(len(groups))))
	if d.Slices[0].Color != d.Slices[len(bankPalette)].Color {
		t.Error("bank colors should cycle once the palette is exhausted")
	}
}
