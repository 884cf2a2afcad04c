package moneta

import "testing"

func TestParseAssetType(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    AssetType
		wantErr bool
	}{
		{name: "exact", input: "LIQUIDITY", want: Liquidity},
		{name: "lowercase", input: "crypto", want: Crypto},
		{name: "padded", input: " bond ", want: Bond},
		{name: "real estate", input: "real_estate", want: RealEstate},
		{name: "unknown", input: "NFT", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAssetType(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseAssetType(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAssetType(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseAssetType(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestAssetTypesAllValid(t *testing.T) {
	for _, at := range AssetTypes() {
		if !at.IsValid() {
			t.Errorf("AssetTypes() contains invalid %q", at)
		}
	}
}

func TestAssetConvertedInto(t *testing.T) {
	usd := Asset{ID: "a1", Currency: "USD", Amount: USD(100), ExchangeRate: dec("0.92")}

	converted, ok := usd.ConvertedInto("EUR")
	if !ok {
		t.Fatal("expected a converted amount for a foreign asset with a rate")
	}
	if got := converted.Fixed(); got != "92.00" {
		t.Errorf("converted = %q, want 92.00", got)
	}

	// same currency: nothing to convert
	if _, ok := usd.ConvertedInto("USD"); ok {
		t.Error("no conversion expected into the asset's own currency")
	}

	// no rate: nothing to convert either
	bare := Asset{ID: "a2", Currency: "USD", Amount: USD(100)}
	if _, ok := bare.ConvertedInto("EUR"); ok {
		t.Error("no conversion expected without a rate")
	}
}
