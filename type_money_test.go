package moneta

import "testing"

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string // Fixed() representation, "" for error
		wantErr bool
	}{
		{name: "plain integer", input: "500", want: "500.00"},
		{name: "dot separator", input: "12.34", want: "12.34"},
		{name: "comma separator", input: "12,34", want: "12.34"},
		{name: "surrounding spaces", input: " 7.5 ", want: "7.50"},
		{name: "negative parses", input: "-10", want: "-10.00"},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "two separators", input: "1.2.3", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseMoney(tc.input, "EUR")
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMoney(%q) = %v, want error", tc.input, m)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) unexpected error: %v", tc.input, err)
			}
			if got := m.Fixed(); got != tc.want {
				t.Errorf("ParseMoney(%q).Fixed() = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestMoneyConvert(t *testing.T) {
	// 100 USD at a recorded rate of 0.92 displays as 92.00 EUR.
	converted := USD(100).Convert(dec("0.92"), "EUR")
	if got := converted.Fixed(); got != "92.00" {
		t.Errorf("Convert(100 USD, 0.92) = %q, want %q", got, "92.00")
	}
	if converted.Currency() != "EUR" {
		t.Errorf("Convert currency = %q, want EUR", converted.Currency())
	}
}

func TestMoneyArithmetic(t *testing.T) {
	sum := EUR(10).Add(EUR(2.5))
	if got := sum.Fixed(); got != "12.50" {
		t.Errorf("10 + 2.50 = %q, want 12.50", got)
	}
	if !EUR(500).GreaterThanOrEqual(EUR(500)) {
		t.Error("500 >= 500 should hold")
	}
	if EUR(500).GreaterThan(EUR(500)) {
		t.Error("500 > 500 should not hold")
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// the "" currency is weak: it takes the other operand's currency
	sum := MF(5, "").Add(EUR(1))
	if sum.Currency() != "EUR" {
		t.Errorf("weak add currency = %q, want EUR", sum.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("mismatched currencies should panic")
		}
	}()
	EUR(1).Add(USD(1))
}

func TestMoneySignedString(t *testing.T) {
	if got := EUR(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
}
