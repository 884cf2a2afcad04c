package moneta

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an exact monetary value tagged with a currency code.
//
// The zero value is the zero amount with no currency. A Money with an
// empty currency is "weak": it takes the other operand's currency in
// binary operations.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M creates a Money from a decimal value and a currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// MF creates a Money from a float, for literals in tests and examples.
func MF(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// ParseMoney parses a user-entered amount in the given currency.
// It accepts both dot and comma decimal separators.
func ParseMoney(s, currency string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return Money{}, fmt.Errorf("empty amount")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: v, cur: currency}, nil
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal { return m.value }

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// cur merges the currencies of two operands, treating "" as weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// Convert returns the value multiplied by rate, re-tagged with the target
// currency. Display-only: converted values never feed a mutation.
func (m Money) Convert(rate decimal.Decimal, target string) Money {
	return Money{value: m.value.Mul(rate), cur: target}
}

// String formats the amount with the currency's own fraction and glyph,
// e.g. "€1,234.50". Unknown currencies fall back to "<amount> <code>".
func (m Money) String() string {
	c := money.GetCurrency(m.cur)
	if c == nil {
		return m.value.StringFixed(2) + " " + m.cur
	}
	shifted := m.value.Shift(int32(c.Fraction)).Round(0)
	return money.New(shifted.IntPart(), m.cur).Display()
}

// Fixed returns the plain fixed-point representation without a glyph,
// using the currency's fraction (2 for unknown currencies).
func (m Money) Fixed() string {
	digits := int32(2)
	if c := money.GetCurrency(m.cur); c != nil {
		digits = int32(c.Fraction)
	}
	return m.value.StringFixed(digits)
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
