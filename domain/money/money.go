package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// Currency carries the formatting and rounding context for a Money value.
// The process picks one currency at startup and passes it to every
// constructor; there is no package-level default.
type Currency struct {
	Code     string
	Symbol   string
	Decimals int32
}

var (
	USD = Currency{Code: "USD", Symbol: "$", Decimals: 2}
	EUR = Currency{Code: "EUR", Symbol: "€", Decimals: 2}
	GBP = Currency{Code: "GBP", Symbol: "£", Decimals: 2}
)

// CurrencyFor returns the currency for an ISO code, falling back to USD.
func CurrencyFor(code string) Currency {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "EUR":
		return EUR
	case "GBP":
		return GBP
	default:
		return USD
	}
}

// Money is an immutable exact-decimal amount tagged with a currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Parse builds a Money from a decimal string, tolerating the currency
// symbol prefix and thousands separators: "$1,234.56", "12.34", "5".
func Parse(s string, currency Currency) (Money, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, currency.Symbol)
	raw = strings.ReplaceAll(raw, ",", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money{amount: d, currency: currency}, nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }

// Add adds two Money values. Panics if currencies don't match.
func (m Money) Add(other Money) Money {
	m.assertSameCurrency(other)
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}
}

// Mul multiplies the amount by an integer quantity.
func (m Money) Mul(quantity int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(quantity)), currency: m.currency}
}

// Div divides the amount by a positive integer count, rounding
// half-to-even at the currency's minor-unit precision.
func (m Money) Div(count int64) Money {
	if count <= 0 {
		panic("money: division by non-positive count")
	}
	quotient := m.amount.Div(decimal.NewFromInt(count)).RoundBank(m.currency.Decimals)
	return Money{amount: quotient, currency: m.currency}
}

// Equal returns true iff amount and currency match exactly.
func (m Money) Equal(other Money) bool {
	return m.currency.Code == other.currency.Code && m.amount.Equal(other.amount)
}

// Format renders the amount with the currency symbol, thousands
// separators and fixed minor-unit digits, e.g. "$1,234.56".
func (m Money) Format() string {
	rounded := m.amount.RoundBank(m.currency.Decimals)
	negative := rounded.IsNegative()
	fixed := rounded.Abs().StringFixed(m.currency.Decimals)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	out := m.currency.Symbol + groupThousands(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	if negative {
		out = "-" + out
	}
	return out
}

func (m Money) String() string { return m.Format() }

func (m Money) assertSameCurrency(other Money) {
	if m.currency.Code != other.currency.Code {
		panic(fmt.Sprintf("money: currency mismatch: %s != %s", m.currency.Code, other.currency.Code))
	}
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
