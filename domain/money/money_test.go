package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	m, err := Parse("$12.34", USD)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if m.Format() != "$12.34" {
		t.Errorf("expected $12.34, got %s", m.Format())
	}

	m, err = Parse("1234.56", USD)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if m.Format() != "$1,234.56" {
		t.Errorf("expected $1,234.56, got %s", m.Format())
	}

	m, err = Parse("$1,234.56", USD)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !m.Amount().Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("expected amount 1234.56, got %s", m.Amount())
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("abc", USD)
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestFormatThousands(t *testing.T) {
	m := New(decimal.RequireFromString("1234567.5"), USD)
	if m.Format() != "$1,234,567.50" {
		t.Errorf("expected $1,234,567.50, got %s", m.Format())
	}
	m = New(decimal.RequireFromString("999.99"), USD)
	if m.Format() != "$999.99" {
		t.Errorf("expected $999.99, got %s", m.Format())
	}
}

func TestAddAndMul(t *testing.T) {
	price, _ := Parse("$2.50", USD)
	total := price.Mul(3).Add(price.Mul(2))
	if total.Format() != "$12.50" {
		t.Errorf("expected $12.50, got %s", total.Format())
	}
}

func TestDivRoundsHalfToEven(t *testing.T) {
	cases := []struct {
		amount string
		count  int64
		want   string
	}{
		{"17.50", 2, "$8.75"},
		{"0.05", 2, "$0.02"},
		{"0.15", 2, "$0.08"},
	}
	for _, c := range cases {
		m := New(decimal.RequireFromString(c.amount), USD)
		if got := m.Div(c.count).Format(); got != c.want {
			t.Errorf("%s / %d: expected %s, got %s", c.amount, c.count, c.want, got)
		}
	}
}

func TestEqual(t *testing.T) {
	a, _ := Parse("$5.00", USD)
	b, _ := Parse("5", USD)
	if !a.Equal(b) {
		t.Errorf("expected %s to equal %s", a, b)
	}
	c, _ := Parse("5", GBP)
	if a.Equal(c) {
		t.Errorf("expected currency mismatch to compare unequal")
	}
}
