package order

import (
	"testing"

	"github.com/giovaniif/ordersystem/domain/money"
)

func TestNew(t *testing.T) {
	price, err := money.Parse("$2.50", money.USD)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	o := New("alice", "broom", price, 3)
	if o.CustomerName != "alice" || o.ItemName != "broom" || o.Quantity != 3 {
		t.Fatalf("unexpected order: %+v", o)
	}
	if !o.Price.Equal(price) {
		t.Errorf("expected price %s, got %s", price, o.Price)
	}
}
