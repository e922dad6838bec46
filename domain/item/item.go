package item

import (
	"github.com/giovaniif/ordersystem/domain/money"
)

// Item is an inventory record. Price is fixed at registration; Quantity
// is mutated by stock check-ins and order fulfillment and never goes
// negative.
type Item struct {
	Name     string
	Price    money.Money
	Quantity int
}

func New(name string, price money.Money, quantity int) *Item {
	return &Item{Name: name, Price: price, Quantity: quantity}
}

// AddStock increases the quantity on hand. Negative amounts are
// rejected without mutation.
func (i *Item) AddStock(quantity int) bool {
	if quantity < 0 {
		return false
	}
	i.Quantity += quantity
	return true
}

// EnoughStock reports whether an order for the given quantity can be
// satisfied. Zero-quantity requests are never satisfiable.
func (i *Item) EnoughStock(quantity int) bool {
	if quantity <= 0 {
		return false
	}
	return quantity <= i.Quantity
}

// RemoveStock decreases the quantity on hand. Negative amounts and
// amounts above current stock are rejected without mutation.
func (i *Item) RemoveStock(quantity int) bool {
	if quantity < 0 || quantity > i.Quantity {
		return false
	}
	i.Quantity -= quantity
	return true
}
