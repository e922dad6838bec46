package order

import (
	"github.com/giovaniif/ordersystem/domain/money"
)

// Order is the immutable record of one fulfilled purchase. Price is the
// item's unit price captured at the time of sale, independent of any
// later change.
type Order struct {
	CustomerName string
	ItemName     string
	Price        money.Money
	Quantity     int
}

func New(customerName, itemName string, price money.Money, quantity int) Order {
	return Order{
		CustomerName: customerName,
		ItemName:     itemName,
		Price:        price,
		Quantity:     quantity,
	}
}
