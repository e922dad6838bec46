package customer

import (
	"fmt"
	"strings"

	"github.com/giovaniif/ordersystem/domain/money"
	"github.com/giovaniif/ordersystem/domain/order"
)

// ItemSpend is the total spent on one item across all of a customer's
// orders for it.
type ItemSpend struct {
	ItemName string
	Total    money.Money
}

// Customer holds the order history for one customer, grouped by item
// name. Item names keep their first-insertion order; orders within a
// group keep arrival order.
type Customer struct {
	Name      string
	history   map[string][]order.Order
	itemNames []string
}

func New(name string) *Customer {
	return &Customer{
		Name:    name,
		history: make(map[string][]order.Order),
	}
}

func (c *Customer) AddOrder(o order.Order) {
	if _, ok := c.history[o.ItemName]; !ok {
		c.itemNames = append(c.itemNames, o.ItemName)
	}
	c.history[o.ItemName] = append(c.history[o.ItemName], o)
}

func (c *Customer) NoOrders() bool {
	return len(c.history) == 0
}

// Orders returns the recorded orders for an item, in arrival order.
func (c *Customer) Orders(itemName string) []order.Order {
	return c.history[itemName]
}

// ItemsSpend returns one pair per ordered item, in first-insertion
// order, with the sum of price×quantity over that item's orders.
func (c *Customer) ItemsSpend() []ItemSpend {
	spend := make([]ItemSpend, 0, len(c.itemNames))
	for _, name := range c.itemNames {
		orders := c.history[name]
		total := orders[0].Price.Mul(int64(orders[0].Quantity))
		for _, o := range orders[1:] {
			total = total.Add(o.Price.Mul(int64(o.Quantity)))
		}
		spend = append(spend, ItemSpend{ItemName: name, Total: total})
	}
	return spend
}

// ItemsSpendReport renders "item - $total" pairs joined by ", ".
// Empty string when the customer has no orders.
func (c *Customer) ItemsSpendReport() string {
	spend := c.ItemsSpend()
	parts := make([]string, 0, len(spend))
	for _, s := range spend {
		parts = append(parts, fmt.Sprintf("%s - %s", s.ItemName, s.Total.Format()))
	}
	return strings.Join(parts, ", ")
}

// AverageSpend is the sum of per-item totals divided by the count of
// distinct items ordered, not the count of orders. The second return
// is false when the customer has no orders.
func (c *Customer) AverageSpend() (money.Money, bool) {
	spend := c.ItemsSpend()
	if len(spend) == 0 {
		return money.Money{}, false
	}
	total := spend[0].Total
	for _, s := range spend[1:] {
		total = total.Add(s.Total)
	}
	return total.Div(int64(len(spend))), true
}

// AverageSpendReport renders "Average Order Value: $x". Only valid when
// AverageSpend reports a value.
func (c *Customer) AverageSpendReport() string {
	avg, _ := c.AverageSpend()
	return "Average Order Value: " + avg.Format()
}
