package protocols

import (
	"github.com/giovaniif/ordersystem/domain/money"
)

type Ledger interface {
	Register(itemName string, price money.Money, quantity int) bool
	Checkin(itemName string, quantity int) (bool, error)
	Order(customerName string, itemName string, quantity int) bool
	GenerateReport() []string
}
