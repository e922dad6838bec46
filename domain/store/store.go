package store

import (
	"fmt"
	"sync"

	"github.com/giovaniif/ordersystem/domain/customer"
	"github.com/giovaniif/ordersystem/domain/item"
	"github.com/giovaniif/ordersystem/domain/money"
	"github.com/giovaniif/ordersystem/domain/order"
)

// Store owns all items and customers and is the sole mutator of both.
// A mutex serializes operations because the HTTP surface calls the
// store from concurrent handlers; stock check, deduction and history
// append happen under one lock acquisition.
type Store struct {
	mu            sync.Mutex
	items         map[string]*item.Item
	customers     map[string]*customer.Customer
	customerNames []string
}

func New() *Store {
	return &Store{
		items:     make(map[string]*item.Item),
		customers: make(map[string]*customer.Customer),
	}
}

// Register creates an item. Returns false without mutation when the
// name is already registered.
func (s *Store) Register(itemName string, price money.Money, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[itemName]; ok {
		return false
	}
	s.items[itemName] = item.New(itemName, price, quantity)
	return true
}

// Checkin adds stock to an existing item. Negative quantities are the
// soft rejection (false, nil); a missing item is the hard error.
func (s *Store) Checkin(itemName string, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 0 {
		return false, nil
	}
	it, ok := s.items[itemName]
	if !ok {
		return false, NewItemNotFoundError(itemName)
	}
	it.AddStock(quantity)
	return true, nil
}

// Order fulfills a purchase. The customer is looked up or created
// before any check, so even a failed order leaves a customer record
// behind. On success the order captures the item's current price, the
// history gains the order and the stock is deducted, all as one step.
func (s *Store) Order(customerName, itemName string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cust, ok := s.customers[customerName]
	if !ok {
		cust = customer.New(customerName)
		s.customers[customerName] = cust
		s.customerNames = append(s.customerNames, customerName)
	}

	it, ok := s.items[itemName]
	if !ok || !it.EnoughStock(quantity) {
		return false
	}

	cust.AddOrder(order.New(cust.Name, it.Name, it.Price, quantity))
	it.RemoveStock(quantity)
	return true
}

// GenerateReport returns one line per customer, in the order customers
// were first created.
func (s *Store) GenerateReport() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := make([]string, 0, len(s.customerNames))
	for _, name := range s.customerNames {
		cust := s.customers[name]
		if cust.NoOrders() {
			report = append(report, fmt.Sprintf("%s: n/a", cust.Name))
			continue
		}
		report = append(report, fmt.Sprintf("%s: %s | %s", cust.Name, cust.ItemsSpendReport(), cust.AverageSpendReport()))
	}
	return report
}
