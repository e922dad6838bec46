package process

import (
	"bytes"
	"errors"
	"testing"

	"github.com/giovaniif/ordersystem/domain/money"
	"github.com/giovaniif/ordersystem/domain/store"
)

type mockLedger struct {
	registerResult bool
	checkinResult  bool
	checkinErr     error
	orderResult    bool
	report         []string

	registerCalledWithName     string
	registerCalledWithPrice    money.Money
	registerCalledWithQuantity int
	checkinCalledWithName      string
	checkinCalledWithQuantity  int
	orderCalledWithCustomer    string
	orderCalledWithItem        string
	orderCalledWithQuantity    int
	calls                      int
}

func (m *mockLedger) Register(itemName string, price money.Money, quantity int) bool {
	m.calls++
	m.registerCalledWithName = itemName
	m.registerCalledWithPrice = price
	m.registerCalledWithQuantity = quantity
	return m.registerResult
}

func (m *mockLedger) Checkin(itemName string, quantity int) (bool, error) {
	m.calls++
	m.checkinCalledWithName = itemName
	m.checkinCalledWithQuantity = quantity
	return m.checkinResult, m.checkinErr
}

func (m *mockLedger) Order(customerName, itemName string, quantity int) bool {
	m.calls++
	m.orderCalledWithCustomer = customerName
	m.orderCalledWithItem = itemName
	m.orderCalledWithQuantity = quantity
	return m.orderResult
}

func (m *mockLedger) GenerateReport() []string {
	return m.report
}

func TestProcessRegister(t *testing.T) {
	ledger := &mockLedger{registerResult: true}
	p := NewProcessor(ledger, &bytes.Buffer{}, money.USD)

	if err := p.Process([]string{"register", "roller", "$12.34", "5"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ledger.registerCalledWithName != "roller" || ledger.registerCalledWithQuantity != 5 {
		t.Fatalf("unexpected register call: %s %d", ledger.registerCalledWithName, ledger.registerCalledWithQuantity)
	}
	want, _ := money.Parse("$12.34", money.USD)
	if !ledger.registerCalledWithPrice.Equal(want) {
		t.Errorf("expected price $12.34, got %s", ledger.registerCalledWithPrice)
	}
}

func TestProcessCheckin(t *testing.T) {
	ledger := &mockLedger{checkinResult: true}
	p := NewProcessor(ledger, &bytes.Buffer{}, money.USD)

	if err := p.Process([]string{"checkin", "roller", "7"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ledger.checkinCalledWithName != "roller" || ledger.checkinCalledWithQuantity != 7 {
		t.Fatalf("unexpected checkin call: %s %d", ledger.checkinCalledWithName, ledger.checkinCalledWithQuantity)
	}
}

func TestProcessCheckinPropagatesHardError(t *testing.T) {
	ledger := &mockLedger{checkinErr: store.NewItemNotFoundError("roller")}
	p := NewProcessor(ledger, &bytes.Buffer{}, money.USD)

	err := p.Process([]string{"checkin", "roller", "7"})
	if !store.IsItemNotFound(err) {
		t.Fatalf("expected ErrItemNotFound to propagate, got %v", err)
	}
}

func TestProcessOrder(t *testing.T) {
	ledger := &mockLedger{orderResult: true}
	p := NewProcessor(ledger, &bytes.Buffer{}, money.USD)

	if err := p.Process([]string{"order", "alice", "roller", "3"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ledger.orderCalledWithCustomer != "alice" || ledger.orderCalledWithItem != "roller" || ledger.orderCalledWithQuantity != 3 {
		t.Fatalf("unexpected order call: %s %s %d", ledger.orderCalledWithCustomer, ledger.orderCalledWithItem, ledger.orderCalledWithQuantity)
	}
}

func TestProcessUnrecognizedCommand(t *testing.T) {
	ledger := &mockLedger{}
	diagnostics := &bytes.Buffer{}
	p := NewProcessor(ledger, diagnostics, money.USD)

	if err := p.Process([]string{"unknown", "alice", "$12.34"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ledger.calls != 0 {
		t.Fatalf("expected no ledger call, got %d", ledger.calls)
	}
	if diagnostics.String() != "Warning: Skipping unrecognized commmand: unknown.\n" {
		t.Errorf("unexpected warning: %q", diagnostics.String())
	}
}

func TestProcessMalformedFields(t *testing.T) {
	ledger := &mockLedger{}
	p := NewProcessor(ledger, &bytes.Buffer{}, money.USD)

	err := p.Process([]string{"register", "roller", "twelve", "5"})
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField for price, got %v", err)
	}
	err = p.Process([]string{"order", "alice", "roller", "three"})
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField for quantity, got %v", err)
	}
	if ledger.calls != 0 {
		t.Fatalf("expected no ledger call on parse errors, got %d", ledger.calls)
	}
}

func TestProcessMissingFields(t *testing.T) {
	ledger := &mockLedger{}
	p := NewProcessor(ledger, &bytes.Buffer{}, money.USD)

	err := p.Process([]string{"checkin", "roller"})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if ledger.calls != 0 {
		t.Fatalf("expected no ledger call, got %d", ledger.calls)
	}
}

func TestGenerateReportDelegates(t *testing.T) {
	ledger := &mockLedger{report: []string{"alice: n/a"}}
	p := NewProcessor(ledger, &bytes.Buffer{}, money.USD)

	report := p.GenerateReport()
	if len(report) != 1 || report[0] != "alice: n/a" {
		t.Fatalf("unexpected report: %v", report)
	}
}
