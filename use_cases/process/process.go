package process

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/giovaniif/ordersystem/domain/money"
	protocols "github.com/giovaniif/ordersystem/protocols"
)

var (
	ErrInvalidField  = errors.New("invalid field")
	ErrMissingFields = errors.New("missing fields")
)

func NewInvalidFieldError(field, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidField, field, value)
}

func NewMissingFieldsError(command string, want int) error {
	return fmt.Errorf("%w: %s expects %d fields", ErrMissingFields, command, want)
}

// Processor maps a tokenized command record onto a ledger call.
type Processor struct {
	ledger      protocols.Ledger
	diagnostics io.Writer
	currency    money.Currency
}

func NewProcessor(ledger protocols.Ledger, diagnostics io.Writer, currency money.Currency) *Processor {
	return &Processor{
		ledger:      ledger,
		diagnostics: diagnostics,
		currency:    currency,
	}
}

// Process dispatches one record. The first field is the command name.
// Malformed or missing numeric fields are hard errors; boolean
// rejections from the ledger are normal control flow and not surfaced.
// Unrecognized commands warn on the diagnostic writer and continue.
func (p *Processor) Process(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	command := fields[0]

	switch command {
	case "register":
		if len(fields) < 4 {
			return NewMissingFieldsError("register", 3)
		}
		price, err := money.Parse(fields[2], p.currency)
		if err != nil {
			return NewInvalidFieldError("price", fields[2])
		}
		quantity, err := strconv.Atoi(fields[3])
		if err != nil {
			return NewInvalidFieldError("quantity", fields[3])
		}
		p.ledger.Register(fields[1], price, quantity)
		return nil
	case "checkin":
		if len(fields) < 3 {
			return NewMissingFieldsError("checkin", 2)
		}
		quantity, err := strconv.Atoi(fields[2])
		if err != nil {
			return NewInvalidFieldError("quantity", fields[2])
		}
		_, err = p.ledger.Checkin(fields[1], quantity)
		return err
	case "order":
		if len(fields) < 4 {
			return NewMissingFieldsError("order", 3)
		}
		quantity, err := strconv.Atoi(fields[3])
		if err != nil {
			return NewInvalidFieldError("quantity", fields[3])
		}
		p.ledger.Order(fields[1], fields[2], quantity)
		return nil
	default:
		fmt.Fprintf(p.diagnostics, "Warning: Skipping unrecognized commmand: %s.\n", command)
		return nil
	}
}

// GenerateReport delegates to the ledger.
func (p *Processor) GenerateReport() []string {
	return p.ledger.GenerateReport()
}
