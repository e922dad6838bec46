package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/giovaniif/ordersystem/config"
	"github.com/giovaniif/ordersystem/domain/money"
	"github.com/giovaniif/ordersystem/domain/store"
	"github.com/giovaniif/ordersystem/use_cases/process"
)

func main() {
	cfg := config.Load()
	currency := money.CurrencyFor(cfg.CurrencyCode)
	ledger := store.New()
	processor := process.NewProcessor(ledger, os.Stderr, currency)

	stat, err := os.Stdin.Stat()
	piped := err == nil && (stat.Mode()&os.ModeCharDevice) == 0

	switch {
	case piped:
		runPiped(processor, os.Stdin)
	case len(os.Args) >= 2:
		runCSV(processor, os.Args[1])
	default:
		printUsage()
	}

	for _, line := range processor.GenerateReport() {
		fmt.Println(line)
	}
}

func runPiped(processor *process.Processor, in io.Reader) {
	scanner := bufio.NewScanner(in)
	sawInput := false
	for scanner.Scan() {
		sawInput = true
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := processor.Process(strings.Fields(line)); err != nil {
			abort(err.Error())
		}
	}
	if err := scanner.Err(); err != nil {
		abort(err.Error())
	}
	if !sawInput {
		abort("Error: No piped input detected (STDIN was empty).")
	}
}

func runCSV(processor *process.Processor, filename string) {
	info, err := os.Stat(filename)
	if err != nil {
		abort(fmt.Sprintf("Error: File '%s' not found.", filename))
	}
	if info.Size() == 0 {
		abort("Error: Csv file is empty.")
	}

	f, err := os.Open(filename)
	if err != nil {
		abort(err.Error())
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			abort(err.Error())
		}

		fields := make([]string, 0, len(record))
		allEmpty := true
		for _, field := range record {
			v := strings.TrimSpace(field)
			fields = append(fields, v)
			if v != "" {
				allEmpty = false
			}
		}
		if allEmpty {
			continue
		}
		if err := processor.Process(fields); err != nil {
			abort(err.Error())
		}
	}
}

func printUsage() {
	fmt.Println("Please pipe the commands into this program.")
	fmt.Println("Example: 'cat ./testdata/good_input.txt | program'")
	fmt.Println("Or pass the data in as a CSV.")
	fmt.Println("Example: 'program ./testdata/good_input.csv'")
}

func abort(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
