// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main provides an interactive REPL (Read-Eval-Print Loop) for key
// comparison.
//
// This command-line tool allows users to interactively compare base58 keys,
// generate test keys, and inspect the metrics collected along the way. It's
// useful for development, testing, and learning the comparison API.
//
// # Features
//
//   - Interactive command-line interface
//   - Key comparison through both instruction opcodes
//   - Base58 key parsing and generation
//   - Metrics snapshot on demand
//   - Graceful shutdown handling
//
// # Usage
//
// Start the REPL:
//
//	go run cmd/repl/main.go
//
// Available commands:
//
//	eq <key1> <key2>    - Compare two base58 keys on both paths
//	gen [n]             - Generate n unique keys (default 1)
//	parse <key>         - Parse and re-render a base58 key
//	stats               - Print the metrics snapshot as JSON
//	quit, exit          - Exit the REPL
//
// Example session:
//
//	> gen 2
//	Key: 4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi
//	Key: 8qbHbw2BbbTHBW1sbeqakYXVKRQM8Ne7pLK7m6CVfeR
//	> eq 4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi 4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi
//	standard: match, optimized: match
//	> quit
//	Goodbye!
//
// # Dangers and Warnings
//
//   - **Input Validation**: Limited input validation - malformed input shows an error.
//   - **Concurrent Access**: The REPL is single-threaded and not designed for concurrent access.
//
// # See Also
//
// For per-path cost measurement, see the bench tool.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/kianostad/keyeq"
	"github.com/kianostad/keyeq/internal/monitoring/metrics"
	"github.com/kianostad/keyeq/internal/program"
)

type REPL struct {
	metrics   *metrics.Metrics
	processor *program.Processor
}

func NewREPL(m *metrics.Metrics) *REPL {
	return &REPL{
		metrics:   m,
		processor: program.NewProcessor(m),
	}
}

func (r *REPL) Run() {
	fmt.Println("Key Comparison REPL")
	fmt.Println("Commands: eq <key1> <key2>, gen [n], parse <key>, stats, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "eq":
			if len(args) != 2 {
				fmt.Println("Usage: eq <key1> <key2>")
				continue
			}
			r.compare(args[0], args[1])

		case "gen":
			n := 1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					fmt.Println("Usage: gen [n]")
					continue
				}
				n = parsed
			}
			for i := 0; i < n; i++ {
				fmt.Printf("Key: %s\n", keyeq.NewUniqueKey())
			}

		case "parse":
			if len(args) != 1 {
				fmt.Println("Usage: parse <key>")
				continue
			}
			key, err := keyeq.ParseKey(args[0])
			if err != nil {
				r.metrics.RecordError("parse")
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("Key: %s (bytes: %x)\n", key, key.Bytes())

		case "stats":
			fmt.Println(string(r.metrics.ExportJSON()))

		case "quit", "exit":
			fmt.Println("Goodbye!")
			return

		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}

func (r *REPL) compare(lhs, rhs string) {
	a, err := keyeq.ParseKey(lhs)
	if err != nil {
		r.metrics.RecordError("parse")
		fmt.Printf("Error: %v\n", err)
		return
	}
	b, err := keyeq.ParseKey(rhs)
	if err != nil {
		r.metrics.RecordError("parse")
		fmt.Printf("Error: %v\n", err)
		return
	}

	accounts := []program.AccountMeta{{Key: a}, {Key: b}}
	results := make([]string, 0, 2)
	for _, strategy := range []struct {
		name string
		op   byte
	}{
		{"standard", program.OpStandard},
		{"optimized", program.OpOptimized},
	} {
		if err := r.processor.Process(accounts, []byte{strategy.op}); err != nil {
			results = append(results, strategy.name+": mismatch")
		} else {
			results = append(results, strategy.name+": match")
		}
	}
	fmt.Println(strings.Join(results, ", "))
}

func main() {
	m := metrics.NewMetrics()
	defer m.Close()

	repl := NewREPL(m)

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived shutdown signal.")
		os.Exit(0)
	}()

	repl.Run()
}
