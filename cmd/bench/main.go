// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main provides a per-path cost benchmark for key comparison.
//
// This command-line tool measures the cost difference between the optimized
// comparison path (hand-written assembly where the build target provides
// it) and the standard structural comparison, over fixed scenarios and a
// deterministic random corpus. It is the native analog of measuring
// per-instruction cost inside a metered runtime.
//
// # Benchmark Categories
//
// The benchmark suite includes:
//   - Fixed scenarios (equal keys, first-word mismatch, last-word mismatch, interior mismatch)
//   - Deterministic random corpus (sha256-derived key pairs)
//   - Instruction-harness throughput for both opcodes
//   - Metrics snapshot of everything recorded during the run
//
// # Usage
//
// Run all benchmarks:
//
//	go run cmd/bench/main.go
//
// Flags:
//
//	-iters N    iterations per scenario (default 5000000)
//	-corpus N   number of derived corpus pairs (default 4096)
//	-seed S     corpus derivation seed (default "keyeq-bench")
//
// # Interpreting Results
//
//   - **ns/op**: time per comparison (lower is better)
//   - **savings**: relative improvement of the optimized path over the standard path
//   - Results are system-dependent; compare runs on the same host only
//
// # Dangers and Warnings
//
//   - **Tight Loops**: High iteration counts keep one core busy for seconds.
//   - **Compiler Effects**: The loop bodies accumulate results to keep the
//     comparisons from being optimized away; do not simplify them.
//
// # See Also
//
// For interactive exploration, see the REPL tool.
package main

import (
	"flag"
	"fmt"
	"time"

	sha256 "github.com/minio/sha256-simd"

	"github.com/kianostad/keyeq"
	"github.com/kianostad/keyeq/internal/compare"
	"github.com/kianostad/keyeq/internal/monitoring/metrics"
	"github.com/kianostad/keyeq/internal/program"
)

var (
	iters      = flag.Int("iters", 5_000_000, "iterations per scenario")
	corpusSize = flag.Int("corpus", 4096, "number of derived corpus pairs")
	seed       = flag.String("seed", "keyeq-bench", "corpus derivation seed")
)

func main() {
	flag.Parse()

	fmt.Println("Key Comparison Benchmarks")
	fmt.Println("=========================")
	fmt.Printf("optimized path: %s\n", compare.Path())

	// Benchmark 1: Fixed scenarios
	benchmarkScenarios()

	// Benchmark 2: Deterministic random corpus
	benchmarkCorpus()

	// Benchmark 3: Instruction harness throughput
	benchmarkHarness()
}

// scenario is one fixed operand pair exercised by both paths.
type scenario struct {
	name string
	a, b keyeq.Key
}

func fixedScenarios() []scenario {
	equal := keyeq.MustFromBytes(repeat(1))
	firstWord := equal
	firstWord[0] = 2
	interior := equal
	interior[13] = 2
	lastWord := equal
	lastWord[31] = 2

	return []scenario{
		{"equal keys", equal, equal},
		{"first-word mismatch", equal, firstWord},
		{"interior mismatch", equal, interior},
		{"last-word mismatch", equal, lastWord},
	}
}

func repeat(v byte) []byte {
	out := make([]byte, keyeq.KeySize)
	for i := range out {
		out[i] = v
	}
	return out
}

func benchmarkScenarios() {
	fmt.Println("\n1. Fixed scenarios")

	for _, sc := range fixedScenarios() {
		a, b := sc.a, sc.b

		// Standard structural comparison
		var matches int
		start := time.Now()
		for i := 0; i < *iters; i++ {
			if compare.Equal32Portable((*[keyeq.KeySize]byte)(&a), (*[keyeq.KeySize]byte)(&b)) {
				matches++
			}
		}
		standard := time.Since(start)

		// Optimized comparison
		matches = 0
		start = time.Now()
		for i := 0; i < *iters; i++ {
			if keyeq.Equal(&a, &b) {
				matches++
			}
		}
		optimized := time.Since(start)

		stdNs := float64(standard.Nanoseconds()) / float64(*iters)
		optNs := float64(optimized.Nanoseconds()) / float64(*iters)
		savings := (stdNs - optNs) / stdNs * 100

		fmt.Printf("   %-21s standard %.2f ns/op, optimized %.2f ns/op (%.1f%% savings)\n",
			sc.name+":", stdNs, optNs, savings)
	}
}

// deriveCorpus produces a reproducible set of keys from the seed.
func deriveCorpus(seed string, n int) []keyeq.Key {
	keys := make([]keyeq.Key, n)
	for i := range keys {
		sum := sha256.Sum256([]byte(fmt.Sprintf("%s/%d", seed, i)))
		keys[i] = keyeq.Key(sum)
	}
	return keys
}

func benchmarkCorpus() {
	fmt.Println("\n2. Deterministic random corpus")

	keys := deriveCorpus(*seed, *corpusSize)
	pairsPerRound := len(keys) / 2
	rounds := *iters / pairsPerRound
	if rounds == 0 {
		rounds = 1
	}
	totalOps := rounds * pairsPerRound

	var matches int
	start := time.Now()
	for r := 0; r < rounds; r++ {
		for i := 0; i < pairsPerRound; i++ {
			if keyeq.Equal(&keys[i], &keys[len(keys)-1-i]) {
				matches++
			}
		}
	}
	duration := time.Since(start)
	fmt.Printf("   optimized: %d ops in %v (%.0f ops/sec, %d matches)\n",
		totalOps, duration, float64(totalOps)/duration.Seconds(), matches)

	matches = 0
	start = time.Now()
	for r := 0; r < rounds; r++ {
		for i := 0; i < pairsPerRound; i++ {
			if compare.Equal32Portable((*[keyeq.KeySize]byte)(&keys[i]), (*[keyeq.KeySize]byte)(&keys[len(keys)-1-i])) {
				matches++
			}
		}
	}
	duration = time.Since(start)
	fmt.Printf("   standard:  %d ops in %v (%.0f ops/sec, %d matches)\n",
		totalOps, duration, float64(totalOps)/duration.Seconds(), matches)
}

func benchmarkHarness() {
	fmt.Println("\n3. Instruction harness")

	m := metrics.NewMetrics()
	defer m.Close()
	p := program.NewProcessor(m)

	key := keyeq.NewUniqueKey()
	accounts := []program.AccountMeta{{Key: key}, {Key: key}}

	const harnessOps = 100_000
	for _, opcode := range []struct {
		name string
		op   byte
	}{
		{"standard", program.OpStandard},
		{"optimized", program.OpOptimized},
	} {
		start := time.Now()
		for i := 0; i < harnessOps; i++ {
			if err := p.Process(accounts, []byte{opcode.op}); err != nil {
				fmt.Printf("   %s: instruction failed: %v\n", opcode.name, err)
				return
			}
		}
		duration := time.Since(start)
		fmt.Printf("   %-10s %d instructions in %v (%.0f ops/sec)\n",
			opcode.name+":", harnessOps, duration, float64(harnessOps)/duration.Seconds())
	}

	// Let the collector drain before snapshotting
	time.Sleep(100 * time.Millisecond)

	stats := m.GetStats()
	fmt.Println("\n   Metrics snapshot:")
	fmt.Printf("   comparisons: standard=%d optimized=%d\n",
		stats.Comparisons.Standard, stats.Comparisons.Optimized)
	fmt.Printf("   outcomes:    match=%d mismatch=%d\n",
		stats.Outcomes.Match, stats.Outcomes.Mismatch)
	fmt.Printf("   latency:     standard mean=%v optimized mean=%v\n",
		stats.Latency.Standard.Mean, stats.Latency.Optimized.Mean)
}
