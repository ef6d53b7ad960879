// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package metrics provides performance monitoring and observability for key
// comparison workloads.
//
// This package implements thread-safe metrics collection using buffered
// channels and ring buffers that tracks per-path comparison counts,
// latencies, match/mismatch outcomes, and error rates. It exists to make
// the cost difference between the optimized and portable comparison paths
// observable without perturbing the comparisons themselves.
//
// # Key Features
//
//   - Thread-safe metrics collection using buffered channels and background processing
//   - Per-path comparison counts (standard, optimized)
//   - Latency measurement with ring buffer storage for historical data
//   - Match and mismatch outcome tracking
//   - Error rate tracking for parse and process failures
//   - Bounded memory usage with ring buffers
//
// # Usage Examples
//
// Creating and using metrics:
//
//	// Create a new metrics instance
//	m := metrics.NewMetrics()
//
//	// Record a comparison
//	start := time.Now()
//	equal := keyeq.Equal(&a, &b)
//	m.RecordOptimized(time.Since(start), equal)
//
//	// Record errors
//	if err != nil {
//	    m.RecordError("parse")
//	}
//
//	// Get metrics for monitoring
//	stats := m.GetStats()
//	fmt.Printf("Optimized comparisons: %d, Mean latency: %v\n",
//	    stats.Comparisons.Optimized, stats.Latency.Optimized.Mean)
//
//	// Clean up when done
//	m.Close()
//
// # Dangers and Warnings
//
//   - **Background Goroutine**: Requires proper cleanup with Close() method
//   - **Event Loss**: If the buffer is full, events are dropped (non-blocking behavior)
//   - **Stats Latency**: Stats may be slightly delayed due to background processing
//   - **Memory Overhead**: Ring buffers consume fixed memory regardless of usage
//
// # Best Practices
//
//   - Always call Close() when done with metrics to clean up background goroutines
//   - Use appropriate ring buffer sizes for your latency tracking needs
//   - Keep the collector out of hot comparison loops you intend to measure precisely
//
// # Thread Safety
//
// All metrics operations are thread-safe and can be called concurrently
// from multiple goroutines. Background processing ensures consistency
// without blocking.
package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// LatencyStats provides comprehensive latency statistics
type LatencyStats struct {
	Count uint64        `json:"count"`
	Min   time.Duration `json:"min"`
	Max   time.Duration `json:"max"`
	Mean  time.Duration `json:"mean"`
	P50   time.Duration `json:"p50"`
	P95   time.Duration `json:"p95"`
	P99   time.Duration `json:"p99"`
	P999  time.Duration `json:"p999"`
}

// ComparisonCounts tracks counts for both comparison paths
type ComparisonCounts struct {
	Standard  uint64 `json:"standard"`
	Optimized uint64 `json:"optimized"`
}

// OutcomeCounts tracks match/mismatch results across all comparisons
type OutcomeCounts struct {
	Match    uint64 `json:"match"`
	Mismatch uint64 `json:"mismatch"`
}

// ErrorCounts tracks error counts per failure kind
type ErrorCounts struct {
	Parse   uint64 `json:"parse"`
	Process uint64 `json:"process"`
}

// LatencyMetrics tracks latency data for both comparison paths
type LatencyMetrics struct {
	Standard  LatencyStats `json:"standard"`
	Optimized LatencyStats `json:"optimized"`
}

// Snapshot provides a complete snapshot of all metrics
type Snapshot struct {
	Comparisons   ComparisonCounts `json:"comparisons"`
	Outcomes      OutcomeCounts    `json:"outcomes"`
	Errors        ErrorCounts      `json:"errors"`
	Latency       LatencyMetrics   `json:"latency"`
	Configuration Config           `json:"config"`
}

// Event represents a single metric event
type Event struct {
	Type      string
	Duration  time.Duration
	Matched   bool
	Timestamp time.Time
}

// DurationRingBuffer implements a thread-safe bounded ring buffer for time.Duration
type DurationRingBuffer struct {
	buffer []time.Duration
	head   int
	tail   int
	size   int
	count  int
	mu     sync.RWMutex
}

// NewDurationRingBuffer creates a new ring buffer with specified capacity
func NewDurationRingBuffer(capacity int) *DurationRingBuffer {
	return &DurationRingBuffer{
		buffer: make([]time.Duration, capacity),
		size:   capacity,
	}
}

// Push adds an item to the ring buffer
func (rb *DurationRingBuffer) Push(item time.Duration) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.buffer[rb.tail] = item
	rb.tail = (rb.tail + 1) % rb.size

	if rb.count < rb.size {
		rb.count++
	} else {
		rb.head = (rb.head + 1) % rb.size
	}
}

// GetAverage calculates the average of time.Duration values in the buffer
func (rb *DurationRingBuffer) GetAverage() time.Duration {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if rb.count == 0 {
		return 0
	}

	var total time.Duration
	for i := 0; i < rb.count; i++ {
		idx := (rb.head + i) % rb.size
		total += rb.buffer[idx]
	}

	return total / time.Duration(rb.count)
}

// GetStats calculates comprehensive latency statistics
func (rb *DurationRingBuffer) GetStats() LatencyStats {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if rb.count == 0 {
		return LatencyStats{}
	}

	// Copy values to avoid holding lock during sort
	values := make([]time.Duration, rb.count)
	for i := 0; i < rb.count; i++ {
		idx := (rb.head + i) % rb.size
		values[i] = rb.buffer[idx]
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i] < values[j]
	})

	stats := LatencyStats{
		Count: uint64(rb.count),
		Min:   values[0],
		Max:   values[rb.count-1],
	}

	var total time.Duration
	for _, v := range values {
		total += v
	}
	stats.Mean = total / time.Duration(rb.count)

	stats.P50 = rb.percentile(values, 0.50)
	stats.P95 = rb.percentile(values, 0.95)
	stats.P99 = rb.percentile(values, 0.99)
	stats.P999 = rb.percentile(values, 0.999)

	return stats
}

// percentile calculates the nth percentile from sorted values
func (rb *DurationRingBuffer) percentile(values []time.Duration, p float64) time.Duration {
	if len(values) == 0 {
		return 0
	}

	index := int(float64(len(values)-1) * p)
	if index >= len(values) {
		index = len(values) - 1
	}
	return values[index]
}

// Config provides configuration options for metrics collection
type Config struct {
	BufferSize     int            // Size of event buffer
	LatencyBuffers map[string]int // Per-path ring buffer sizes
	SamplingRate   float64        // Sampling rate (0.0 to 1.0, 1.0 = record all)
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		BufferSize: 10000,
		LatencyBuffers: map[string]int{
			"standard":  1000,
			"optimized": 1000,
		},
		SamplingRate: 1.0,
	}
}

// Metrics tracks comparison metrics using buffered channels and ring buffers
type Metrics struct {
	config Config

	// Buffered channel for metric events
	eventChan chan Event

	// Background goroutine for processing events
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Internal counters (protected by mutex for batch updates)
	mu sync.RWMutex

	// Comparison counts per path
	StandardCount  uint64
	OptimizedCount uint64

	// Outcomes
	MatchCount    uint64
	MismatchCount uint64

	// Latency tracking (ring buffer for recent latencies)
	StandardLatency  *DurationRingBuffer
	OptimizedLatency *DurationRingBuffer

	// Error counts
	ParseErrors   uint64
	ProcessErrors uint64
}

// NewMetrics creates a new metrics instance with default configuration
func NewMetrics() *Metrics {
	return NewMetricsWithConfig(DefaultConfig())
}

// NewBufferedMetrics creates a new metrics instance with configurable buffer size
func NewBufferedMetrics(bufferSize int) *Metrics {
	config := DefaultConfig()
	config.BufferSize = bufferSize
	return NewMetricsWithConfig(config)
}

// NewMetricsWithConfig creates a new metrics instance with custom configuration
func NewMetricsWithConfig(config Config) *Metrics {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Metrics{
		config:           config,
		eventChan:        make(chan Event, config.BufferSize),
		ctx:              ctx,
		cancel:           cancel,
		StandardLatency:  NewDurationRingBuffer(config.LatencyBuffers["standard"]),
		OptimizedLatency: NewDurationRingBuffer(config.LatencyBuffers["optimized"]),
	}

	// Start background processor
	m.wg.Add(1)
	go m.processEvents()

	return m
}

// processEvents runs in background goroutine to process metric events
func (m *Metrics) processEvents() {
	defer m.wg.Done()

	for {
		select {
		case event := <-m.eventChan:
			m.processEvent(event)
		case <-m.ctx.Done():
			return
		}
	}
}

// processEvent handles a single metric event
func (m *Metrics) processEvent(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch event.Type {
	case "standard":
		m.StandardCount++
		m.StandardLatency.Push(event.Duration)
		m.recordOutcome(event.Matched)
	case "optimized":
		m.OptimizedCount++
		m.OptimizedLatency.Push(event.Duration)
		m.recordOutcome(event.Matched)
	case "error_parse":
		m.ParseErrors++
	case "error_process":
		m.ProcessErrors++
	}
}

// recordOutcome tallies a comparison result. Caller holds m.mu.
func (m *Metrics) recordOutcome(matched bool) {
	if matched {
		m.MatchCount++
	} else {
		m.MismatchCount++
	}
}

// RecordStandard records a comparison taken through the portable path
func (m *Metrics) RecordStandard(duration time.Duration, matched bool) {
	select {
	case m.eventChan <- Event{Type: "standard", Duration: duration, Matched: matched, Timestamp: time.Now()}:
	default:
		// Channel full, drop the event to avoid blocking
	}
}

// RecordOptimized records a comparison taken through the optimized path
func (m *Metrics) RecordOptimized(duration time.Duration, matched bool) {
	select {
	case m.eventChan <- Event{Type: "optimized", Duration: duration, Matched: matched, Timestamp: time.Now()}:
	default:
		// Channel full, drop the event to avoid blocking
	}
}

// RecordError records an error of the given kind ("parse" or "process")
func (m *Metrics) RecordError(kind string) {
	select {
	case m.eventChan <- Event{Type: "error_" + kind, Timestamp: time.Now()}:
	default:
		// Channel full, drop the event to avoid blocking
	}
}

// GetStats returns a snapshot of current metrics
func (m *Metrics) GetStats() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Comparisons: ComparisonCounts{
			Standard:  m.StandardCount,
			Optimized: m.OptimizedCount,
		},
		Outcomes: OutcomeCounts{
			Match:    m.MatchCount,
			Mismatch: m.MismatchCount,
		},
		Errors: ErrorCounts{
			Parse:   m.ParseErrors,
			Process: m.ProcessErrors,
		},
		Latency: LatencyMetrics{
			Standard:  m.StandardLatency.GetStats(),
			Optimized: m.OptimizedLatency.GetStats(),
		},
		Configuration: m.config,
	}
}

// ExportPrometheus exports metrics in Prometheus text format
func (m *Metrics) ExportPrometheus() string {
	stats := m.GetStats()
	var result string

	result += fmt.Sprintf("# HELP keyeq_comparisons_total Total number of comparisons per path\n")
	result += fmt.Sprintf("# TYPE keyeq_comparisons_total counter\n")
	result += fmt.Sprintf("keyeq_comparisons_total{path=\"standard\"} %d\n", stats.Comparisons.Standard)
	result += fmt.Sprintf("keyeq_comparisons_total{path=\"optimized\"} %d\n", stats.Comparisons.Optimized)

	result += fmt.Sprintf("# HELP keyeq_outcomes_total Total number of match/mismatch results\n")
	result += fmt.Sprintf("# TYPE keyeq_outcomes_total counter\n")
	result += fmt.Sprintf("keyeq_outcomes_total{result=\"match\"} %d\n", stats.Outcomes.Match)
	result += fmt.Sprintf("keyeq_outcomes_total{result=\"mismatch\"} %d\n", stats.Outcomes.Mismatch)

	result += fmt.Sprintf("# HELP keyeq_latency_nanoseconds Average comparison latency per path\n")
	result += fmt.Sprintf("# TYPE keyeq_latency_nanoseconds gauge\n")
	result += fmt.Sprintf("keyeq_latency_nanoseconds{path=\"standard\"} %d\n", stats.Latency.Standard.Mean.Nanoseconds())
	result += fmt.Sprintf("keyeq_latency_nanoseconds{path=\"optimized\"} %d\n", stats.Latency.Optimized.Mean.Nanoseconds())

	result += fmt.Sprintf("# HELP keyeq_errors_total Total number of errors per kind\n")
	result += fmt.Sprintf("# TYPE keyeq_errors_total counter\n")
	result += fmt.Sprintf("keyeq_errors_total{kind=\"parse\"} %d\n", stats.Errors.Parse)
	result += fmt.Sprintf("keyeq_errors_total{kind=\"process\"} %d\n", stats.Errors.Process)

	return result
}

// ExportJSON exports metrics as JSON
func (m *Metrics) ExportJSON() []byte {
	stats := m.GetStats()
	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return jsonData
}

// Close shuts down the metrics processor. The event channel is left open
// so a Record call racing Close drops its event instead of panicking; the
// channel is reclaimed once the collector is unreferenced.
func (m *Metrics) Close() {
	m.cancel()
	m.wg.Wait()
}
