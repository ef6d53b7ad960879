// Licensed under the MIT License. See LICENSE file in the project root for details.

package metrics

import (
	"testing"
	"time"
)

// BenchmarkBufferedMetrics benchmarks the buffered channel-based metrics
func BenchmarkBufferedMetrics(b *testing.B) {
	m := NewBufferedMetrics(10000)
	defer m.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.RecordOptimized(50*time.Nanosecond, true)
			m.RecordStandard(100*time.Nanosecond, true)
		}
	})
}

// BenchmarkBufferedMetricsHighContention benchmarks buffered metrics under high contention
func BenchmarkBufferedMetricsHighContention(b *testing.B) {
	m := NewBufferedMetrics(10000)
	defer m.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := 0; i < 10; i++ {
				m.RecordOptimized(50*time.Nanosecond, true)
				m.RecordStandard(100*time.Nanosecond, false)
				m.RecordError("process")
			}
		}
	})
}

// BenchmarkGetStats benchmarks snapshot generation while recording
func BenchmarkGetStats(b *testing.B) {
	m := NewMetrics()
	defer m.Close()

	for i := 0; i < 1000; i++ {
		m.RecordOptimized(time.Duration(i)*time.Nanosecond, true)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.GetStats()
	}
}
