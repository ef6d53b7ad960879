// Licensed under the MIT License. See LICENSE file in the project root for details.

package tests

import (
	"testing"

	"github.com/kianostad/keyeq"
	"github.com/kianostad/keyeq/internal/program"
)

// BenchmarkHarnessStandard measures end-to-end instruction cost through the
// standard comparison opcode.
func BenchmarkHarnessStandard(b *testing.B) {
	p := program.NewProcessor(nil)
	key := keyeq.NewUniqueKey()
	accounts := []program.AccountMeta{{Key: key}, {Key: key}}
	data := []byte{program.OpStandard}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Process(accounts, data); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHarnessOptimized measures end-to-end instruction cost through
// the optimized comparison opcode.
func BenchmarkHarnessOptimized(b *testing.B) {
	p := program.NewProcessor(nil)
	key := keyeq.NewUniqueKey()
	accounts := []program.AccountMeta{{Key: key}, {Key: key}}
	data := []byte{program.OpOptimized}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Process(accounts, data); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEqualParallel measures the comparison under concurrent callers.
func BenchmarkEqualParallel(b *testing.B) {
	a := keyeq.NewUniqueKey()
	same := a

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			keyeq.Equal(&a, &same)
		}
	})
}
