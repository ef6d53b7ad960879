// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build amd64 && !purego

package compare

import "golang.org/x/sys/cpu"

// CPU feature flags for optimization
var hasAVX2 = cpu.X86.HasAVX2

// Equal32 selects the best available comparison method.
func Equal32(a, b *[Size]byte) bool {
	if hasAVX2 {
		return equal32AVX2(a, b)
	}
	return equal32Words(a, b)
}

// Path reports which comparison implementation Equal32 uses on this host.
func Path() string {
	if hasAVX2 {
		return "avx2"
	}
	return "words"
}

// equal32Words compares four 8-byte words in address order with early exit
// on the first mismatch. The implementation resides in equal32_amd64.s.
//
//go:noescape
func equal32Words(a, b *[Size]byte) bool

// equal32AVX2 compares both operands with a single 32-byte vector load.
// The implementation resides in equal32_amd64.s.
//
//go:noescape
func equal32AVX2(a, b *[Size]byte) bool
