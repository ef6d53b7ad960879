// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build arm64 && !purego

package compare

// Equal32 delegates to the hand-written word comparison routine.
func Equal32(a, b *[Size]byte) bool {
	return equal32Words(a, b)
}

// Path reports which comparison implementation Equal32 uses on this host.
func Path() string {
	return "words"
}

// equal32Words compares four 8-byte words in address order with early exit
// on the first mismatch. The implementation resides in equal32_arm64.s.
//
//go:noescape
func equal32Words(a, b *[Size]byte) bool
