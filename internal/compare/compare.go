// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package compare implements fixed-size 32-byte equality with a
// per-architecture optimized path and a portable fallback.
//
// The optimized path is a hand-written assembly routine assembled only when
// the build target matches (amd64 or arm64, without the purego tag). On
// every other target the portable structural comparison is compiled instead.
// Path selection happens entirely at build time through file-level build
// constraints; callers see one Equal32 function on every target.
//
// # Behavioral Contract
//
// For any pair of 32-byte operands, every path returns the same boolean.
// The assembly routines partition each operand into four 8-byte words in
// address order and exit on the first mismatching pair; on amd64 hosts with
// AVX2 a single 32-byte vector compare is used instead. No path writes to
// either operand or allocates.
//
// # Safety
//
// The routines perform no validation. Both operands must reference 32
// readable bytes for the duration of the call; the fixed *[32]byte pointer
// type makes that the only way to reach them from safe Go.
package compare

// Size is the exact operand length in bytes handled by this package.
const Size = 32

// Words is the number of 8-byte words in one operand.
const Words = Size / 8

// Equal32Portable reports whether two 32-byte regions are identical using
// structural array comparison. It is the reference implementation every
// optimized path must agree with, and it is always compiled regardless of
// target.
func Equal32Portable(a, b *[Size]byte) bool {
	return *a == *b
}
