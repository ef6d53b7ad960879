// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keyeq provides ultra-fast equality comparison for opaque 32-byte
// account keys.
//
// The single operation is Equal: decide whether two fixed-size 32-byte keys
// are bit-identical. The comparison itself is trivial; the value of this
// package is the dual-path dispatch behind it. On build targets with a
// hand-written assembly routine (amd64, arm64) the operands are handed to
// that routine as pointers to four 8-byte words; on every other target, and
// under the purego build tag, a portable structural comparison is compiled
// instead. Both paths return the same boolean for the same inputs on every
// target.
//
// # Key Features
//
//   - One generic entry point over any ~[32]byte key representation
//   - Build-time path selection with no runtime branching visible to callers
//   - Early-exit word-wise assembly, plus an AVX2 variant on capable amd64 hosts
//   - Zero allocation, zero mutation, no error path
//   - Base58 text format for keys (parsing, rendering)
//
// # Usage Examples
//
// Comparing keys:
//
//	a := keyeq.MustParseKey("11111111111111111111111111111112")
//	b := keyeq.NewUniqueKey()
//
//	if keyeq.Equal(&a, &b) {
//	    // keys are identical
//	}
//
// Any fixed 32-byte type works through the same entry point:
//
//	type AccountID [32]byte
//
//	var x, y AccountID
//	keyeq.Equal(&x, &y) // true
//
// # Dangers and Warnings
//
//   - **Not constant-time**: the optimized path exits on the first
//     mismatching word. Never use this package to compare secrets.
//   - **No cryptography**: a Key is an opaque byte value. Parsing and
//     comparison imply nothing about signatures or key validity.
//   - **Nil operands**: Equal dereferences both pointers. Passing nil is a
//     caller bug, not a handled condition.
//
// # Thread Safety
//
// Comparisons share no state and are safe from any number of goroutines.
//
// # See Also
//
// For per-path cost measurement, see cmd/bench. For an instruction-style
// demonstration harness, see internal/program.
package keyeq

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/mr-tron/base58"

	"github.com/kianostad/keyeq/internal/compare"
)

// KeySize is the exact length in bytes of every key handled by this package.
const KeySize = compare.Size

// Bytes32 constrains the comparison entry point to types whose byte view is
// exactly 32 bytes. The constraint is the compile-time length assertion:
// a type that is not 32 bytes cannot instantiate Equal, so the optimized
// path never sees a short or oversized operand.
type Bytes32 interface {
	~[KeySize]byte
}

// Equal reports whether two 32-byte values are bit-identical.
//
// On targets with an assembly routine the operands are reinterpreted as
// pointers to their first byte and compared as four 8-byte words with early
// exit; elsewhere the type's structural equality is used. The two paths
// agree on every input. Equal never allocates, never mutates an operand,
// and cannot fail.
//
// The casts below are the single audited reinterpretation in this module:
// the Bytes32 constraint guarantees *T and *[32]byte are layout-identical.
func Equal[T Bytes32](a, b *T) bool {
	return compare.Equal32((*[KeySize]byte)(unsafe.Pointer(a)), (*[KeySize]byte)(unsafe.Pointer(b)))
}

// Key is an opaque 32-byte account key. Its only defined operation is
// equality; no internal structure is imposed.
type Key [KeySize]byte

// ErrInvalidKeyLength is returned when raw key material is not exactly 32
// bytes.
var ErrInvalidKeyLength = errors.New("keyeq: key must be exactly 32 bytes")

// FromBytes constructs a Key from raw bytes, enforcing the exact-length
// invariant that the comparison paths rely on.
func FromBytes(b []byte) (Key, error) {
	if len(b) != KeySize {
		return Key{}, fmt.Errorf("%w, got %d", ErrInvalidKeyLength, len(b))
	}
	var k Key
	copy(k[:], b)
	return k, nil
}

// MustFromBytes is like FromBytes but panics on invalid input. Intended for
// fixtures and package-level variables.
func MustFromBytes(b []byte) Key {
	k, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return k
}

// ParseKey decodes a base58-encoded key string.
func ParseKey(s string) (Key, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Key{}, fmt.Errorf("keyeq: invalid base58 key %q: %w", s, err)
	}
	return FromBytes(raw)
}

// MustParseKey is like ParseKey but panics on invalid input.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Bytes returns the key's 32-byte view.
func (k Key) Bytes() []byte {
	return k[:]
}

// String renders the key in base58.
func (k Key) String() string {
	return base58.Encode(k[:])
}

// Equal reports whether k and other are bit-identical.
func (k *Key) Equal(other *Key) bool {
	return Equal(k, other)
}

// IsZero reports whether every byte of the key is zero.
func (k *Key) IsZero() bool {
	var zero Key
	return Equal(k, &zero)
}

var uniqueKeyCounter atomic.Uint64

// NewUniqueKey returns a key guaranteed to differ from every other key
// produced by this process. Keys are derived from a process-local counter,
// not from randomness; they are intended for tests and benchmarks.
func NewUniqueKey() Key {
	var k Key
	binary.BigEndian.PutUint64(k[:8], uniqueKeyCounter.Add(1))
	return k
}
