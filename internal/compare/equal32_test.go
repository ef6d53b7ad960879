// Licensed under the MIT License. See LICENSE file in the project root for details.

package compare

import (
	"testing"

	"pgregory.net/rapid"
)

func filled(v byte) [Size]byte {
	var out [Size]byte
	for i := range out {
		out[i] = v
	}
	return out
}

func TestEqual32Scenarios(t *testing.T) {
	ones := filled(1)
	twos := filled(2)

	tailNines := filled(1)
	for i := 24; i < Size; i++ {
		tailNines[i] = 9
	}

	tests := []struct {
		name string
		a, b [Size]byte
		want bool
	}{
		{"identical all-ones", filled(1), filled(1), true},
		{"all-ones vs all-twos", ones, twos, false},
		{"equal head, last word replaced", ones, tailNines, false},
		{"independently constructed zeros", [Size]byte{}, [Size]byte{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal32(&tt.a, &tt.b); got != tt.want {
				t.Errorf("Equal32() = %v, want %v", got, tt.want)
			}
			if got := Equal32Portable(&tt.a, &tt.b); got != tt.want {
				t.Errorf("Equal32Portable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual32Reflexive(t *testing.T) {
	a := filled(0xAB)
	if !Equal32(&a, &a) {
		t.Error("Equal32 should report a value equal to itself")
	}

	copyOfA := a
	if !Equal32(&a, &copyOfA) {
		t.Error("Equal32 should report an independently held copy as equal")
	}
}

// TestEqual32SingleByteSensitivity flips one byte at every index, covering
// the first byte, the last byte, and both sides of each word boundary.
func TestEqual32SingleByteSensitivity(t *testing.T) {
	base := filled(0x5C)
	for i := 0; i < Size; i++ {
		mutated := base
		mutated[i] ^= 0xFF
		if Equal32(&base, &mutated) {
			t.Errorf("Equal32 missed a difference at byte %d", i)
		}
		if Equal32Portable(&base, &mutated) {
			t.Errorf("Equal32Portable missed a difference at byte %d", i)
		}
	}
}

// TestEqual32WordBoundaries exercises each link of the short-circuit chain:
// a mismatch isolated to exactly one of the four 8-byte words.
func TestEqual32WordBoundaries(t *testing.T) {
	base := filled(0x11)
	for word := 0; word < Words; word++ {
		mutated := base
		mutated[word*8] = 0x99
		if Equal32(&base, &mutated) {
			t.Errorf("Equal32 missed a mismatch in word %d", word)
		}

		// Differing only in the final byte of the word.
		mutated = base
		mutated[word*8+7] = 0x99
		if Equal32(&base, &mutated) {
			t.Errorf("Equal32 missed a mismatch at the end of word %d", word)
		}
	}
}

func TestEqual32DoesNotMutate(t *testing.T) {
	a := filled(3)
	b := filled(7)
	aBefore := a
	bBefore := b

	Equal32(&a, &b)
	Equal32(&a, &a)
	Equal32Portable(&a, &b)

	if a != aBefore || b != bBefore {
		t.Error("comparison mutated an operand")
	}
}

// TestEqual32AgreesWithPortable is the equivalence property: on targets with
// an assembly routine this cross-checks it against the structural
// comparison; elsewhere both sides are the portable path and the property
// holds trivially.
func TestEqual32AgreesWithPortable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var a, b [Size]byte
		copy(a[:], rapid.SliceOfN(rapid.Byte(), Size, Size).Draw(t, "a"))

		if rapid.Bool().Draw(t, "mutate") {
			// Mostly-equal pair: copy a and flip a handful of bytes so the
			// equal branch is exercised as often as the unequal one.
			b = a
			for _, idx := range rapid.SliceOfN(rapid.IntRange(0, Size-1), 0, 4).Draw(t, "flips") {
				b[idx] ^= byte(rapid.IntRange(1, 255).Draw(t, "delta"))
			}
		} else {
			copy(b[:], rapid.SliceOfN(rapid.Byte(), Size, Size).Draw(t, "b"))
		}

		if got, want := Equal32(&a, &b), Equal32Portable(&a, &b); got != want {
			t.Fatalf("paths disagree for a=%x b=%x: optimized=%v portable=%v", a, b, got, want)
		}
	})
}

func BenchmarkEqual32(b *testing.B) {
	equal := filled(1)
	equalCopy := equal
	firstWordDiff := equal
	firstWordDiff[0] = 2
	lastWordDiff := equal
	lastWordDiff[Size-1] = 2

	b.Run("equal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Equal32(&equal, &equalCopy)
		}
	})
	b.Run("first_word_diff", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Equal32(&equal, &firstWordDiff)
		}
	})
	b.Run("last_word_diff", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Equal32(&equal, &lastWordDiff)
		}
	})
}

func BenchmarkEqual32Portable(b *testing.B) {
	equal := filled(1)
	equalCopy := equal
	firstWordDiff := equal
	firstWordDiff[0] = 2

	b.Run("equal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Equal32Portable(&equal, &equalCopy)
		}
	})
	b.Run("first_word_diff", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Equal32Portable(&equal, &firstWordDiff)
		}
	})
}
