// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build amd64 && !purego

package compare

import (
	"testing"

	"pgregory.net/rapid"
)

// TestEqual32WordsRoutine cross-checks the word-wise assembly routine
// against the structural comparison directly, so it is exercised even on
// hosts where Equal32 selects the AVX2 variant.
func TestEqual32WordsRoutine(t *testing.T) {
	base := filled(0x5C)

	if !equal32Words(&base, &base) {
		t.Error("equal32Words should report a value equal to itself")
	}

	copyOfBase := base
	if !equal32Words(&base, &copyOfBase) {
		t.Error("equal32Words should report an independent copy as equal")
	}

	for i := 0; i < Size; i++ {
		mutated := base
		mutated[i] ^= 0xFF
		if equal32Words(&base, &mutated) {
			t.Errorf("equal32Words missed a difference at byte %d", i)
		}
	}

	// Each link of the short-circuit chain, including the final word.
	for word := 0; word < Words; word++ {
		mutated := base
		mutated[word*8] = 0x99
		if equal32Words(&base, &mutated) {
			t.Errorf("equal32Words missed a mismatch in word %d", word)
		}
	}
}

// TestEqual32AVX2Routine cross-checks the AVX2 routine directly on hosts
// that support it; on other hosts the routine is unreachable by contract
// and the test is skipped.
func TestEqual32AVX2Routine(t *testing.T) {
	if !hasAVX2 {
		t.Skip("host lacks AVX2")
	}

	base := filled(0xA7)

	if !equal32AVX2(&base, &base) {
		t.Error("equal32AVX2 should report a value equal to itself")
	}

	for i := 0; i < Size; i++ {
		mutated := base
		mutated[i] ^= 0xFF
		if equal32AVX2(&base, &mutated) {
			t.Errorf("equal32AVX2 missed a difference at byte %d", i)
		}
	}
}

// TestAssemblyRoutinesAgreeWithPortable drives both assembly routines over
// generated pairs, independent of which one Equal32 selects on this host.
func TestAssemblyRoutinesAgreeWithPortable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var a, b [Size]byte
		copy(a[:], rapid.SliceOfN(rapid.Byte(), Size, Size).Draw(t, "a"))

		if rapid.Bool().Draw(t, "mutate") {
			b = a
			for _, idx := range rapid.SliceOfN(rapid.IntRange(0, Size-1), 0, 4).Draw(t, "flips") {
				b[idx] ^= byte(rapid.IntRange(1, 255).Draw(t, "delta"))
			}
		} else {
			copy(b[:], rapid.SliceOfN(rapid.Byte(), Size, Size).Draw(t, "b"))
		}

		want := Equal32Portable(&a, &b)
		if got := equal32Words(&a, &b); got != want {
			t.Fatalf("equal32Words disagrees for a=%x b=%x: got %v, want %v", a, b, got, want)
		}
		if hasAVX2 {
			if got := equal32AVX2(&a, &b); got != want {
				t.Fatalf("equal32AVX2 disagrees for a=%x b=%x: got %v, want %v", a, b, got, want)
			}
		}
	})
}
