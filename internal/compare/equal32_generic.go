// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build (!amd64 && !arm64) || purego

package compare

// Equal32 is the portable fallback used when no assembly routine exists for
// the build target, or when the purego tag opts out of assembly entirely.
func Equal32(a, b *[Size]byte) bool {
	return Equal32Portable(a, b)
}

// Path reports which comparison implementation Equal32 uses on this host.
func Path() string {
	return "portable"
}
