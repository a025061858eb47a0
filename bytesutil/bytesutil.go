// Package bytesutil collects the small byte-level helpers the cipher
// and mode packages share: secure random fill, buffer wipe, the
// bit-padding scan, and length-fixed comparison.
package bytesutil

import (
	"crypto/rand"
	"io"
)

// PaddingByte marks the start of bit-padding: 0x80 followed by zeros.
const PaddingByte = 0x80

// RandomBytes fills buf with cryptographically random bytes, retrying
// until it is completely satisfied.
func RandomBytes(buf []byte) {
	for len(buf) > 0 {
		n, err := rand.Read(buf)
		if err != nil {
			continue
		}
		buf = buf[n:]
	}
}

// ClearBytes overwrites buf with a random fill and then a sequence of
// fixed patterns (0x55, 0xaa, 0xff, 0x00), the way a key schedule or IV
// scratch buffer should be wiped before it is released. The repeated,
// distinct writes exist so that a compiler cannot collapse the whole
// sequence into a single dead store that the final zeroing would leave
// behind; see DESIGN.md for why Go has no volatile-write primitive to
// lean on instead.
func ClearBytes(buf []byte) {
	if len(buf) == 0 {
		return
	}
	RandomBytes(buf)
	for _, pattern := range [...]byte{0x55, 0xaa, 0xff, 0x00} {
		for i := range buf {
			buf[i] = pattern
		}
		noOptimize(buf)
	}
}

// noOptimize touches buf through an indirection the compiler cannot see
// through at compile time, discouraging it from proving the preceding
// write dead and eliding it.
var sink io.Writer = io.Discard

func noOptimize(buf []byte) {
	_, _ = sink.Write(buf[:0])
}

// PaddingIndex scans buf from its last byte backwards for the rightmost
// 0x80 that is preceded, towards the end of the buffer, only by zero
// bytes. It returns that index, or -1 if the first non-zero byte from
// the end is not 0x80 — meaning no padding is considered present.
func PaddingIndex(buf []byte) int {
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] != 0 {
			if buf[i] == PaddingByte {
				return i
			}
			break
		}
	}
	return -1
}

// CompareBytes reports whether a and b are equal in length and content.
// It is a plain byte-by-byte comparison that returns at the first
// differing byte, so it is not constant-time.
func CompareBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
