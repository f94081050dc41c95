// Package ascii provides a fast all-ASCII check for input strings.
//
// Every string entering the engine (patterns, queries, lexer input) must be
// pure ASCII before any alphabet lookup happens. The check uses the SWAR
// (SIMD Within A Register) technique: 8 bytes are read as a uint64 and
// tested against the high-bit mask in one operation, so throughput is
// memory-bandwidth bound for long inputs.
package ascii

import "encoding/binary"

// hi8 has the high bit of every byte lane set. ASCII bytes (0x00-0x7F) have
// bit 7 clear, so chunk&hi8 != 0 means at least one non-ASCII byte.
const hi8 = uint64(0x8080808080808080)

// Valid reports whether every byte of s is ASCII (< 0x80).
//
// The empty string is trivially ASCII.
func Valid(s string) bool {
	n := len(s)

	// Byte-by-byte for short inputs; no setup overhead.
	if n < 8 {
		for i := 0; i < n; i++ {
			if s[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64([]byte(s[i : i+8]))
		if chunk&hi8 != 0 {
			return false
		}
		i += 8
	}

	// Tail of 0-7 bytes.
	for i < n {
		if s[i] >= 0x80 {
			return false
		}
		i++
	}
	return true
}
