// Package alphabet provides the immutable character set a pattern table is
// built over.
//
// Every pattern and every query string is interpreted against one Alphabet:
// a fixed, ordered set of ASCII characters chosen at construction time.
// Each character owns a small integer position, and trie nodes index their
// transitions by that position, so lookup has to be O(1). The position table
// is a [256]int16 keyed directly by byte value, the same direct-indexing
// technique the engine uses for byte equivalence classes.
//
// Example for alphabet "abc":
//   - Index('a') == 0, Index('b') == 1, Index('c') == 2
//   - Index('d') == -1 (not a member)
//
// An Alphabet is immutable after New and safe for concurrent use.
package alphabet

import (
	"errors"
	"strings"
)

// ErrNotASCII is returned by New when the alphabet string contains a byte
// outside the ASCII range.
var ErrNotASCII = errors.New("alphabet must be ASCII")

// Alphabet is an immutable set of ASCII characters with stable positions.
//
// Positions follow first occurrence in the construction string; duplicate
// characters are harmless and keep their first position.
type Alphabet struct {
	// chars holds the distinct member characters in position order.
	chars string

	// pos maps each byte value to its position, or -1 for non-members.
	// Only indices 0x00-0x7F can ever be >= 0.
	pos [256]int16
}

// New creates an Alphabet from the given character string.
//
// Duplicates are allowed (membership is what matters); an empty string is
// legal and yields an alphabet that rejects every character. Returns
// ErrNotASCII if any byte has the high bit set.
//
// Example:
//
//	alpha, err := alphabet.New("0123456789")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	alpha.Contains('7') // true
func New(chars string) (*Alphabet, error) {
	a := &Alphabet{}
	for i := range a.pos {
		a.pos[i] = -1
	}

	var distinct strings.Builder
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c >= 0x80 {
			return nil, ErrNotASCII
		}
		if a.pos[c] >= 0 {
			continue
		}
		a.pos[c] = int16(distinct.Len())
		distinct.WriteByte(c)
	}
	a.chars = distinct.String()
	return a, nil
}

// Len returns the number of distinct member characters.
func (a *Alphabet) Len() int {
	return len(a.chars)
}

// Index returns the position of b in the alphabet, or -1 if b is not a
// member. This is an O(1) table lookup.
func (a *Alphabet) Index(b byte) int {
	return int(a.pos[b])
}

// Contains reports whether b is a member of the alphabet.
func (a *Alphabet) Contains(b byte) bool {
	return a.pos[b] >= 0
}

// Char returns the member character at the given position.
// Panics if pos is out of range, mirroring slice indexing.
func (a *Alphabet) Char(pos int) byte {
	return a.chars[pos]
}

// String returns the distinct member characters in position order.
func (a *Alphabet) String() string {
	return a.chars
}
