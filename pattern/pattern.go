// Package pattern parses pattern strings into atom sequences.
//
// The pattern syntax is deliberately small — it describes fixed
// vocabularies, not general regular expressions:
//
//   - any ordinary character matches itself
//   - [abc] matches exactly one of the characters between the brackets
//   - a trailing + makes the preceding atom match one or more times
//
// Everything else, including '*', is an ordinary character. Inside a class
// every character up to the closing ']' is a plain member, so a lone '+'
// keyword is written [+]. Every character appearing in a pattern (as a
// literal or inside a class) must be a member of the table's alphabet.
//
// Example patterns:
//   - `get`                 - the literal keyword "get"
//   - `c[aou]t`             - cat, cot or cut
//   - `[0123456789]+`       - one or more digits
//
// The parser produces a flat []Atom; the trie engine materializes atoms
// into automaton states and never sees pattern syntax.
package pattern

import (
	"github.com/coregx/trielex/alphabet"
	"github.com/coregx/trielex/internal/ascii"
)

// Atom is one unit of pattern syntax: a set of alternative characters,
// optionally repeated. A plain literal is a one-character set, so the trie
// engine can treat every atom uniformly.
type Atom struct {
	// Chars holds the alternative characters, deduplicated, in first
	// occurrence order. Never empty; every entry is an alphabet member.
	Chars []byte

	// Repeated marks the atom as "one or more". The flag applies to the
	// whole set: [ab]+ accepts any non-empty mix of a's and b's.
	Repeated bool
}

// IsLiteral reports whether the atom matches exactly one fixed character.
func (a Atom) IsLiteral() bool {
	return !a.Repeated && len(a.Chars) == 1
}

// Parse converts a pattern string into its atom sequence.
//
// Errors:
//   - NotASCIIError if the pattern contains non-ASCII bytes (checked before
//     anything else)
//   - ErrEmptyPattern for the empty pattern
//   - ErrInvalidRange for an unterminated or empty class, or a '+' with no
//     atom in front of it to repeat
//   - InvalidCharError for a pattern character outside the alphabet
func Parse(p string, alpha *alphabet.Alphabet) ([]Atom, error) {
	if !ascii.Valid(p) {
		return nil, &NotASCIIError{Input: p}
	}
	if p == "" {
		return nil, ErrEmptyPattern
	}

	var atoms []Atom
	i := 0
	for i < len(p) {
		switch c := p[i]; c {
		case '[':
			chars, rest, err := parseClass(p, i+1, alpha)
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, Atom{Chars: chars})
			i = rest

		case '+':
			// Repetition needs a completed atom in front of it. Repeating
			// an already repeated atom is a no-op: a++ accepts what a+ does.
			if len(atoms) == 0 {
				return nil, ErrInvalidRange
			}
			atoms[len(atoms)-1].Repeated = true
			i++

		default:
			if !alpha.Contains(c) {
				return nil, &InvalidCharError{Char: c}
			}
			atoms = append(atoms, Atom{Chars: []byte{c}})
			i++
		}
	}
	return atoms, nil
}

// parseClass collects the body of a character class starting just after the
// opening '['. It returns the deduplicated members and the index just past
// the closing ']'.
func parseClass(p string, i int, alpha *alphabet.Alphabet) ([]byte, int, error) {
	var chars []byte
	var seen [128]bool
	for ; i < len(p); i++ {
		c := p[i]
		if c == ']' {
			if len(chars) == 0 {
				return nil, 0, ErrInvalidRange
			}
			return chars, i + 1, nil
		}
		if !alpha.Contains(c) {
			return nil, 0, &InvalidCharError{Char: c}
		}
		if !seen[c] {
			seen[c] = true
			chars = append(chars, c)
		}
	}
	// Ran out of input before ']'.
	return nil, 0, ErrInvalidRange
}
