// Package literal collects the complete literal patterns of a table.
//
// A pattern is a complete literal when every atom is a single, non-repeated
// character — `get`, `==`, `a.b` — so the pattern denotes exactly one
// string. Classes and repetition disqualify it.
//
// Complete literals are the raw material for the resync prefilter: their
// occurrences in an input are candidate token starts, which is what a
// caller needs to restart a lexing session after a fatal error.
package literal

import "github.com/coregx/trielex/pattern"

// Literal is one complete literal pattern.
type Literal struct {
	// Bytes contains the literal byte sequence.
	Bytes []byte
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns the literal text, for debugging.
func (l Literal) String() string {
	return string(l.Bytes)
}

// FromAtoms returns the literal denoted by the atom sequence, if there is
// one. ok is false when any atom is a class or is repeated.
func FromAtoms(atoms []pattern.Atom) (Literal, bool) {
	b := make([]byte, 0, len(atoms))
	for _, a := range atoms {
		if !a.IsLiteral() {
			return Literal{}, false
		}
		b = append(b, a.Chars[0])
	}
	return Literal{Bytes: b}, true
}

// Seq is an ordered collection of complete literals. The zero value is an
// empty sequence ready to use.
type Seq struct {
	lits []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{lits: lits}
}

// Push appends a literal to the sequence.
func (s *Seq) Push(l Literal) {
	s.lits = append(s.lits, l)
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	return len(s.lits)
}

// Get returns the literal at index i.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// IsEmpty returns true if the sequence contains no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}
