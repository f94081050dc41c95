// Package prefilter locates candidate token starts after a lexing failure.
//
// A lexer session dies on the first unknown character or unmatched span;
// the engine never resynchronizes on its own. For callers that want
// skip-and-resume behavior, this package scans the input for occurrences of
// the table's complete literal patterns using an Aho-Corasick automaton and
// reports the next occurrence position. That position is only a candidate:
// the caller opens a fresh lexer session there and the trie engine decides
// what actually matches, so the automaton's match preference can never
// change tokenizing semantics.
//
// Example usage:
//
//	rs, err := prefilter.NewResync(seq)
//	if err != nil {
//	    return err // no complete literals to key on
//	}
//	if pos, ok := rs.Next(input, failPos+1); ok {
//	    // re-lex input[pos:]
//	}
package prefilter

import (
	"errors"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/trielex/literal"
)

// ErrNoLiterals is returned by NewResync when the table has no complete
// literal patterns, leaving nothing to scan for.
var ErrNoLiterals = errors.New("no complete literal patterns to resync on")

// Resync finds positions where some complete literal pattern of a table
// occurs, so a caller can restart lexing there after a fatal error.
type Resync struct {
	auto *ahocorasick.Automaton
}

// NewResync builds a resync finder from the table's complete literals.
func NewResync(seq *literal.Seq) (*Resync, error) {
	if seq.IsEmpty() {
		return nil, ErrNoLiterals
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Resync{auto: auto}, nil
}

// Next returns the position at or after start where some complete literal
// pattern occurs in input. ok is false when no literal occurs in the rest
// of the input.
func (r *Resync) Next(input []byte, start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if start >= len(input) {
		return 0, false
	}
	m := r.auto.Find(input, start)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}
