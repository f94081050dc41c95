// Package trielex matches strings against a fixed, pre-declared pattern set
// and tokenizes input streams with longest-match semantics.
//
// trielex is built for lexers, command/protocol keyword matchers, and
// fixed-vocabulary routers: the vocabulary is known up front, matching must
// be exact and predictable, and no general regular-expression power is
// wanted. Patterns are compiled into one shared trie automaton; matching a
// string or producing the next token is a single deterministic walk.
//
// Pattern syntax is minimal: ordinary characters match themselves, [abc]
// matches one of the bracketed characters, and a trailing + repeats the
// preceding element one or more times. Every character must belong to the
// table's alphabet, fixed at construction. Input is ASCII only.
//
// Basic usage:
//
//	table, err := trielex.New[string]("=<>!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table.MustAdd("=", "ASSIGN")
//	table.MustAdd("==", "EQ")
//	table.MustAdd("!=", "NEQ")
//
//	// Exact matching
//	v, ok, _ := table.Get("==")
//	fmt.Println(v, ok) // EQ true
//
//	// Longest-match tokenizing
//	lx, _ := table.Lexer("===!=")
//	for lx.Next() {
//	    tok := lx.Token()
//	    fmt.Printf("%q -> %s\n", tok.Text, tok.Value)
//	}
//	// "==" -> EQ, "=" -> ASSIGN, "!=" -> NEQ
//
// Concurrency: a Table must have a single writer while patterns are added.
// Once construction is finished the table is immutable and safe for any
// number of concurrent Get, Lexer, and Resync calls — reads never mutate
// shared state, so no locking is involved.
package trielex

import (
	"sync"

	"github.com/coregx/trielex/alphabet"
	"github.com/coregx/trielex/lexer"
	"github.com/coregx/trielex/literal"
	"github.com/coregx/trielex/pattern"
	"github.com/coregx/trielex/prefilter"
	"github.com/coregx/trielex/trie"
)

// Table owns the alphabet and the pattern trie. Values of type T are
// associated with patterns at Add time and handed back by Get and by lexer
// tokens; the engine only stores them and never inspects them.
type Table[T any] struct {
	tr   *trie.Trie[T]
	lits literal.Seq

	// resync is built lazily from the complete literal patterns on first
	// use. Legal without further locking because the sharing policy already
	// requires construction to finish before reads begin.
	resyncOnce sync.Once
	resync     *prefilter.Resync
}

// New creates a Table over the given alphabet characters.
//
// Duplicate characters are harmless (membership is what matters). An empty
// alphabet is legal but makes every non-empty pattern and query invalid.
// Fails only if the alphabet itself contains non-ASCII bytes.
func New[T any](chars string) (*Table[T], error) {
	alpha, err := alphabet.New(chars)
	if err != nil {
		return nil, err
	}
	return &Table[T]{tr: trie.New[T](alpha)}, nil
}

// Add inserts one pattern with its associated value.
//
// A failed Add leaves the table exactly as if the call had not been made.
// Errors:
//   - NotASCIIError: the pattern contains non-ASCII bytes
//   - ErrEmptyPattern: the pattern is empty
//   - ErrInvalidRange: unterminated or empty class, or a '+' with nothing
//     to repeat
//   - InvalidCharError: a pattern character outside the alphabet
//   - AlreadyDefinedError: the pattern (or an overlapping one) already has
//     a value; the error carries both values
func (t *Table[T]) Add(p string, value T) error {
	atoms, err := pattern.Parse(p, t.tr.Alphabet())
	if err != nil {
		return err
	}
	if err := t.tr.Insert(atoms, value); err != nil {
		return err
	}
	if lit, ok := literal.FromAtoms(atoms); ok {
		t.lits.Push(lit)
	}
	return nil
}

// MustAdd is like Add but panics on error. Useful for vocabularies known to
// be valid at compile time:
//
//	table.MustAdd("return", token.RETURN)
func (t *Table[T]) MustAdd(p string, value T) {
	if err := t.Add(p, value); err != nil {
		panic("trielex: Add(`" + p + "`): " + err.Error())
	}
}

// Get matches one query string against the table.
//
// ok reports whether q is exactly the language of some inserted pattern —
// fully consumed, ending on a terminal node. A strict prefix of a pattern,
// or extra trailing characters, is a clean no-match: (zero, false, nil).
//
// Errors are reserved for invalid input: NotASCIIError for non-ASCII
// queries, InvalidCharError for characters outside the alphabet.
func (t *Table[T]) Get(q string) (T, bool, error) {
	return t.tr.Lookup(q)
}

// Lexer opens a tokenizing session over input. It fails only if input is
// not ASCII; otherwise tokens are produced lazily by the returned session.
// See the lexer package for the scanning contract.
func (t *Table[T]) Lexer(input string) (*lexer.Lexer[T], error) {
	return lexer.New(t.tr, input)
}

// Resync returns the next position at or after `at` where some complete
// literal pattern of the table occurs in input — a candidate spot to open a
// fresh Lexer session after a fatal lexing error. ok is false if the table
// has no complete literal patterns or none occurs in the rest of the input.
//
// Resync is a read-phase operation: call it only after construction is
// finished.
func (t *Table[T]) Resync(input string, at int) (int, bool) {
	t.resyncOnce.Do(func() {
		rs, err := prefilter.NewResync(&t.lits)
		if err != nil {
			return
		}
		t.resync = rs
	})
	if t.resync == nil {
		return 0, false
	}
	return t.resync.Next([]byte(input), at)
}

// NodeCount returns the number of nodes in the trie, root included. Node
// count grows with distinct pattern content: shared prefixes and class
// members share nodes.
func (t *Table[T]) NodeCount() int {
	return t.tr.Len()
}

// Alphabet returns the table's distinct alphabet characters in position
// order.
func (t *Table[T]) Alphabet() string {
	return t.tr.Alphabet().String()
}
