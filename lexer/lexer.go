// Package lexer tokenizes an input string against a pattern trie using
// longest-match (maximal-munch) semantics.
//
// A Lexer is a single-use session over one input. It walks the trie from
// the current cursor, remembers the last position at which it crossed a
// terminal node (the accepting mark), and keeps consuming greedily. When it
// hits a dead end or the end of input, it emits a token for the marked
// prefix and backtracks the cursor to just past the mark. The backtrack is
// a bounded replay — at most one scan-ahead past the mark — so tokenizing
// stays linear in input length and never blows up the way choice-point
// backtracking can.
//
// Usage follows the scanner idiom:
//
//	lx, err := lexer.New(tr, "===")
//	if err != nil {
//	    return err
//	}
//	for lx.Next() {
//	    tok := lx.Token()
//	    fmt.Printf("%d: %q -> %v\n", tok.Start, tok.Text, tok.Value)
//	}
//	if err := lx.Err(); err != nil {
//	    return err
//	}
//
// The sequence is lazy and finite. A fatal error (UnknownCharError,
// UnexpectedEndError) ends the session; callers that want to resume past
// the failure open a fresh session over the remaining input themselves.
package lexer

import (
	"github.com/coregx/trielex/internal/ascii"
	"github.com/coregx/trielex/pattern"
	"github.com/coregx/trielex/trie"
)

// Token is one matched span of the input.
type Token[T any] struct {
	// Value is the value associated with the matched pattern.
	Value T

	// Text is the matched substring of the input.
	Text string

	// Start is the 0-based byte offset of Text in the input.
	Start int
}

// End returns the 0-based offset just past the token's text.
func (t Token[T]) End() int {
	return t.Start + len(t.Text)
}

// session states: scanning until the input is exhausted (done) or a fatal
// error is recorded (failed). Both terminal states are sticky.
type state uint8

const (
	scanning state = iota
	done
	failed
)

// Lexer is a single-use tokenizing session over one input string.
//
// It borrows the trie read-only; any number of sessions over the same trie
// may run concurrently. A Lexer itself must not be shared between
// goroutines.
type Lexer[T any] struct {
	tr     *trie.Trie[T]
	input  string
	cursor int
	state  state
	tok    Token[T]
	err    error
}

// New creates a session over input. It fails only if input is not ASCII;
// no scanning happens until the first call to Next.
func New[T any](tr *trie.Trie[T], input string) (*Lexer[T], error) {
	if !ascii.Valid(input) {
		return nil, &pattern.NotASCIIError{Input: input}
	}
	return &Lexer[T]{tr: tr, input: input}, nil
}

// Next advances to the next token. It returns true if a token was produced
// (retrieve it with Token) and false when the session is over — either
// cleanly at the end of input or because of a fatal error (check Err).
func (l *Lexer[T]) Next() bool {
	if l.state != scanning {
		return false
	}
	if l.cursor == len(l.input) {
		l.state = done
		return false
	}

	alpha := l.tr.Alphabet()
	start := l.cursor
	node := l.tr.Root()

	// Last accepting mark: offset of the final character of the longest
	// match seen so far in this attempt, and its value.
	markEnd := -1
	var markVal T

	for i := start; ; i++ {
		if i == len(l.input) {
			if markEnd < 0 {
				return l.fail(&UnexpectedEndError{Pos: start})
			}
			return l.emit(start, markEnd, markVal)
		}

		c := l.input[i]
		pos := alpha.Index(c)
		if pos < 0 {
			return l.fail(&UnknownCharError{Char: c, Pos: i})
		}

		next, ok := l.tr.Step(node, pos)
		if !ok {
			// Dead end: backtrack to the mark if one exists.
			if markEnd < 0 {
				return l.fail(&UnexpectedEndError{Pos: start})
			}
			return l.emit(start, markEnd, markVal)
		}
		node = next

		if v, terminal := l.tr.Value(node); terminal {
			markEnd = i
			markVal = v
		}
	}
}

// emit records a token spanning [start, markEnd] and moves the cursor just
// past the mark; input consumed beyond the mark is replayed on the next
// call to Next.
func (l *Lexer[T]) emit(start, markEnd int, v T) bool {
	l.tok = Token[T]{
		Value: v,
		Text:  l.input[start : markEnd+1],
		Start: start,
	}
	l.cursor = markEnd + 1
	return true
}

func (l *Lexer[T]) fail(err error) bool {
	l.state = failed
	l.err = err
	return false
}

// Token returns the token produced by the last successful call to Next.
func (l *Lexer[T]) Token() Token[T] {
	return l.tok
}

// Err returns the fatal error that ended the session, or nil if the
// session is still scanning or ended cleanly at the end of input.
func (l *Lexer[T]) Err() error {
	return l.err
}

// Pos returns the current cursor position: the 0-based offset the next
// token attempt starts from.
func (l *Lexer[T]) Pos() int {
	return l.cursor
}

// Tokens drains the session and returns all tokens. The error is the fatal
// error that stopped the scan, if any; tokens produced before the failure
// are returned alongside it.
func (l *Lexer[T]) Tokens() ([]Token[T], error) {
	var toks []Token[T]
	for l.Next() {
		toks = append(toks, l.Token())
	}
	return toks, l.Err()
}
