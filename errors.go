package trielex

import (
	"github.com/coregx/trielex/alphabet"
	"github.com/coregx/trielex/lexer"
	"github.com/coregx/trielex/pattern"
	"github.com/coregx/trielex/trie"
)

// Error types and sentinels re-exported from the engine packages, so most
// callers only ever import trielex. The aliases are the same types, not
// copies: errors.Is and errors.As work against either name.

// Sentinel errors
var (
	// ErrNotASCII reports a non-ASCII alphabet string at construction.
	ErrNotASCII = alphabet.ErrNotASCII

	// ErrInvalidRange reports structurally invalid pattern syntax.
	ErrInvalidRange = pattern.ErrInvalidRange

	// ErrEmptyPattern reports an empty pattern string.
	ErrEmptyPattern = pattern.ErrEmptyPattern
)

type (
	// InvalidCharError reports a character outside the alphabet, in a
	// pattern or a query.
	InvalidCharError = pattern.InvalidCharError

	// NotASCIIError reports a non-ASCII pattern, query, or lexer input.
	NotASCIIError = pattern.NotASCIIError

	// AlreadyDefinedError reports a conflicting insertion; it carries both
	// the stored and the requested value.
	AlreadyDefinedError[T any] = trie.AlreadyDefinedError[T]

	// UnknownCharError reports a character outside the alphabet during a
	// lexing session, with its 0-based position.
	UnknownCharError = lexer.UnknownCharError

	// UnexpectedEndError reports a token attempt that never reached an
	// accepting state, with the attempt's 0-based start position.
	UnexpectedEndError = lexer.UnexpectedEndError

	// Token is one matched span produced by a lexing session.
	Token[T any] = lexer.Token[T]

	// Lexer is a single-use tokenizing session.
	Lexer[T any] = lexer.Lexer[T]
)
