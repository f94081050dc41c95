package lexer

import "fmt"

// UnknownCharError reports a character outside the table's alphabet
// encountered mid-scan. Pos is the 0-based byte offset of the character in
// the input. The error is fatal for the session.
type UnknownCharError struct {
	Char byte
	Pos  int
}

// Error implements the error interface
func (e *UnknownCharError) Error() string {
	return fmt.Sprintf("unknown character %q at position %d", e.Char, e.Pos)
}

// UnexpectedEndError reports that a token attempt reached a dead end (or
// the end of input) without ever visiting an accepting state. Pos is the
// 0-based byte offset where the failed token attempt started. The error is
// fatal for the session.
type UnexpectedEndError struct {
	Pos int
}

// Error implements the error interface
func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("no token matches at position %d", e.Pos)
}
