package pattern

import (
	"errors"
	"fmt"
)

// Common pattern errors
var (
	// ErrInvalidRange indicates structurally invalid pattern syntax: an
	// unterminated character class, an empty class body, or a '+' with no
	// completed atom in front of it to repeat.
	ErrInvalidRange = errors.New("invalid range: unclosed or empty bracket")

	// ErrEmptyPattern indicates an empty pattern string. Patterns must be
	// at least one character long.
	ErrEmptyPattern = errors.New("empty pattern")
)

// InvalidCharError reports a character that is not a member of the
// table's alphabet. It is returned both while parsing a pattern and while
// walking a query string.
type InvalidCharError struct {
	Char byte
}

// Error implements the error interface
func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid input character: %q", e.Char)
}

// NotASCIIError reports an input string containing bytes outside the ASCII
// range. It is raised before any alphabet membership checks are attempted.
type NotASCIIError struct {
	Input string
}

// Error implements the error interface
func (e *NotASCIIError) Error() string {
	return fmt.Sprintf("invalid string (non-ASCII): %q", e.Input)
}
