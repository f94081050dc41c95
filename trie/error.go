package trie

import "fmt"

// AlreadyDefinedError is returned when an insertion reaches a terminal node
// that already carries a value. Values are never silently overwritten; the
// error carries both values so the caller can report the conflicting
// pattern.
type AlreadyDefinedError[T any] struct {
	// Current is the value stored by the earlier insertion.
	Current T

	// Requested is the value the failed insertion tried to store.
	Requested T
}

// Error implements the error interface
func (e *AlreadyDefinedError[T]) Error() string {
	return fmt.Sprintf("value already defined: current=%v, requested=%v", e.Current, e.Requested)
}
