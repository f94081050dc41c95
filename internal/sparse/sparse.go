// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set supports O(1) insertion, membership testing, and clearing
// while maintaining a dense list of elements for iteration. The trie engine
// uses it to deduplicate the set of "current" nodes while an insertion walks
// the automaton: self-loops can map several class characters onto the same
// node, and each node must be visited (and later marked terminal) once.
package sparse

// Set is a set of uint32 values with O(1) operations.
// It maintains both a sparse array (for membership testing) and a dense
// array (for iteration). The sparse array maps values to indices in dense.
//
// The universe of possible values (node IDs) grows while patterns are
// inserted, so unlike a classic fixed-capacity sparse set it can be grown.
type Set struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Contains the actual values
	size   uint32   // Current number of elements
}

// New creates a sparse set able to hold values in [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Grow extends the capacity so values in [0, capacity) can be stored.
// Existing elements are preserved. No-op if the set is already large enough.
func (s *Set) Grow(capacity uint32) {
	if uint32(len(s.sparse)) >= capacity {
		return
	}
	grown := make([]uint32, capacity)
	copy(grown, s.sparse)
	s.sparse = grown
}

// Insert adds a value to the set.
// If the value is already present, this is a no-op.
// Panics if value >= capacity.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains returns true if the value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear removes all elements from the set in O(1) time.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Size returns the number of elements in the set.
func (s *Set) Size() int {
	return int(s.size)
}

// IsEmpty returns true if the set contains no elements.
func (s *Set) IsEmpty() bool {
	return s.size == 0
}

// Values returns a slice of all values in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}
