package trie

// NodeID identifies a node in the trie's arena. The root is always node 0.
// Nodes are never freed, so an ID stays valid for the lifetime of the trie.
type NodeID int32

// none marks an absent child edge.
const none int32 = -1

// loopMask records which alphabet positions transition a node back to
// itself. A distinct alphabet has at most 128 ASCII characters, so two
// 64-bit words always suffice.
type loopMask [2]uint64

func (m *loopMask) set(pos int) {
	m[pos>>6] |= 1 << (pos & 63)
}

func (m *loopMask) has(pos int) bool {
	return m[pos>>6]&(1<<(pos&63)) != 0
}

func (m *loopMask) or(o loopMask) {
	m[0] |= o[0]
	m[1] |= o[1]
}

// node is one automaton state. Forward edges are indexed by alphabet
// position; self-loops live in a separate mask so installing a repetition
// never clobbers an edge created by an earlier pattern.
type node[T any] struct {
	// children maps alphabet position -> child node index, or none.
	children []int32

	// loops marks the positions that re-enter this node (one-or-more
	// repetition).
	loops loopMask

	// value is the associated value for terminal nodes. Presence is tracked
	// by hasValue; the engine never inspects the value itself.
	value    T
	hasValue bool
}

func newNode[T any](alphabetLen int) node[T] {
	children := make([]int32, alphabetLen)
	for i := range children {
		children[i] = none
	}
	return node[T]{children: children}
}
