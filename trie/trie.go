// Package trie implements the automaton at the heart of the table: a rooted
// graph of nodes connected by single-character edges, built incrementally
// from parsed pattern atoms.
//
// The structure is a shared directed graph rather than a strict tree. A
// character class fans all of its members into one shared successor, so trie
// size stays proportional to distinct pattern content instead of the cross
// product of class members; one-or-more repetition is a self-loop on the
// node that terminates the repeated atom, so repetition length is unbounded
// without duplicating nodes.
//
// Nodes live in an arena ([]node) and reference each other by integer
// NodeID. That sidesteps cyclic ownership entirely and gives stable, cheap
// node identity for self-loops.
//
// Concurrency: a Trie under construction needs an exclusive writer. Once
// the last Insert returns, the graph is immutable and any number of
// goroutines may Lookup and Step concurrently without locking.
package trie

import (
	"github.com/coregx/trielex/alphabet"
	"github.com/coregx/trielex/internal/ascii"
	"github.com/coregx/trielex/internal/sparse"
	"github.com/coregx/trielex/pattern"
)

// Trie is the automaton for one pattern table.
//
// The zero value is not usable; create one with New.
type Trie[T any] struct {
	alpha *alphabet.Alphabet
	nodes []node[T]
}

// New creates an empty trie over the given alphabet. The trie starts with
// just the root node and accepts nothing.
func New[T any](alpha *alphabet.Alphabet) *Trie[T] {
	return &Trie[T]{
		alpha: alpha,
		nodes: []node[T]{newNode[T](alpha.Len())},
	}
}

// Alphabet returns the alphabet the trie was built over.
func (t *Trie[T]) Alphabet() *alphabet.Alphabet {
	return t.alpha
}

// Root returns the start state for a walk.
func (t *Trie[T]) Root() NodeID {
	return 0
}

// Len returns the number of nodes, root included.
func (t *Trie[T]) Len() int {
	return len(t.nodes)
}

// Insert extends the trie so it accepts exactly the language denoted by the
// atom sequence, associating value with acceptance.
//
// Insertion walks a set of "current" nodes, one atom at a time. Class
// members without an existing edge converge on one freshly created shared
// successor; members that already have an edge keep it, and the walk
// continues through every distinct successor. A repeated atom installs a
// self-loop for each of its characters on every node the atom landed on.
//
// A failed insertion is unobservable: every syntax and alphabet error is
// raised by the parser before Insert is called, and Insert itself defers
// self-loop installation and value assignment until all terminal slots have
// been verified free. (Nodes created before a conflict is found remain in
// the arena, but they are non-terminal and dead — no walk can tell they
// exist.)
//
// Returns AlreadyDefinedError if some node at the end of the walk already
// carries a value.
func (t *Trie[T]) Insert(atoms []pattern.Atom, value T) error {
	if len(atoms) == 0 {
		return pattern.ErrEmptyPattern
	}

	// Self-loops to install on commit. Atoms later in this same pattern
	// must see them during the walk, so successor consults this map too.
	pendingLoops := make(map[NodeID]loopMask)

	cur := sparse.New(uint32(len(t.nodes)))
	next := sparse.New(uint32(len(t.nodes)))
	cur.Insert(0)

	var positions []int
	for _, atom := range atoms {
		positions = positions[:0]
		for _, c := range atom.Chars {
			pos := t.alpha.Index(c)
			if pos < 0 {
				return &pattern.InvalidCharError{Char: c}
			}
			positions = append(positions, pos)
		}

		next.Clear()
		for _, id := range cur.Values() {
			// All fresh edges out of this node share one new successor.
			shared := NodeID(none)
			for _, pos := range positions {
				succ := t.successor(NodeID(id), pos, pendingLoops, &shared)
				next.Grow(uint32(len(t.nodes)))
				next.Insert(uint32(succ))
			}
		}

		if atom.Repeated {
			for _, id := range next.Values() {
				m := pendingLoops[NodeID(id)]
				for _, pos := range positions {
					m.set(pos)
				}
				pendingLoops[NodeID(id)] = m
			}
		}

		cur, next = next, cur
	}

	// Verify every terminal slot before touching any of them, so a conflict
	// leaves earlier patterns fully intact.
	for _, id := range cur.Values() {
		if t.nodes[id].hasValue {
			return &AlreadyDefinedError[T]{
				Current:   t.nodes[id].value,
				Requested: value,
			}
		}
	}

	for id, m := range pendingLoops {
		t.nodes[id].loops.or(m)
	}
	for _, id := range cur.Values() {
		t.nodes[id].value = value
		t.nodes[id].hasValue = true
	}
	return nil
}

// successor resolves one character transition out of cur during insertion.
//
// An applicable self-loop (committed or pending from this insertion) is the
// edge for that character: the successor is the node itself. Otherwise an
// existing forward edge is followed, and failing that a fresh node is
// created. shared carries the one fresh successor per (node, atom) so that
// every new class member converges on it.
func (t *Trie[T]) successor(cur NodeID, pos int, pendingLoops map[NodeID]loopMask, shared *NodeID) NodeID {
	n := &t.nodes[cur]
	if n.loops.has(pos) {
		return cur
	}
	if m, ok := pendingLoops[cur]; ok && m.has(pos) {
		return cur
	}
	if child := n.children[pos]; child != none {
		return NodeID(child)
	}

	if *shared == NodeID(none) {
		// Append may move the arena; re-index cur afterwards.
		t.nodes = append(t.nodes, newNode[T](t.alpha.Len()))
		*shared = NodeID(len(t.nodes) - 1)
	}
	t.nodes[cur].children[pos] = int32(*shared)
	return *shared
}

// Lookup walks the trie for one query string and reports an exact match.
//
// The walk is deterministic: a self-loop for the current character keeps the
// walk on the current node (greedy repetition); otherwise the forward edge
// is taken; otherwise the result is no-match. The query matches iff it is
// fully consumed and the final node is terminal.
//
// No-match is a valid negative result, not an error. Errors are reserved
// for invalid input: NotASCIIError for non-ASCII queries and
// InvalidCharError for characters outside the alphabet.
func (t *Trie[T]) Lookup(s string) (T, bool, error) {
	var zero T
	if !ascii.Valid(s) {
		return zero, false, &pattern.NotASCIIError{Input: s}
	}

	cur := NodeID(0)
	for i := 0; i < len(s); i++ {
		pos := t.alpha.Index(s[i])
		if pos < 0 {
			return zero, false, &pattern.InvalidCharError{Char: s[i]}
		}
		next, ok := t.Step(cur, pos)
		if !ok {
			return zero, false, nil
		}
		cur = next
	}
	v, ok := t.Value(cur)
	return v, ok, nil
}

// Step performs one transition from id on the given alphabet position.
// Self-loop first, forward edge second. Returns false if the node has no
// transition for the position.
func (t *Trie[T]) Step(id NodeID, pos int) (NodeID, bool) {
	n := &t.nodes[id]
	if n.loops.has(pos) {
		return id, true
	}
	if child := n.children[pos]; child != none {
		return NodeID(child), true
	}
	return id, false
}

// Value returns the value associated with a terminal node. The second
// result is false for non-terminal nodes.
func (t *Trie[T]) Value(id NodeID) (T, bool) {
	n := &t.nodes[id]
	if !n.hasValue {
		var zero T
		return zero, false
	}
	return n.value, true
}
