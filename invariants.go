package btree

import (
	"cmp"
	"fmt"
)

// Check validates structural tree invariants and reports the first violation
// found.
//
// This checker is intentionally strict and meant for tests; production code
// paths never call it. A non-nil result means the tree is corrupt, which is
// a programming error, not a user error.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height 0, has %d",
				ErrInvariantViolation, t.height)
		}
		return nil
	}
	if len(t.root.entries) == 0 {
		return fmt.Errorf("%w: non-empty tree with entryless root", ErrInvariantViolation)
	}
	st, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if st.height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)",
			ErrInvariantViolation, st.height, t.height)
	}
	return nil
}

// subtreeStats carries recursion results: recounted entry total, leaf
// distance, and the extreme entries for separation checks.
type subtreeStats[K cmp.Ordered, V any] struct {
	size   int
	height int
	min    *Entry[K, V]
	max    *Entry[K, V]
}

func (t *Tree[K, V]) checkNode(n *node[K, V], isRoot bool) (subtreeStats[K, V], error) {
	var st subtreeStats[K, V]
	if n == nil {
		return st, fmt.Errorf("%w: nil node", ErrInvariantViolation)
	}
	if len(n.entries) > t.maxEntries() {
		return st, fmt.Errorf("%w: node holds %d entries, maximum is %d",
			ErrInvariantViolation, len(n.entries), t.maxEntries())
	}
	if !isRoot && len(n.entries) < t.minEntries() {
		return st, fmt.Errorf("%w: non-root node holds %d entries, minimum is %d",
			ErrInvariantViolation, len(n.entries), t.minEntries())
	}
	for i := 1; i < len(n.entries); i++ {
		if !n.entries[i-1].less(n.entries[i]) {
			return st, fmt.Errorf("%w: entries out of (key, seq) order at index %d",
				ErrInvariantViolation, i)
		}
	}
	if n.leaf() {
		if n.size != len(n.entries) {
			return st, fmt.Errorf("%w: leaf size %d, recount %d",
				ErrInvariantViolation, n.size, len(n.entries))
		}
		st.size = len(n.entries)
		st.height = 1
		st.min, st.max = n.entries[0], n.entries[len(n.entries)-1]
		return st, nil
	}
	if len(n.children) != len(n.entries)+1 {
		return st, fmt.Errorf("%w: internal node with %d entries has %d children",
			ErrInvariantViolation, len(n.entries), len(n.children))
	}
	total := len(n.entries)
	var childHeight int
	for i, child := range n.children {
		cst, err := t.checkNode(child, false)
		if err != nil {
			return st, err
		}
		total += cst.size
		if i == 0 {
			childHeight = cst.height
			st.min = cst.min
		} else if cst.height != childHeight {
			return st, fmt.Errorf("%w: non-uniform subtree heights below node",
				ErrInvariantViolation)
		}
		// Separators bound child subtrees strictly in (key, seq) order;
		// duplicate runs may straddle a separator by key, never by sequence.
		if i > 0 && !n.entries[i-1].less(cst.min) {
			return st, fmt.Errorf("%w: child %d starts left of its separator",
				ErrInvariantViolation, i)
		}
		if i < len(n.entries) && !cst.max.less(n.entries[i]) {
			return st, fmt.Errorf("%w: child %d ends right of its separator",
				ErrInvariantViolation, i)
		}
		if i == len(n.children)-1 {
			st.max = cst.max
		}
	}
	if n.size != total {
		return st, fmt.Errorf("%w: subtree size %d, recount %d",
			ErrInvariantViolation, n.size, total)
	}
	st.size = total
	st.height = childHeight + 1
	return st, nil
}
