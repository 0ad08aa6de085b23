package btree

import "iter"

// Traverse walks every entry in global (key, seq) order.
//
// The walk stops early if fn returns false. Traversal performs no mutation;
// mutating the tree from inside fn is undefined behavior.
func (t *Tree[K, V]) Traverse(fn func(e *Entry[K, V]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.traverseNode(t.root, fn)
}

func (t *Tree[K, V]) traverseNode(n *node[K, V], fn func(e *Entry[K, V]) bool) bool {
	if n.leaf() {
		for _, e := range n.entries {
			if !fn(e) {
				return false
			}
		}
		return true
	}
	for i, child := range n.children {
		if !t.traverseNode(child, fn) {
			return false
		}
		if i < len(n.entries) && !fn(n.entries[i]) {
			return false
		}
	}
	return true
}

// All returns a restartable in-order iterator over all entries, for use with
// range-over-func. The tree must not be mutated while a walk is in progress.
func (t *Tree[K, V]) All() iter.Seq[*Entry[K, V]] {
	return func(yield func(*Entry[K, V]) bool) {
		t.Traverse(yield)
	}
}
