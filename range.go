package btree

import (
	"cmp"
	"sort"
)

// Binary range search over a node's ordered entries.
//
// Duplicate runs are located by key only; the insertion sequence orders
// entries inside a run but never shifts the run's boundaries.

// keyRangeSearch returns the first index whose entry satisfies pred, assuming
// pred is monotone over the node's entry order. O(log m) for m entries.
func keyRangeSearch[K cmp.Ordered, V any](n *node[K, V], pred func(*Entry[K, V]) bool) int {
	return sort.Search(len(n.entries), func(i int) bool {
		return pred(n.entries[i])
	})
}

// keyRangeStart returns the first index i with entries[i].key >= key: the
// left edge of the duplicate run of key, and the descent index for lookups.
func (n *node[K, V]) keyRangeStart(key K) int {
	return keyRangeSearch(n, func(e *Entry[K, V]) bool { return e.key >= key })
}

// keyRangeEnd returns the first index i with entries[i].key > key: one past
// the duplicate run, and the descent index for inserts (new equal keys go to
// the right of existing ones).
func (n *node[K, V]) keyRangeEnd(key K) int {
	return keyRangeSearch(n, func(e *Entry[K, V]) bool { return e.key > key })
}

// keyRange returns both run bounds; end-start is the in-node duplicate count.
func (n *node[K, V]) keyRange(key K) (start, end int) {
	return n.keyRangeStart(key), n.keyRangeEnd(key)
}
