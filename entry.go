package btree

import (
	"cmp"
	"fmt"
)

// Entry is a stored key/value pair with identity.
//
// Entries are created by the tree on insertion and remain valid handles until
// they are removed. Two entries with equal keys are distinct: the insertion
// sequence `seq` orders them FIFO and is never exposed to clients.
type Entry[K cmp.Ordered, V any] struct {
	key   K
	value V
	seq   uint64
}

// Key returns the entry key.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry value.
func (e *Entry[K, V]) Value() V { return e.value }

// SetValue replaces the entry value in place. The key is immutable.
func (e *Entry[K, V]) SetValue(v V) { e.value = v }

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.key, e.value)
}

// less orders entries by (key, seq). seq is unique per tree, so the order is
// strict for entries of the same tree.
func (e *Entry[K, V]) less(other *Entry[K, V]) bool {
	if e.key != other.key {
		return e.key < other.key
	}
	return e.seq < other.seq
}
