package btree

import "cmp"

// node is a B-tree node.
//
// It must at all times maintain the invariant that either
//   - len(children) == 0 (leaf), or
//   - len(children) == len(entries) + 1.
//
// size is the number of entries in the whole subtree rooted here, including
// this node's own entries. Structural edit helpers below do not touch size;
// the insert/delete paths account for it explicitly.
type node[K cmp.Ordered, V any] struct {
	entries  []*Entry[K, V]
	children []*node[K, V]
	size     int
}

func (n *node[K, V]) leaf() bool { return len(n.children) == 0 }

// insertEntryAt inserts an entry at index, pushing subsequent entries forward.
func (n *node[K, V]) insertEntryAt(index int, e *Entry[K, V]) {
	assert(index >= 0 && index <= len(n.entries), "insertEntryAt index out of range")
	n.entries = append(n.entries, nil)
	copy(n.entries[index+1:], n.entries[index:])
	n.entries[index] = e
}

// removeEntryAt removes and returns the entry at index.
func (n *node[K, V]) removeEntryAt(index int) *Entry[K, V] {
	assert(index >= 0 && index < len(n.entries), "removeEntryAt index out of range")
	e := n.entries[index]
	copy(n.entries[index:], n.entries[index+1:])
	n.entries[len(n.entries)-1] = nil
	n.entries = n.entries[:len(n.entries)-1]
	return e
}

// popEntry removes and returns the last entry.
func (n *node[K, V]) popEntry() *Entry[K, V] {
	return n.removeEntryAt(len(n.entries) - 1)
}

// truncateEntries keeps the first index entries and clears the rest.
func (n *node[K, V]) truncateEntries(index int) {
	var toClear []*Entry[K, V]
	n.entries, toClear = n.entries[:index], n.entries[index:]
	for i := range toClear {
		toClear[i] = nil
	}
}

func (n *node[K, V]) insertChildAt(index int, child *node[K, V]) {
	assert(index >= 0 && index <= len(n.children), "insertChildAt index out of range")
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

func (n *node[K, V]) removeChildAt(index int) *node[K, V] {
	assert(index >= 0 && index < len(n.children), "removeChildAt index out of range")
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	return child
}

func (n *node[K, V]) popChild() *node[K, V] {
	return n.removeChildAt(len(n.children) - 1)
}

func (n *node[K, V]) truncateChildren(index int) {
	var toClear []*node[K, V]
	n.children, toClear = n.children[:index], n.children[index:]
	for i := range toClear {
		toClear[i] = nil
	}
}

// findEntry returns the position of target in the (key, seq) order of this
// node's entries, and whether the entry at that position is target itself.
func (n *node[K, V]) findEntry(target *Entry[K, V]) (index int, found bool) {
	i := keyRangeSearch(n, func(e *Entry[K, V]) bool { return !e.less(target) })
	if i < len(n.entries) && n.entries[i] == target {
		return i, true
	}
	return i, false
}
