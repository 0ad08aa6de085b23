package btree

// Search returns every entry stored under key, in insertion order.
//
// Absence is not an error: a key with no entries yields an empty result. A
// duplicate run may straddle node boundaries, so the walk descends into every
// child spanned by the in-node run and interleaves in-node matches, which is
// exactly the global (key, seq) order.
func (t *Tree[K, V]) Search(key K) []*Entry[K, V] {
	if t == nil || t.root == nil {
		return nil
	}
	return t.searchNode(t.root, key, nil)
}

func (t *Tree[K, V]) searchNode(n *node[K, V], key K, matches []*Entry[K, V]) []*Entry[K, V] {
	start, end := n.keyRange(key)
	if n.leaf() {
		return append(matches, n.entries[start:end]...)
	}
	for i := start; i <= end; i++ {
		matches = t.searchNode(n.children[i], key, matches)
		if i < end {
			matches = append(matches, n.entries[i])
		}
	}
	return matches
}

// Contains reports whether at least one entry is stored under key.
func (t *Tree[K, V]) Contains(key K) bool {
	for n := t.root; n != nil; {
		i := n.keyRangeStart(key)
		if i < len(n.entries) && n.entries[i].key == key {
			return true
		}
		if n.leaf() {
			return false
		}
		n = n.children[i]
	}
	return false
}

// findFirst returns the earliest-inserted entry with key, or nil.
//
// The first match in global order is the leftmost one: descend left of the
// first in-node match and let any deeper match shadow the ancestor's.
func (t *Tree[K, V]) findFirst(key K) *Entry[K, V] {
	var first *Entry[K, V]
	for n := t.root; n != nil; {
		i := n.keyRangeStart(key)
		if i < len(n.entries) && n.entries[i].key == key {
			first = n.entries[i]
		}
		if n.leaf() {
			break
		}
		n = n.children[i]
	}
	return first
}
