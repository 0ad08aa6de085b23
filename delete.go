package btree

// Top-down deletion in the grow-then-descend style: before stepping into a
// child that sits at the occupancy floor, the child is repaired by borrowing
// from a sibling through the parent separator, or by merging with a sibling
// and pulling the separator down. A hit in an internal node is replaced by
// its in-order predecessor, so physical removal always happens in a leaf.

type removeMode int

const (
	removeTarget removeMode = iota // remove one specific entry
	removeMax                      // remove the largest entry in the subtree
)

// Delete removes and returns the earliest-inserted entry with key.
//
// A key with no entries is a no-op and returns nil. Note that the tree may
// rebalance even when nothing is removed.
func (t *Tree[K, V]) Delete(key K) *Entry[K, V] {
	return t.DeleteEntry(t.findFirst(key))
}

// DeleteEntry removes a specific entry by identity.
//
// It returns the removed entry, or nil if e is nil or no longer stored.
func (t *Tree[K, V]) DeleteEntry(e *Entry[K, V]) *Entry[K, V] {
	if t == nil || t.root == nil || e == nil {
		return nil
	}
	removed := t.removeFrom(t.root, e, removeTarget)
	t.collapseRoot()
	return removed
}

// DeleteAll removes every entry stored under key and returns them in
// insertion order.
func (t *Tree[K, V]) DeleteAll(key K) []*Entry[K, V] {
	var removed []*Entry[K, V]
	for {
		e := t.Delete(key)
		if e == nil {
			return removed
		}
		removed = append(removed, e)
	}
}

// collapseRoot repairs the root after a delete pass. Pulling the last
// separator out of the root merges its children into one, which is the only
// way the tree shrinks in height.
func (t *Tree[K, V]) collapseRoot() {
	if t.root == nil || len(t.root.entries) > 0 {
		return
	}
	if t.root.leaf() {
		assert(t.root.size == 0, "empty root leaf with non-zero subtree size")
		t.root = nil
		t.height = 0
		return
	}
	assert(len(t.root.children) == 1, "entryless root must have exactly one child")
	t.root = t.root.children[0]
	t.height--
	T().Debugf("btree: root collapsed, height now %d", t.height)
}

// removeFrom removes one entry from the subtree rooted at n and returns it,
// or nil when the target is not stored. n must hold more than minEntries
// entries unless it is the root, which removeFrom preserves for all children
// it descends into.
func (t *Tree[K, V]) removeFrom(n *node[K, V], target *Entry[K, V], mode removeMode) *Entry[K, V] {
	var i int
	var found bool
	switch mode {
	case removeMax:
		if n.leaf() {
			n.size--
			return n.popEntry()
		}
		i = len(n.entries)
	case removeTarget:
		i, found = n.findEntry(target)
		if n.leaf() {
			if !found {
				return nil
			}
			n.size--
			return n.removeEntryAt(i)
		}
	}
	if len(n.children[i].entries) <= t.minEntries() {
		return t.growChildAndRemove(n, i, target, mode)
	}
	child := n.children[i]
	if found {
		// Replace the hit with its in-order predecessor, the rightmost entry
		// of the left child subtree; removal terminates in a leaf there.
		out := n.entries[i]
		n.entries[i] = t.removeFrom(child, nil, removeMax)
		n.size--
		return out
	}
	removed := t.removeFrom(child, target, mode)
	if removed != nil {
		n.size--
	}
	return removed
}

// growChildAndRemove brings child i above the occupancy floor, then redoes
// the removal on n. Borrow and merge move entries strictly inside n's
// subtree, so n.size is unaffected here.
func (t *Tree[K, V]) growChildAndRemove(n *node[K, V], i int, target *Entry[K, V], mode removeMode) *Entry[K, V] {
	if i > 0 && len(n.children[i-1].entries) > t.minEntries() {
		// Rotate through the parent separator from the left sibling.
		child, left := n.children[i], n.children[i-1]
		child.insertEntryAt(0, n.entries[i-1])
		n.entries[i-1] = left.popEntry()
		left.size--
		child.size++
		if !left.leaf() {
			moved := left.popChild()
			child.insertChildAt(0, moved)
			left.size -= moved.size
			child.size += moved.size
		}
	} else if i < len(n.entries) && len(n.children[i+1].entries) > t.minEntries() {
		// Rotate through the parent separator from the right sibling.
		child, right := n.children[i], n.children[i+1]
		child.entries = append(child.entries, n.entries[i])
		n.entries[i] = right.removeEntryAt(0)
		right.size--
		child.size++
		if !right.leaf() {
			moved := right.removeChildAt(0)
			child.children = append(child.children, moved)
			right.size -= moved.size
			child.size += moved.size
		}
	} else {
		// No sibling can spare an entry: merge with one and pull the
		// separator down. Both nodes sit at the floor, so the merged node
		// holds exactly 2t-1 entries.
		if i >= len(n.entries) {
			i--
		}
		child := n.children[i]
		sep := n.removeEntryAt(i)
		right := n.removeChildAt(i + 1)
		child.entries = append(child.entries, sep)
		child.entries = append(child.entries, right.entries...)
		child.children = append(child.children, right.children...)
		child.size += right.size + 1
	}
	return t.removeFrom(n, target, mode)
}
