package btree

import "cmp"

// Tree is an in-memory, order-statistic B-tree with FIFO duplicate keys.
//
// K is the key type, ordered by the language ordering of cmp.Ordered. V is
// the client value type. Entries are globally ordered by (key, insertion
// sequence), so equal keys keep their insertion order.
//
// The zero Tree is not usable; create trees with New.
type Tree[K cmp.Ordered, V any] struct {
	cfg     Config
	root    *node[K, V]
	height  int // 0 means empty tree, 1 means a leaf root
	nextSeq uint64
}

// New creates an empty tree with validated configuration.
func New[K cmp.Ordered, V any](cfg Config) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config {
	return t.cfg
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.size
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// MinDegree returns the effective minimum degree t of the tree.
func (t *Tree[K, V]) MinDegree() int {
	return t.cfg.MinDegree
}

// maxEntries is the entry capacity 2t-1 of a node.
func (t *Tree[K, V]) maxEntries() int {
	return 2*t.cfg.MinDegree - 1
}

// minEntries is the entry floor t-1 of every non-root node.
func (t *Tree[K, V]) minEntries() int {
	return t.cfg.MinDegree - 1
}

// newNode allocates a node with entry and child storage preallocated to the
// split thresholds, so node edits never reallocate.
func (t *Tree[K, V]) newNode() *node[K, V] {
	return &node[K, V]{
		entries:  make([]*Entry[K, V], 0, t.maxEntries()+1),
		children: make([]*node[K, V], 0, t.maxEntries()+2),
	}
}

// Insert stores a new entry for key and returns its handle.
//
// Among entries with equal keys the new one sorts last (FIFO). The returned
// handle identifies the entry for DeleteEntry.
func (t *Tree[K, V]) Insert(key K, value V) *Entry[K, V] {
	e := &Entry[K, V]{key: key, value: value}
	return t.Append(e)
}

// Append inserts an entry object, assigning it a fresh insertion sequence.
//
// It is the "+=" form of Insert and may be used to re-add an entry that was
// removed earlier; the entry re-enters at the tail of its duplicate run.
func (t *Tree[K, V]) Append(e *Entry[K, V]) *Entry[K, V] {
	if e == nil {
		return nil
	}
	e.seq = t.nextSeq
	t.nextSeq++
	if t.root == nil {
		t.root = t.newNode()
		t.height = 1
	}
	if len(t.root.entries) >= t.maxEntries() {
		// Splitting a full root before descending is the only way the tree
		// grows in height.
		mid, right := t.splitNode(t.root)
		oldRoot := t.root
		t.root = t.newNode()
		t.root.entries = append(t.root.entries, mid)
		t.root.children = append(t.root.children, oldRoot, right)
		t.root.size = oldRoot.size + right.size + 1
		t.height++
		T().Debugf("btree: root split, height now %d", t.height)
	}
	t.insertNonFull(t.root, e)
	return e
}

// insertNonFull descends from a non-full node to the target leaf, splitting
// any full child before stepping into it (single-pass top-down insertion).
func (t *Tree[K, V]) insertNonFull(n *node[K, V], e *Entry[K, V]) {
	for {
		assert(len(n.entries) < t.maxEntries(), "insertNonFull called on a full node")
		n.size++
		i := n.keyRangeEnd(e.key)
		if n.leaf() {
			n.insertEntryAt(i, e)
			return
		}
		if len(n.children[i].entries) >= t.maxEntries() {
			mid, right := t.splitNode(n.children[i])
			n.insertEntryAt(i, mid)
			n.insertChildAt(i+1, right)
			if mid.less(e) {
				i++ // new entry belongs in the second half
			}
		}
		n = n.children[i]
	}
}

// splitNode splits a full node around its middle entry. The node keeps the
// left half, the returned sibling takes the right half, and the middle entry
// is handed to the caller for promotion into the parent.
func (t *Tree[K, V]) splitNode(n *node[K, V]) (*Entry[K, V], *node[K, V]) {
	d := t.cfg.MinDegree
	assert(len(n.entries) == t.maxEntries(), "splitNode called on a non-full node")
	mid := n.entries[d-1]
	right := t.newNode()
	right.entries = append(right.entries, n.entries[d:]...)
	right.size = len(right.entries)
	if !n.leaf() {
		right.children = append(right.children, n.children[d:]...)
		n.truncateChildren(d)
		for _, child := range right.children {
			right.size += child.size
		}
	}
	n.truncateEntries(d - 1)
	n.size -= right.size + 1
	return mid, right
}
