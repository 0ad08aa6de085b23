package btree

import "testing"

func nodeWithKeys(keys ...int) *node[int, string] {
	n := &node[int, string]{}
	for seq, k := range keys {
		n.entries = append(n.entries, &Entry[int, string]{key: k, seq: uint64(seq)})
	}
	n.size = len(n.entries)
	return n
}

func TestKeyRangeBounds(t *testing.T) {
	n := nodeWithKeys(2, 4, 4, 4, 7, 9)
	cases := []struct {
		key        int
		start, end int
	}{
		{1, 0, 0},
		{2, 0, 1},
		{3, 1, 1},
		{4, 1, 4},
		{5, 4, 4},
		{7, 4, 5},
		{9, 5, 6},
		{10, 6, 6},
	}
	for _, c := range cases {
		start, end := n.keyRange(c.key)
		if start != c.start || end != c.end {
			t.Fatalf("keyRange(%d) = (%d, %d), want (%d, %d)",
				c.key, start, end, c.start, c.end)
		}
	}
}

func TestKeyRangeOnEmptyNode(t *testing.T) {
	n := nodeWithKeys()
	if start, end := n.keyRange(5); start != 0 || end != 0 {
		t.Fatalf("keyRange on empty node = (%d, %d), want (0, 0)", start, end)
	}
}

func TestFindEntryRequiresIdentity(t *testing.T) {
	n := nodeWithKeys(4, 4, 4)
	target := n.entries[1]
	if i, found := n.findEntry(target); !found || i != 1 {
		t.Fatalf("findEntry = (%d, %v), want (1, true)", i, found)
	}
	// An equal-keyed entry that is not in the node must not be found.
	stranger := &Entry[int, string]{key: 4, seq: 100}
	if _, found := n.findEntry(stranger); found {
		t.Fatalf("findEntry matched an entry the node does not hold")
	}
}
