package btree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// Read-only structural dumps for debugging. Nothing here mutates the tree,
// and production code paths never depend on this file.

// NodeInfo describes one node for structural walks and external dump tools.
type NodeInfo struct {
	Depth    int  // root level is 0
	Index    int  // position within the level, left to right
	Leaf     bool
	Entries  int
	Children int
	Size     int      // subtree entry count
	Keys     []string // formatted entry keys, in node order
}

// WalkNodes visits every node level by level, left to right. The walk stops
// early if fn returns false. This is the read-only contract consumed by the
// display package and by invariant tooling.
func (t *Tree[K, V]) WalkNodes(fn func(info NodeInfo) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	level := []*node[K, V]{t.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*node[K, V]
		for index, n := range level {
			keys := make([]string, len(n.entries))
			for i, e := range n.entries {
				keys[i] = fmt.Sprintf("%v", e.key)
			}
			info := NodeInfo{
				Depth:    depth,
				Index:    index,
				Leaf:     n.leaf(),
				Entries:  len(n.entries),
				Children: len(n.children),
				Size:     n.size,
				Keys:     keys,
			}
			if !fn(info) {
				return
			}
			next = append(next, n.children...)
		}
		level = next
	}
}

// Dump renders node contents and child counts per level as indented text.
func (t *Tree[K, V]) Dump(w io.Writer) {
	d := t.cfg.MinDegree
	fmt.Fprintf(w, "b-tree: order %d, min degree %d, entries/node %d-%d, height %d, entries %d\n",
		2*d, d, d-1, 2*d-1, t.Height(), t.Len())
	t.WalkNodes(func(info NodeInfo) bool {
		fmt.Fprintf(w, "%snode[%d]: [%s]", strings.Repeat("    ", info.Depth),
			info.Entries, strings.Join(info.Keys, " "))
		if !info.Leaf {
			fmt.Fprintf(w, " children# %d", info.Children)
		}
		fmt.Fprintln(w)
		return true
	})
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[K cmp.Ordered, V any](t *Tree[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=box];\n")
	if t != nil && t.root != nil {
		ids := make(map[*node[K, V]]int)
		alloc := func(n *node[K, V]) int {
			if id, ok := ids[n]; ok {
				return id
			}
			ids[n] = len(ids) + 1
			return len(ids)
		}
		var walk func(n *node[K, V])
		walk = func(n *node[K, V]) {
			ID := alloc(n)
			keys := make([]string, len(n.entries))
			for i, e := range n.entries {
				keys[i] = fmt.Sprintf("%v", e.key)
			}
			label := fmt.Sprintf("[%s]\\n#%d", strings.Join(keys, " "), n.size)
			fmt.Fprintf(w, "\"%d\" [label=\"%s\"];\n", ID, label)
			for _, child := range n.children {
				fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", ID, alloc(child))
			}
			for _, child := range n.children {
				walk(child)
			}
		}
		walk(t.root)
	}
	io.WriteString(w, "}\n")
}
