package btree

import (
	"strings"
	"testing"
)

func TestWalkNodesCoversEveryNode(t *testing.T) {
	tree := newTestTree(t, 2)
	for k := range 30 {
		tree.Insert(k, "")
	}
	checkTree(t, tree)
	var (
		nodes    int
		entries  int
		maxDepth int
	)
	tree.WalkNodes(func(info NodeInfo) bool {
		nodes++
		entries += info.Entries
		if info.Depth > maxDepth {
			maxDepth = info.Depth
		}
		if info.Depth == 0 && info.Size != tree.Len() {
			t.Fatalf("root size %d, want %d", info.Size, tree.Len())
		}
		if len(info.Keys) != info.Entries {
			t.Fatalf("node reports %d entries but %d keys", info.Entries, len(info.Keys))
		}
		return true
	})
	if entries != tree.Len() {
		t.Fatalf("walk saw %d entries, tree holds %d", entries, tree.Len())
	}
	if maxDepth+1 != tree.Height() {
		t.Fatalf("walk reached depth %d, height is %d", maxDepth, tree.Height())
	}
	if nodes < tree.Height() {
		t.Fatalf("implausible node count %d for height %d", nodes, tree.Height())
	}
}

func TestWalkNodesEarlyStop(t *testing.T) {
	tree := newTestTree(t, 2)
	for k := range 30 {
		tree.Insert(k, "")
	}
	visited := 0
	tree.WalkNodes(func(info NodeInfo) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Fatalf("expected walk to stop after 3 nodes, visited %d", visited)
	}
}

func TestWalkNodesOnEmptyTree(t *testing.T) {
	tree := newTestTree(t, 2)
	tree.WalkNodes(func(info NodeInfo) bool {
		t.Fatalf("unexpected node on empty tree: %+v", info)
		return false
	})
}

func TestDumpOutput(t *testing.T) {
	tree := newTestTree(t, 2)
	for k := range 10 {
		tree.Insert(k, "")
	}
	var b strings.Builder
	tree.Dump(&b)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "b-tree: order 4, min degree 2,") {
		t.Fatalf("unexpected dump header: %q", lines[0])
	}
	if !strings.Contains(lines[0], "entries 10") {
		t.Fatalf("header misses tree stats: %q", lines[0])
	}
	if !strings.Contains(lines[1], "children#") {
		t.Fatalf("expected root line to report children, got %q", lines[1])
	}
	// Lines below the root are indented one level per depth.
	if !strings.HasPrefix(lines[2], "    node[") {
		t.Fatalf("expected indented node line, got %q", lines[2])
	}
}

func TestTree2Dot(t *testing.T) {
	tree := newTestTree(t, 2)
	for k := range 10 {
		tree.Insert(k, "")
	}
	var b strings.Builder
	Tree2Dot(tree, &b)
	out := b.String()
	if !strings.HasPrefix(out, "strict digraph {\n") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("not a DOT digraph: %q", out)
	}
	if !strings.Contains(out, "->") {
		t.Fatalf("expected edges in DOT output for a tree of height %d", tree.Height())
	}
	// One label per node.
	labels := strings.Count(out, "label=")
	nodes := 0
	tree.WalkNodes(func(NodeInfo) bool { nodes++; return true })
	if labels != nodes {
		t.Fatalf("expected %d labelled nodes, found %d label attributes", nodes, labels)
	}
}
