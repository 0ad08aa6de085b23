package btree

import (
	"math/rand"
	"testing"
)

func TestDeleteSpecificEntry(t *testing.T) {
	tree := newTestTree(t, 2)
	for k := range 14 {
		tree.Insert(k, "")
	}
	for range 7 {
		tree.Insert(4, "")
	}
	run := tree.Search(4)
	target := run[3]
	removed := tree.DeleteEntry(target)
	if removed != target {
		t.Fatalf("expected to remove the targeted duplicate, got %v", removed)
	}
	checkTree(t, tree)
	for _, e := range tree.Search(4) {
		if e == target {
			t.Fatalf("removed entry still found by search")
		}
	}
	// Deleting a removed entry again is a no-op.
	if tree.DeleteEntry(target) != nil {
		t.Fatalf("expected second delete of the same entry to be a no-op")
	}
	checkTree(t, tree)
}

func TestDeleteAllReturnsRunInInsertionOrder(t *testing.T) {
	tree := newTestTree(t, 2)
	var run []*Entry[int, string]
	for k := range 10 {
		tree.Insert(k, "")
	}
	for range 9 {
		run = append(run, tree.Insert(4, ""))
	}
	run = append([]*Entry[int, string]{tree.Search(4)[0]}, run...)
	removed := tree.DeleteAll(4)
	if len(removed) != len(run) {
		t.Fatalf("expected %d removed entries, got %d", len(run), len(removed))
	}
	for i := range run {
		if removed[i] != run[i] {
			t.Fatalf("delete_all out of insertion order at %d", i)
		}
	}
	if tree.Contains(4) {
		t.Fatalf("expected no entries left for key 4")
	}
	checkTree(t, tree)
}

func TestDeleteNonexistentKeyIsNoOp(t *testing.T) {
	tree := newTestTree(t, 2)
	for k := range 10 {
		tree.Insert(k, "")
	}
	if tree.Delete(40) != nil {
		t.Fatalf("expected delete of absent key to return nil")
	}
	if tree.Len() != 10 {
		t.Fatalf("expected length unchanged, got %d", tree.Len())
	}
	checkTree(t, tree)
}

func TestInsertDeleteRoundTripEmptiesTree(t *testing.T) {
	tree := newTestTree(t, 2)
	rng := rand.New(rand.NewSource(7))
	var entries []*Entry[int, string]
	for range 500 {
		entries = append(entries, tree.Insert(rng.Intn(50), ""))
	}
	checkTree(t, tree)
	rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	for i, e := range entries {
		if tree.DeleteEntry(e) != e {
			t.Fatalf("failed to remove entry %d", i)
		}
		if i%50 == 0 {
			checkTree(t, tree)
		}
	}
	if tree.Len() != 0 || tree.Height() != 0 || tree.root != nil {
		t.Fatalf("expected empty tree, len=%d height=%d", tree.Len(), tree.Height())
	}
	checkTree(t, tree)
}

func TestDeleteShrinksHeight(t *testing.T) {
	tree := newTestTree(t, 2)
	for k := range 4 {
		tree.Insert(k, "")
	}
	if tree.Height() != 2 {
		t.Fatalf("expected height 2 after split, got %d", tree.Height())
	}
	tree.Delete(0)
	tree.Delete(1)
	tree.Delete(2)
	if tree.Height() != 1 {
		t.Fatalf("expected height to merge back to 1, got %d", tree.Height())
	}
	checkTree(t, tree)
}

func TestDeleteDescendingAcrossMerges(t *testing.T) {
	tree := newTestTree(t, 4)
	for k := range 1000 {
		tree.Insert(k, "")
	}
	checkTree(t, tree)
	for k := 999; k >= 0; k-- {
		if tree.Delete(k) == nil {
			t.Fatalf("failed to delete key %d", k)
		}
	}
	if tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("expected empty tree, len=%d height=%d", tree.Len(), tree.Height())
	}
}

func TestDeleteEveryOtherKey(t *testing.T) {
	tree := newTestTree(t, 3)
	for k := range 300 {
		tree.Insert(k, "")
	}
	for k := 0; k < 300; k += 2 {
		if tree.Delete(k) == nil {
			t.Fatalf("failed to delete key %d", k)
		}
	}
	checkTree(t, tree)
	keys := collectKeys(tree)
	if len(keys) != 150 {
		t.Fatalf("expected 150 keys left, got %d", len(keys))
	}
	for i, k := range keys {
		if k != 2*i+1 {
			t.Fatalf("unexpected key %d at position %d", k, i)
		}
	}
}
