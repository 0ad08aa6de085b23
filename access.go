package btree

import "fmt"

// Positional access over the global (key, seq) order. Subtree sizes route a
// rank to its entry in O(log n) without materializing the sequence.

// At returns the entry at rank in the tree's global order.
//
// rank is zero-based; negative ranks count from the end (-1 is the last
// entry). Ranks outside [-Len(), Len()-1] fail with ErrIndexOutOfBounds.
func (t *Tree[K, V]) At(rank int) (*Entry[K, V], error) {
	size := t.Len()
	r := rank
	if r < 0 {
		r += size
	}
	if r < 0 || r >= size {
		return nil, fmt.Errorf("%w: rank %d outside [%d, %d]",
			ErrIndexOutOfBounds, rank, -size, size-1)
	}
	return t.atNode(t.root, r), nil
}

// atNode resolves a rank that is known to be inside n's subtree.
func (t *Tree[K, V]) atNode(n *node[K, V], rank int) *Entry[K, V] {
	assert(n != nil, "atNode called with nil node")
descend:
	for !n.leaf() {
		assert(rank < n.size, "atNode rank outside subtree")
		for i, child := range n.children {
			if rank < child.size {
				n = child
				continue descend
			}
			rank -= child.size
			if rank == 0 {
				return n.entries[i]
			}
			rank--
		}
		assert(false, "atNode rank routing exceeded subtree size")
	}
	return n.entries[rank]
}

// Slice returns the entries selected by a Python-style slice over the global
// order: half-open, with negative indices counting from the end and step
// setting direction and stride. Out-of-range bounds are clamped, so every
// slice request is valid except step 0. A start/stop pair inconsistent with
// the step direction yields an empty result.
func (t *Tree[K, V]) Slice(start, stop, step int) ([]*Entry[K, V], error) {
	if step == 0 {
		return nil, ErrInvalidSliceStep
	}
	size := t.Len()
	start = adjustSliceIndex(start, size, step)
	stop = adjustSliceIndex(stop, size, step)
	var count int
	if step > 0 {
		if stop > start {
			count = (stop - start + step - 1) / step
		}
	} else {
		if start > stop {
			count = (start - stop - step - 1) / -step
		}
	}
	out := make([]*Entry[K, V], 0, count)
	for k, r := 0, start; k < count; k, r = k+1, r+step {
		out = append(out, t.atNode(t.root, r))
	}
	return out, nil
}

// adjustSliceIndex clamps a slice bound the way CPython does: negative
// indices shift by size, and overshoot clamps to the walkable range of the
// step direction.
func adjustSliceIndex(idx, size, step int) int {
	if idx < 0 {
		idx += size
		if idx < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return idx
	}
	if idx >= size {
		if step < 0 {
			return size - 1
		}
		return size
	}
	return idx
}

// DeleteAt removes and returns the entry at rank. Ranks follow the same
// rules as At.
func (t *Tree[K, V]) DeleteAt(rank int) (*Entry[K, V], error) {
	e, err := t.At(rank)
	if err != nil {
		return nil, err
	}
	removed := t.DeleteEntry(e)
	assert(removed == e, "DeleteAt: resolved entry was not removed")
	return removed, nil
}
