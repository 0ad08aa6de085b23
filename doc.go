/*
Package btree provides an in-memory, order-preserving B-tree that tolerates
duplicate keys and supports positional (rank and slice) access.

The package is intentionally not a map replacement. Entries with equal keys
keep their insertion order (FIFO): the earliest-inserted duplicate is the
leftmost in traversal order and the first one removed by a key-only delete.
Every node carries a subtree entry count, which turns the tree into an
order-statistic structure: "give me the Nth entry" and slice queries resolve
in O(log n) without materializing the sequence.

Overview of the building blocks:
  - `Entry`, a stored key/value pair with identity, tie-broken among equal
    keys by a per-tree insertion sequence,
  - in-node binary range search for the bounds of a duplicate-key run,
  - single-pass top-down insertion with split-before-descend,
  - top-down deletion with sibling borrow and merge rebalancing,
  - rank and slice access routed through subtree sizes,
  - in-order traversal with early stop and a restartable iterator,
  - a strict structural invariant checker (`Check`) for tests,
  - debug dumps as indented per-level text or Graphviz DOT.

The tree is a single-threaded container. All reads and mutations must be
externally serialized; mutating the tree during an in-progress traversal is
undefined behavior.

# BSD License

Copyright (c) Forrest Zhang <forrest@263.net>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
