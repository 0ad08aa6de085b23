/*
Package display renders b-tree structure dumps for consoles.

It is a pure consumer of the tree's read-only WalkNodes contract: one
indented, optionally colorized line per node, clipped to the terminal
width. Nothing in this package touches tree internals or mutates a tree.

# BSD License

Copyright (c) Forrest Zhang <forrest@263.net>

Please refer to the License file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
