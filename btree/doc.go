/*
Package btree implements a classic B-tree over signed integer keys.

The package is intentionally not a generic map/set container. A tree holds
plain ordered keys and no payload; it exists to be built, traversed and handed
to checkers. Construction happens by ordered insertion with pre-emptive node
splitting (single pass, top-down, no backtracking), as described by Cormen et
al. for a tree of minimum degree t:

  - every node holds at most 2t-1 keys and at most 2t children,
  - every non-root node holds at least t-1 keys,
  - an internal node with m keys has exactly m+1 children,
  - all leaves live at the same depth.

Trees may also be assembled from hand-made nodes (see NewNode and FromRoot).
Such trees are not checked on assembly; package validate reports every
invariant violation of an arbitrary tree shape.

Current status:
  - insertion with split propagation (no deletion),
  - in-order, preorder and postorder key traversals,
  - point lookup.

A tree is not safe for concurrent writers. Concurrent readers of an otherwise
idle tree are fine.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'multiway'
func tracer() tracing.Trace {
	return tracing.Select("multiway")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
