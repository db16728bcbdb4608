/*
Package validate checks B-trees for structural invariants and reports every
violation found.

Unlike btree.Tree.Check, which stops at the first problem, the checks of this
package walk the whole tree and collect violations as data:

  - key count: non-root nodes hold t-1 to 2t-1 keys, the root at most 2t-1,
  - leaf depth: all leaves sit at the same depth,
  - key range: keys ascend strictly within a node and stay inside the bounds
    set by the separator keys of the ancestors,
  - child count: an internal node with m keys has m+1 children.

Validation never mutates a tree. It is safe to validate the same idle tree
from several goroutines.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package validate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'multiway'
func tracer() tracing.Trace {
	return tracing.Select("multiway")
}
