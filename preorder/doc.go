/*
Package preorder rebuilds B-trees from their preorder key emission and
serializes key streams.

A preorder emission lists the keys of a node together, in ascending order,
before any of its children are visited. The structure of the tree is not part
of the stream; Build infers it from value ordering alone:

  - keys are taken into the current node while the node has room, the key lies
    inside the range inherited from the parent, and the key does not drop
    below the previously taken key;
  - a drop in value after the node's keys signals that children follow.

Reconstruction is best-effort. It is correct for streams emitted by a
conforming B-tree, but it will not necessarily reproduce the very tree that
emitted a stream, only some tree with the same preorder emission. Streams which
cannot be parsed under these rules fail with ErrConstruction; there is no
partial result.

Encode and Decode move key streams through an io.Writer/io.Reader with optional
compression and a checksum.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package preorder

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'multiway'
func tracer() tracing.Trace {
	return tracing.Select("multiway")
}
