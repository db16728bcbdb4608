/*
Command btcheck builds or reconstructs a B-tree from integer keys and reports
whether it satisfies the B-tree invariants.

Usage:

	btcheck [flags] [keys...]

Keys are taken from the command line, from a key file (-file), from an encoded
preorder stream (-decode) or generated at random (-random n). In insert mode the
keys are inserted one at a time; in rebuild mode they are read as the preorder
key emission of a tree and the tree is reconstructed from it.

	btcheck -t 2 10 20 5 6
	btcheck -mode rebuild -t 2 10 20 1 2 3 4 11 12 21 22
	btcheck -random 1000 -t 3 -encode keys.btpo -compress snappy
	btcheck -mode rebuild -decode keys.btpo -format dot | dot -Tsvg > tree.svg

The exit status is 1 if the tree cannot be built or violates an invariant.
*/
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
