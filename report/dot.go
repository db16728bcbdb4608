package report

import (
	"fmt"
	"io"

	"github.com/npillmayer/multiway/btree"
)

type nodeids struct {
	idTable map[*btree.Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*btree.Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *btree.Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *btree.Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are shaded by depth.
func Dot(w io.Writer, tree *btree.Tree) error {
	cw := &consoleWriter{w: w}
	cw.line("strict digraph {")
	cw.line("\tnode [fontname=Arial,fontsize=12];")
	ids := newtable()
	nodelist, edgelist := "", ""
	tree.Walk(func(n *btree.Node, depth int) bool {
		id := ids.alloc(n)
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\"%s];\n", id, keyText(n.Keys()), nodeDotStyles(n, depth))
		for i := 0; i < n.ChildCount(); i++ {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", id, ids.alloc(n.Child(i)))
		}
		return true
	})
	cw.line(nodelist + edgelist + "}")
	return cw.err
}

func nodeDotStyles(n *btree.Node, depth int) string {
	s := ",style=filled"
	if n.IsLeaf() {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=record"
	}
	return s + fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
