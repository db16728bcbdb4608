package report

import (
	"fmt"
	"io"

	"github.com/npillmayer/multiway/btree"
	"github.com/npillmayer/multiway/validate"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes an HTML fragment for tree and rep to w. The tree is rendered as
// nested unordered lists, one list item per node, followed by the list of
// violations. rep may be nil.
//
//	<div class="btree">
//	  <ul class="tree"><li><span class="node">10</span><ul>…</ul></li></ul>
//	  <p class="status ok">…</p>
//	  <ul class="violations">…</ul>
//	</div>
func HTML(w io.Writer, tree *btree.Tree, rep *validate.Report) error {
	div := element(atom.Div, "btree")
	if !tree.IsEmpty() {
		list := element(atom.Ul, "tree")
		list.AppendChild(nodeItem(tree.Root()))
		div.AppendChild(list)
	}
	if rep != nil {
		appendReport(div, rep)
	}
	return html.Render(w, div)
}

func nodeItem(n *btree.Node) *html.Node {
	class := "node"
	if n.IsLeaf() {
		class = "node leaf"
	}
	span := element(atom.Span, class)
	span.AppendChild(text(keyText(n.Keys())))
	li := element(atom.Li, "")
	li.AppendChild(span)
	if !n.IsLeaf() {
		list := element(atom.Ul, "")
		for _, child := range n.Children() {
			list.AppendChild(nodeItem(child))
		}
		li.AppendChild(list)
	}
	return li
}

func appendReport(div *html.Node, rep *validate.Report) {
	status := element(atom.P, "status ok")
	msg := fmt.Sprintf("all invariants hold (%d nodes, %d leaves)", rep.Nodes, len(rep.Leaves))
	if !rep.OK {
		status = element(atom.P, "status invalid")
		msg = fmt.Sprintf("%d violations", rep.ViolationCount())
	}
	status.AppendChild(text(msg))
	div.AppendChild(status)
	if rep.OK {
		return
	}
	list := element(atom.Ul, "violations")
	add := func(kind string, items []string) {
		for _, item := range items {
			li := element(atom.Li, "violation "+kind)
			li.AppendChild(text(item))
			list.AppendChild(li)
		}
	}
	add("key-count", stringers(rep.KeyCountViolations))
	add("depth", stringers(rep.DepthViolations))
	add("range", stringers(rep.RangeViolations))
	add("child-count", stringers(rep.ChildCountViolations))
	div.AppendChild(list)
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func keyText(keys []btree.Key) string {
	s := fmt.Sprint(keys)
	return s[1 : len(s)-1]
}
