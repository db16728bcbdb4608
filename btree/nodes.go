package btree

// Key is the ordered scalar stored in a tree.
type Key = int64

// Node is a B-tree node. A node without children is a leaf.
//
// Each node is exclusively owned by its parent (the root by its Tree); there
// are no back-pointers and no node is shared between subtrees.
type Node struct {
	keys     []Key
	children []*Node
}

// NewNode assembles a node from keys and children. The key slice is copied.
//
// NewNode does not check any B-tree invariant. It is meant for reconstructing
// trees from external representations and for building test shapes; run the
// result through package validate before trusting it. Children must not be nil.
func NewNode(keys []Key, children ...*Node) *Node {
	for _, child := range children {
		assert(child != nil, "NewNode called with nil child")
	}
	n := &Node{keys: append([]Key(nil), keys...)}
	if len(children) > 0 {
		n.children = append([]*Node(nil), children...)
	}
	return n
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// KeyCount returns the number of keys held by n.
func (n *Node) KeyCount() int {
	return len(n.keys)
}

// Keys returns a copy of the keys of n.
func (n *Node) Keys() []Key {
	return append([]Key(nil), n.keys...)
}

// Key returns the key at position i.
func (n *Node) Key(i int) Key {
	return n.keys[i]
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at position i.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Children returns a copy of the child list of n.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}
