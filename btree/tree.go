package btree

import (
	"fmt"
	"strings"
)

// Tree is a B-tree of minimum degree t over integer keys.
//
// A tree created by New is empty. Keys are added with Insert; there is no
// deletion.
type Tree struct {
	cfg  Config
	root *Node
}

// New creates an empty tree with validated configuration.
func New(cfg Config) (*Tree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree{cfg: cfg.normalized()}, nil
}

// FromRoot wraps an assembled node structure into a tree. root may be nil,
// yielding an empty tree.
//
// The node structure is adopted, not copied, and it is not checked for B-tree
// invariants.
func FromRoot(cfg Config, root *Node) (*Tree, error) {
	tree, err := New(cfg)
	if err != nil {
		return nil, err
	}
	tree.root = root
	return tree, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree) Config() Config {
	return t.cfg
}

// Degree returns the minimum degree t of the tree.
func (t *Tree) Degree() int {
	return t.cfg.Degree
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	if t.IsEmpty() {
		return 0
	}
	count := 0
	t.Walk(func(n *Node, _ int) bool {
		count += len(n.keys)
		return true
	})
	return count
}

// Height returns the number of levels along the leftmost path, where 0 means
// empty and 1 means a leaf root.
func (t *Tree) Height() int {
	height := 0
	for n := t.Root(); n != nil; height++ {
		if n.IsLeaf() {
			n = nil
		} else {
			n = n.children[0]
		}
	}
	return height
}

// Insert adds key to the tree.
//
// Duplicates are ignored: if key is already present the tree is left unchanged,
// including its shape, and Insert returns false.
func (t *Tree) Insert(key Key) bool {
	assert(t != nil, "Insert called on nil tree")
	if t.root == nil {
		t.root = &Node{keys: append(make([]Key, 0, t.cfg.MaxKeys()), key)}
		return true
	}
	if t.Contains(key) {
		return false
	}
	if len(t.root.keys) == t.cfg.MaxKeys() {
		t.splitRoot()
	}
	t.insertNonFull(t.root, key)
	return true
}

// InsertAll inserts keys in order and returns the number of keys which were
// not present before.
func (t *Tree) InsertAll(keys ...Key) int {
	added := 0
	for _, key := range keys {
		if t.Insert(key) {
			added++
		}
	}
	return added
}

// Contains reports whether key is stored in the tree.
func (t *Tree) Contains(key Key) bool {
	for n := t.Root(); n != nil; {
		pos, found := n.search(key)
		if found {
			return true
		}
		if n.IsLeaf() || pos >= len(n.children) {
			return false
		}
		n = n.children[pos]
	}
	return false
}

// String returns the postorder key groups of the tree, e.g. "[5 6] [20] [10]".
func (t *Tree) String() string {
	if t.IsEmpty() {
		return "<empty>"
	}
	var b strings.Builder
	for i, group := range t.PostorderKeys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", group)
	}
	return b.String()
}
