package btree

// splitChild splits the full child at parent.children[index].
//
// The upper t-1 keys (and, for internal nodes, the upper t children) move to a
// new sibling, which is linked into parent at index+1. The median key is
// promoted into parent at index. Afterwards both halves hold exactly t-1 keys.
func (t *Tree) splitChild(parent *Node, index int) {
	assert(parent != nil, "splitChild called with nil parent")
	assert(index >= 0 && index < len(parent.children), "splitChild index out of range")
	degree := t.cfg.Degree
	child := parent.children[index]
	assert(len(child.keys) == t.cfg.MaxKeys(), "splitChild called for non-full child")
	median := child.keys[degree-1]
	sibling := &Node{keys: append(make([]Key, 0, t.cfg.MaxKeys()), child.keys[degree:]...)}
	if !child.IsLeaf() {
		sibling.children = append(make([]*Node, 0, t.cfg.MaxChildren()), child.children[degree:]...)
		child.children = truncate(child.children, degree)
	}
	child.keys = truncate(child.keys, degree-1)
	parent.keys = insertAt(parent.keys, index, median)
	parent.children = insertAt(parent.children, index+1, sibling)
	tracer().Debugf("btree: split child %d, promoted %d", index, median)
}

// splitRoot grows the tree by one level: a new root adopts the full old root
// as its sole child, which is then split.
func (t *Tree) splitRoot() {
	assert(t.root != nil, "splitRoot called for empty tree")
	newRoot := &Node{
		keys:     make([]Key, 0, t.cfg.MaxKeys()),
		children: append(make([]*Node, 0, t.cfg.MaxChildren()), t.root),
	}
	t.splitChild(newRoot, 0)
	t.root = newRoot
}

// insertNonFull inserts key into the subtree rooted at the non-full node n.
// Full children on the descent path are split before descending into them, so
// a leaf always has room when it is reached. key must not be present.
func (t *Tree) insertNonFull(n *Node, key Key) {
	for {
		assert(len(n.keys) < t.cfg.MaxKeys(), "insertNonFull called for full node")
		pos, found := n.search(key)
		assert(!found, "insertNonFull called for present key")
		if n.IsLeaf() {
			n.keys = insertAt(n.keys, pos, key)
			return
		}
		if len(n.children[pos].keys) == t.cfg.MaxKeys() {
			t.splitChild(n, pos)
			// The promoted median may redirect the descent.
			if key > n.keys[pos] {
				pos++
			}
		}
		n = n.children[pos]
	}
}
