package btree

// Walk visits every node in preorder, passing the node and its depth (the
// root has depth 0). Iteration stops early if fn returns false.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	walkNode(t.root, 0, fn)
}

func walkNode(n *Node, depth int, fn func(*Node, int) bool) bool {
	assert(n != nil, "walkNode called with nil node")
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.children {
		if !walkNode(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// ForEachKey walks keys in-order.
//
// Iteration stops early if fn returns false.
func (t *Tree) ForEachKey(fn func(key Key) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	forEachKeyNode(t.root, fn)
}

func forEachKeyNode(n *Node, fn func(Key) bool) bool {
	assert(n != nil, "forEachKeyNode called with nil node")
	for i, key := range n.keys {
		if i < len(n.children) && !forEachKeyNode(n.children[i], fn) {
			return false
		}
		if !fn(key) {
			return false
		}
	}
	// children beyond the key count, normally exactly one
	for i := len(n.keys); i < len(n.children); i++ {
		if !forEachKeyNode(n.children[i], fn) {
			return false
		}
	}
	return true
}

// Keys returns all keys in-order.
func (t *Tree) Keys() []Key {
	keys := make([]Key, 0, t.Len())
	t.ForEachKey(func(key Key) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// PreorderKeys returns the preorder key emission of the tree: the keys of a
// node are emitted together, in order, before any of its children are
// visited. This is the input format expected by package preorder.
func (t *Tree) PreorderKeys() []Key {
	var keys []Key
	t.Walk(func(n *Node, _ int) bool {
		keys = append(keys, n.keys...)
		return true
	})
	return keys
}

// PostorderKeys returns the key list of every node, children before parents.
func (t *Tree) PostorderKeys() [][]Key {
	if t.IsEmpty() {
		return nil
	}
	var groups [][]Key
	var visit func(n *Node)
	visit = func(n *Node) {
		for _, child := range n.children {
			visit(child)
		}
		groups = append(groups, n.Keys())
	}
	visit(t.root)
	return groups
}
